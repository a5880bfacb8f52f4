package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/ical"
	"tableflip.dev/agenda/pkg/store"
)

func addICS(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write the timeline as an iCalendar (.ics) file.",
		Example: `
agenda ics --file=agenda.ics
agenda ics > agenda.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := ical.Export{
				File:        fo.File,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFileArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
