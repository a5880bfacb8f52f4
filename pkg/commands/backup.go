package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/backup"
	"tableflip.dev/agenda/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all data as a JSON backup.",
		Example: `
agenda export --file=backup.json
agenda export > backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Export{
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

func addImport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace all data from a JSON backup.",
		Example: `
agenda import --file=backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if fo.File == "" {
				return errors.New("--file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Import{
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
