package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/recur"
)

func addRecur(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "recur",
		Short: "Manage weekly recurring events.",
		Example: `
agenda recur add standup --day=mon --day=wed --time=09:30
agenda recur list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRecurAdd(cmd)
	addRecurRm(cmd)
	addRecurList(cmd)

	topLevel.AddCommand(cmd)
}

func addRecurAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	ro := &options.RecurOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a recurring event.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			days, err := ro.Weekdays()
			if err != nil {
				return err
			}
			remind, err := eo.RemindPtr()
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := recur.Add{
				Title:       strings.Join(args, " "),
				Description: eo.Description,
				Time:        eo.TimePtr(),
				EndTime:     eo.EndTimePtr(),
				Color:       eo.Color,
				TagIDs:      eo.Tags,
				Days:        days,
				Until:       ro.UntilPtr(),
				Remind:      remind,
				Service:     svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddRecurArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}

func addRecurRm(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"delete", "del"},
		Short:   "Remove a recurring event.",
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("--id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := recur.Remove{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addRecurList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recurring events.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := recur.List{
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
