package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	var title string
	var clearTime, clearEnd, clearRemind bool

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change fields on an event. Only flags you pass are changed.",
		Example: `
agenda edit --id=abcd --on=2026-09-03 --time=15:00
agenda edit --id=abcd --clear-remind
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("--id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			remind, err := eo.RemindPtr()
			if err != nil {
				return err
			}

			patch := event.Patch{
				Time:            eo.TimePtr(),
				ClearTime:       clearTime,
				EndDate:         eo.EndDatePtr(),
				EndTime:         eo.EndTimePtr(),
				ClearEnd:        clearEnd,
				ReminderMinutes: remind,
				ClearReminder:   clearRemind,
			}
			if title != "" {
				patch.Title = &title
			}
			// Changed distinguishes "clear the text" from "leave it".
			if cmd.Flags().Changed("description") {
				patch.Description = &eo.Description
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &eo.Color
			}
			if cmd.Flags().Changed("tag") {
				patch.TagIDs = &eo.Tags
			}
			if cmd.Flags().Changed("url") {
				patch.URLs = &eo.URLs
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			s := edit.Edit{
				Date:    date,
				ID:      io.ID,
				Patch:   patch,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().BoolVar(&clearTime, "clear-time", false, "Make the event untimed.")
	cmd.Flags().BoolVar(&clearEnd, "clear-end", false, "Drop the end date and time.")
	cmd.Flags().BoolVar(&clearRemind, "clear-remind", false, "Drop the reminder.")

	options.AddOnArgs(cmd, on)
	options.AddEventArgs(cmd, eo)
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
