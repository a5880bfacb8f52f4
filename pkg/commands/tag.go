package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/runner/tag"
)

func addTag(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage event tags.",
		Example: `
agenda tag add work --color=blue
agenda tag list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTagAdd(cmd)
	addTagRm(cmd)
	addTagEdit(cmd)
	addTagList(cmd)

	topLevel.AddCommand(cmd)
}

func addTagAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	var tagColor string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a tag.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tag.Add{
				Name:    strings.Join(args, " "),
				Color:   tagColor,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&tagColor, "color", "", "Display color name.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addTagRm(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"delete", "del"},
		Short:   "Remove a tag and clear it from every event.",
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
			s := tag.Remove{
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

func addTagEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	var name, tagColor string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Rename or recolor a tag.",
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("--id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			patch := event.TagPatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &tagColor
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tag.Edit{
				ID:      io.ID,
				Patch:   patch,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name.")
	cmd.Flags().StringVar(&tagColor, "color", "", "New display color.")
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addTagList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tag.List{
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
