package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: base.Wrap80("A local-first calendar and timeline on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addSearch(topLevel)
	addEdit(topLevel)
	addRm(topLevel)
	addMove(topLevel)
	addUndo(topLevel)
	addRecur(topLevel)
	addTag(topLevel)
	addTodo(topLevel)
	addRemind(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addICS(topLevel)
	addKey(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// loadService builds the app service on top of the configured store.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.NewService(p), nil
}
