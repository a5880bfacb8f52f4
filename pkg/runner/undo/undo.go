package undo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/runner/add"
)

// Undo restores the most recently deleted event to its original date. The
// undo stack lives in the service, not the store, so only deletions made by
// this process are reachable; a fresh process has nothing to undo.
type Undo struct {
	ShowID  bool
	Service *app.Service
}

func (n *Undo) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not undo, no service")
	}

	restored, err := n.Service.UndoDelete(ctx)
	if err != nil {
		return err
	}
	if restored == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("nothing to undo")
		return nil
	}

	fmt.Printf("Restored %q to %s.\n", restored.Event.Title, restored.Date)

	agenda, err := n.Service.Agenda(ctx, restored.Date)
	if err != nil {
		return err
	}
	tags, err := add.TagCatalog(ctx, n.Service)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.DayHeading(restored.Date, "")
	pp.Agenda(agenda, tags)
	return nil
}
