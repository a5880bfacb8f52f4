package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/runner/add"
)

// Move transfers an event to another date bucket.
type Move struct {
	From string
	To   string
	ID   string

	ShowID  bool
	Service *app.Service
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}

	moved, err := n.Service.MoveEvent(ctx, n.From, n.To, n.ID)
	if err != nil {
		return err
	}
	if moved == nil {
		return fmt.Errorf("no event %s on %s", n.ID, n.From)
	}
	if n.From == n.To {
		fmt.Printf("%q is already on %s.\n", moved.Title, n.To)
		return nil
	}

	agenda, err := n.Service.Agenda(ctx, n.To)
	if err != nil {
		return err
	}
	tags, err := add.TagCatalog(ctx, n.Service)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.DayHeading(n.To, "")
	pp.Agenda(agenda, tags)
	return nil
}
