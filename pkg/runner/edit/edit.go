package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/runner/add"
)

// Edit applies a partial update to one event.
type Edit struct {
	Date  string
	ID    string
	Patch event.Patch

	ShowID  bool
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	updated, err := n.Service.UpdateEvent(ctx, n.Date, n.ID, n.Patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("no event %s on %s", n.ID, n.Date)
	}

	agenda, err := n.Service.Agenda(ctx, n.Date)
	if err != nil {
		return err
	}
	tags, err := add.TagCatalog(ctx, n.Service)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.DayHeading(n.Date, "")
	pp.Agenda(agenda, tags)
	return nil
}
