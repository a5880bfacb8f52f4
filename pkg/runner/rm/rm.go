package rm

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/app"
)

// Remove deletes one event. The deletion lands on the service's in-memory
// undo stack, so it is recoverable only within the same process.
type Remove struct {
	Date string
	ID   string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	removed, err := n.Service.DeleteEvent(ctx, n.Date, n.ID)
	if err != nil {
		return err
	}
	if removed == nil {
		return fmt.Errorf("no event %s on %s", n.ID, n.Date)
	}

	fmt.Printf("Deleted %q from %s.\n", removed.Event.Title, removed.Date)
	return nil
}
