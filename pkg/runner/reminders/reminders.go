package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/remind"
)

// Run polls for due reminders until the context is cancelled.
type Run struct {
	Interval time.Duration
	Once     bool

	Service *app.Service
}

func (n *Run) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not run reminders, no service")
	}

	p := remind.NewPoller(n.Service, nil)
	if n.Interval > 0 {
		p.Interval = n.Interval
	}

	if n.Once {
		p.Tick(ctx)
		return nil
	}

	fmt.Printf("Watching for reminders every %s. Ctrl-C to stop.\n", p.Interval)
	if err := p.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	p.Stop()
	return nil
}
