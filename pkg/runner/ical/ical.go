package ical

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/agenda/pkg/ics"
	"tableflip.dev/agenda/pkg/store"
)

// Export writes the timeline as an iCalendar document, to a file or stdout.
type Export struct {
	File string

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export calendar, no persistence")
	}

	state, err := n.Persistence.LoadTimeline()
	if err != nil {
		return err
	}

	if n.File == "" {
		return ics.Write(os.Stdout, state)
	}

	f, err := os.Create(n.File)
	if err != nil {
		return fmt.Errorf("ical: create %s: %w", n.File, err)
	}
	defer f.Close()

	if err := ics.Write(f, state); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ical: close %s: %w", n.File, err)
	}
	fmt.Printf("Wrote %s.\n", n.File)
	return nil
}
