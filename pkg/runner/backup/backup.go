package backup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/agenda/pkg/backup"
	"tableflip.dev/agenda/pkg/store"
)

// Export writes the full data set to a file, or stdout when File is empty.
type Export struct {
	File string

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	if n.File == "" {
		return backup.Export(n.Persistence, os.Stdout)
	}

	f, err := os.Create(n.File)
	if err != nil {
		return fmt.Errorf("backup: create %s: %w", n.File, err)
	}
	defer f.Close()

	if err := backup.Export(n.Persistence, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("backup: close %s: %w", n.File, err)
	}
	fmt.Printf("Exported to %s.\n", n.File)
	return nil
}

// Import replaces the full data set from a backup file.
type Import struct {
	File string

	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}
	if n.File == "" {
		return errors.New("can not import, no file")
	}

	f, err := os.Open(n.File)
	if err != nil {
		return fmt.Errorf("backup: open %s: %w", n.File, err)
	}
	defer f.Close()

	if err := backup.Import(n.Persistence, f); err != nil {
		return err
	}
	fmt.Printf("Imported %s.\n", n.File)
	return nil
}
