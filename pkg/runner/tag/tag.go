package tag

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
)

// Add creates a tag.
type Add struct {
	Name    string
	Color   string
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add tag, no service")
	}

	created, err := n.Service.AddTag(ctx, n.Name, n.Color)
	if err != nil {
		return err
	}
	fmt.Printf("Added tag %q.\n", created.Name)
	if n.ShowID {
		fmt.Printf("  %s\n", created.ID)
	}
	return nil
}

// Remove deletes a tag and clears it from every event that carries it.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove tag, no service")
	}

	removed, err := n.Service.DeleteTag(ctx, n.ID)
	if err != nil {
		return err
	}
	if removed == nil {
		return fmt.Errorf("no tag %s", n.ID)
	}
	fmt.Printf("Removed tag %q.\n", removed.Name)
	return nil
}

// Edit renames or recolors a tag.
type Edit struct {
	ID      string
	Patch   event.TagPatch
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit tag, no service")
	}

	updated, err := n.Service.UpdateTag(ctx, n.ID, n.Patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("no tag %s", n.ID)
	}
	fmt.Printf("Updated tag %q.\n", updated.Name)
	return nil
}

// List prints all tags.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list tags, no service")
	}

	tags, err := n.Service.Tags(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Tags(tags)
	return nil
}
