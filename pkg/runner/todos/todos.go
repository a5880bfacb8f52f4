package todos

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/todo"
)

// Add creates a todo.
type Add struct {
	Title   string
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add todo, no service")
	}

	created, err := n.Service.AddTodo(ctx, n.Title)
	if err != nil {
		return err
	}
	fmt.Printf("Added todo %q.\n", created.Title)
	if n.ShowID {
		fmt.Printf("  %s\n", created.ID)
	}
	return nil
}

// Toggle flips a todo between done and not done.
type Toggle struct {
	ID      string
	Service *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle todo, no service")
	}

	current, err := n.Service.Todos(ctx)
	if err != nil {
		return err
	}
	var found *todo.Todo
	for i := range current {
		if current[i].ID == n.ID {
			found = &current[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("no todo %s", n.ID)
	}

	done := !found.Done
	updated, err := n.Service.UpdateTodo(ctx, n.ID, todo.Patch{Done: &done})
	if err != nil {
		return err
	}
	if updated.Done {
		fmt.Printf("Done: %q\n", updated.Title)
	} else {
		fmt.Printf("Not done: %q\n", updated.Title)
	}
	return nil
}

// Remove deletes a todo.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove todo, no service")
	}

	removed, err := n.Service.DeleteTodo(ctx, n.ID)
	if err != nil {
		return err
	}
	if removed == nil {
		return fmt.Errorf("no todo %s", n.ID)
	}
	fmt.Printf("Removed todo %q.\n", removed.Title)
	return nil
}

// List prints all todos.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list todos, no service")
	}

	all, err := n.Service.Todos(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Todos(all)
	return nil
}
