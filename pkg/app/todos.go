package app

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/todo"
)

var errTodoTitleRequired = errors.New("app: todo title required")

// AddTodo stores a new todo item.
func (s *Service) AddTodo(ctx context.Context, title string) (*todo.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errTodoTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.todos()
	if err != nil {
		return nil, err
	}

	t := todo.Todo{
		ID:      s.id(),
		Title:   title,
		Created: event.Timestamp{Time: s.now()},
	}
	state.Todos = append(state.Todos, t)
	if err := s.Persistence.SaveTodos(state); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTodo merges the patch into the identified todo; nil when missing.
func (s *Service) UpdateTodo(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.todos()
	if err != nil {
		return nil, err
	}

	for i := range state.Todos {
		if state.Todos[i].ID != id {
			continue
		}
		merged := state.Todos[i]
		patch.Apply(&merged)
		if strings.TrimSpace(merged.Title) == "" {
			return nil, errTodoTitleRequired
		}
		state.Todos[i] = merged
		if err := s.Persistence.SaveTodos(state); err != nil {
			return nil, err
		}
		return &merged, nil
	}
	return nil, nil
}

// DeleteTodo removes the todo; nil when missing.
func (s *Service) DeleteTodo(ctx context.Context, id string) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.todos()
	if err != nil {
		return nil, err
	}

	for i := range state.Todos {
		if state.Todos[i].ID != id {
			continue
		}
		removed := state.Todos[i]
		state.Todos = append(state.Todos[:i], state.Todos[i+1:]...)
		if err := s.Persistence.SaveTodos(state); err != nil {
			return nil, err
		}
		return &removed, nil
	}
	return nil, nil
}

// Todos lists all todo items in creation order.
func (s *Service) Todos(ctx context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.todos()
	if err != nil {
		return nil, err
	}
	return append([]todo.Todo(nil), state.Todos...), nil
}
