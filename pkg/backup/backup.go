// Package backup reads and writes whole-state snapshot files so a journal
// can be carried between machines.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

// FormatVersion is the only backup file version this build understands.
const FormatVersion = 1

// File is the on-disk backup document.
type File struct {
	Version    int     `json:"version"`
	ExportedAt string  `json:"exportedAt"`
	Data       Payload `json:"data"`
}

// Payload carries both persisted documents in one place.
type Payload struct {
	EventsByDate    map[string][]event.Event `json:"eventsByDate"`
	RecurringEvents []event.RecurringEvent   `json:"recurringEvents"`
	Tags            []event.EventTag         `json:"tags,omitempty"`
	Todos           []todo.Todo              `json:"todos"`
}

// Export writes a snapshot of both documents to w.
func Export(p store.Persistence, w io.Writer) error {
	timeline, err := p.LoadTimeline()
	if err != nil {
		return fmt.Errorf("backup: load timeline: %w", err)
	}
	todos, err := p.LoadTodos()
	if err != nil {
		return fmt.Errorf("backup: load todos: %w", err)
	}

	file := File{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Data: Payload{
			EventsByDate:    timeline.EventsByDate,
			RecurringEvents: timeline.RecurringEvents,
			Tags:            timeline.Tags,
			Todos:           todos.Todos,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("backup: encode: %w", err)
	}
	return nil
}

// Import replaces both documents wholesale with the contents of r. The file
// is parsed completely before anything is written, so a malformed backup
// leaves the existing state untouched.
func Import(p store.Persistence, r io.Reader) error {
	var file File
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return fmt.Errorf("backup: malformed backup file: %w", err)
	}
	if file.Version != FormatVersion {
		return fmt.Errorf("backup: unsupported version %d", file.Version)
	}

	timeline := store.NewTimelineState()
	if file.Data.EventsByDate != nil {
		timeline.EventsByDate = file.Data.EventsByDate
	}
	if file.Data.RecurringEvents != nil {
		timeline.RecurringEvents = file.Data.RecurringEvents
	}
	if file.Data.Tags != nil {
		timeline.Tags = file.Data.Tags
	}
	todos := store.NewTodoState()
	if file.Data.Todos != nil {
		todos.Todos = file.Data.Todos
	}

	if err := p.SaveTimeline(timeline); err != nil {
		return fmt.Errorf("backup: save timeline: %w", err)
	}
	if err := p.SaveTodos(todos); err != nil {
		return fmt.Errorf("backup: save todos: %w", err)
	}
	return nil
}
