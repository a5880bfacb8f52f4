package store

import (
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/todo"
)

// TimelineState is the full date-indexed document: every date bucket, the
// recurring event templates, and the tag catalog. Mutations read the whole
// document, change it, and write the whole document back.
type TimelineState struct {
	EventsByDate    map[string][]event.Event `json:"eventsByDate"`
	RecurringEvents []event.RecurringEvent   `json:"recurringEvents"`
	Tags            []event.EventTag         `json:"tags"`
}

// TodoState is the standalone todo document.
type TodoState struct {
	Todos []todo.Todo `json:"todos"`
}

// NewTimelineState returns the documented empty default.
func NewTimelineState() *TimelineState {
	return &TimelineState{
		EventsByDate:    make(map[string][]event.Event),
		RecurringEvents: []event.RecurringEvent{},
		Tags:            []event.EventTag{},
	}
}

// NewTodoState returns the documented empty default.
func NewTodoState() *TodoState {
	return &TodoState{Todos: []todo.Todo{}}
}

// normalize repairs nil fields after unmarshalling partial or legacy blobs.
func (s *TimelineState) normalize() {
	if s.EventsByDate == nil {
		s.EventsByDate = make(map[string][]event.Event)
	}
	if s.RecurringEvents == nil {
		s.RecurringEvents = []event.RecurringEvent{}
	}
	if s.Tags == nil {
		s.Tags = []event.EventTag{}
	}
}

func (s *TodoState) normalize() {
	if s.Todos == nil {
		s.Todos = []todo.Todo{}
	}
}
