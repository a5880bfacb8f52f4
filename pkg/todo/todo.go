package todo

import "tableflip.dev/agenda/pkg/event"

// Todo is a standalone checklist item, independent of the date-indexed
// event space.
type Todo struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Done    bool            `json:"done,omitempty"`
	Created event.Timestamp `json:"created"`
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Title *string
	Done  *bool
}

// Apply merges the patch into the todo.
func (p Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
}
