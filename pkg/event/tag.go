package event

// EventTag is an independent lookup entity; events reference it by id.
type EventTag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
