package event

// Event is a single calendar entry. It does not record its own date; the
// date bucket it is filed under owns it, and moving it between buckets
// transfers that ownership.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Time        *string  `json:"time,omitempty"`    // "HH:mm", nil for untimed
	EndDate     *string  `json:"endDate,omitempty"` // "YYYY-MM-DD"
	EndTime     *string  `json:"endTime,omitempty"`
	Color       string   `json:"color,omitempty"`
	TagIDs      []string `json:"tagIds,omitempty"`
	URLs        []string `json:"urls,omitempty"`

	// ReminderMinutes is the lead time before the event start at which the
	// reminder poller should fire. Nil means no reminder.
	ReminderMinutes *int `json:"reminderMinutes,omitempty"`
	ReminderSent    bool `json:"reminderSent,omitempty"`

	Created Timestamp `json:"created"`
}

// DeletedEvent wraps a removed event with enough context to put it back.
type DeletedEvent struct {
	Event     Event     `json:"event"`
	Date      string    `json:"date"`
	DeletedAt Timestamp `json:"deletedAt"`
}

// Clone returns a copy of the event with its own slice backing.
func (e Event) Clone() Event {
	out := e
	if e.Time != nil {
		t := *e.Time
		out.Time = &t
	}
	if e.EndDate != nil {
		d := *e.EndDate
		out.EndDate = &d
	}
	if e.EndTime != nil {
		t := *e.EndTime
		out.EndTime = &t
	}
	if e.ReminderMinutes != nil {
		m := *e.ReminderMinutes
		out.ReminderMinutes = &m
	}
	if e.TagIDs != nil {
		out.TagIDs = append([]string(nil), e.TagIDs...)
	}
	if e.URLs != nil {
		out.URLs = append([]string(nil), e.URLs...)
	}
	return out
}
