package event

import "time"

// RecurringEvent is a template that materializes virtually on any date whose
// weekday is in Days, up to and including Until when set. Occurrences are
// never stored per-day.
type RecurringEvent struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Time        *string        `json:"time,omitempty"`
	EndTime     *string        `json:"endTime,omitempty"`
	Color       string         `json:"color,omitempty"`
	TagIDs      []string       `json:"tagIds,omitempty"`
	Days        []time.Weekday `json:"days"`            // 0=Sunday .. 6=Saturday
	Until       *string        `json:"until,omitempty"` // "YYYY-MM-DD", inclusive

	ReminderMinutes *int `json:"reminderMinutes,omitempty"`

	// FiredDates records occurrence dates whose reminder has already been
	// delivered so the poller stays idempotent across ticks.
	FiredDates []string `json:"firedDates,omitempty"`

	Created Timestamp `json:"created"`
}

// OccursOn reports whether the recurring event materializes on the given
// "YYYY-MM-DD" date. Malformed dates never match.
func (r RecurringEvent) OccursOn(date string) bool {
	wd, err := Weekday(date)
	if err != nil {
		return false
	}
	enabled := false
	for _, d := range r.Days {
		if d == wd {
			enabled = true
			break
		}
	}
	if !enabled {
		return false
	}
	// Zero-padded ISO dates order correctly as text.
	return r.Until == nil || date <= *r.Until
}

// ReminderFiredOn reports whether the reminder already went out for the
// occurrence on the given date.
func (r RecurringEvent) ReminderFiredOn(date string) bool {
	for _, d := range r.FiredDates {
		if d == date {
			return true
		}
	}
	return false
}

// Clone returns a copy of the recurring event with its own slice backing.
func (r RecurringEvent) Clone() RecurringEvent {
	out := r
	if r.Time != nil {
		t := *r.Time
		out.Time = &t
	}
	if r.EndTime != nil {
		t := *r.EndTime
		out.EndTime = &t
	}
	if r.Until != nil {
		u := *r.Until
		out.Until = &u
	}
	if r.ReminderMinutes != nil {
		m := *r.ReminderMinutes
		out.ReminderMinutes = &m
	}
	if r.TagIDs != nil {
		out.TagIDs = append([]string(nil), r.TagIDs...)
	}
	if r.Days != nil {
		out.Days = append([]time.Weekday(nil), r.Days...)
	}
	if r.FiredDates != nil {
		out.FiredDates = append([]string(nil), r.FiredDates...)
	}
	return out
}
