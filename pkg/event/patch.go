package event

import "time"

// Patch is a partial update for an event. Nil fields are left unchanged;
// the Clear* flags distinguish "unset this optional" from "leave it alone".
type Patch struct {
	Title       *string
	Description *string

	Time      *string
	ClearTime bool

	EndDate  *string
	EndTime  *string
	ClearEnd bool

	Color  *string
	TagIDs *[]string
	URLs   *[]string

	ReminderMinutes *int
	ClearReminder   bool

	ReminderSent *bool
}

// Apply merges the patch into the event.
func (p Patch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.ClearTime {
		e.Time = nil
	} else if p.Time != nil {
		e.Time = p.Time
	}
	if p.ClearEnd {
		e.EndDate = nil
		e.EndTime = nil
	} else {
		if p.EndDate != nil {
			e.EndDate = p.EndDate
		}
		if p.EndTime != nil {
			e.EndTime = p.EndTime
		}
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.TagIDs != nil {
		e.TagIDs = append([]string(nil), (*p.TagIDs)...)
	}
	if p.URLs != nil {
		e.URLs = append([]string(nil), (*p.URLs)...)
	}
	if p.ClearReminder {
		e.ReminderMinutes = nil
	} else if p.ReminderMinutes != nil {
		e.ReminderMinutes = p.ReminderMinutes
	}
	if p.ReminderSent != nil {
		e.ReminderSent = *p.ReminderSent
	}
}

// RecurringPatch is a partial update for a recurring event template.
type RecurringPatch struct {
	Title       *string
	Description *string

	Time      *string
	ClearTime bool

	EndTime *string

	Color  *string
	TagIDs *[]string

	Days []time.Weekday

	Until      *string
	ClearUntil bool

	ReminderMinutes *int
	ClearReminder   bool
}

// Apply merges the patch into the recurring event.
func (p RecurringPatch) Apply(r *RecurringEvent) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.ClearTime {
		r.Time = nil
	} else if p.Time != nil {
		r.Time = p.Time
	}
	if p.EndTime != nil {
		r.EndTime = p.EndTime
	}
	if p.Color != nil {
		r.Color = *p.Color
	}
	if p.TagIDs != nil {
		r.TagIDs = append([]string(nil), (*p.TagIDs)...)
	}
	if p.Days != nil {
		r.Days = append([]time.Weekday(nil), p.Days...)
	}
	if p.ClearUntil {
		r.Until = nil
	} else if p.Until != nil {
		r.Until = p.Until
	}
	if p.ClearReminder {
		r.ReminderMinutes = nil
	} else if p.ReminderMinutes != nil {
		r.ReminderMinutes = p.ReminderMinutes
	}
}

// TagPatch is a partial update for an event tag.
type TagPatch struct {
	Name  *string
	Color *string
}

// Apply merges the patch into the tag.
func (p TagPatch) Apply(t *EventTag) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
}
