package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
)

func TestWriteStoredEvents(t *testing.T) {
	when := "09:30"
	state := store.NewTimelineState()
	state.EventsByDate["2026-01-10"] = []event.Event{
		{ID: "e1", Title: "standup", Time: &when},
		{ID: "e2", Title: "errands"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, state); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("missing calendar envelope")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("expected 2 VEVENTs, got %d", got)
	}
	if !strings.Contains(out, "SUMMARY:standup") {
		t.Error("timed event summary missing")
	}
	if !strings.Contains(out, "SUMMARY:errands") {
		t.Error("untimed event summary missing")
	}
}

func TestWriteRecurringCarriesRRule(t *testing.T) {
	until := "2026-06-30"
	state := store.NewTimelineState()
	state.RecurringEvents = []event.RecurringEvent{{
		ID:      "r1",
		Title:   "standup",
		Days:    []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		Until:   &until,
		Created: event.Timestamp{Time: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
	}}

	var buf bytes.Buffer
	if err := Write(&buf, state); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "RRULE:") {
		t.Fatal("recurring event missing RRULE")
	}
	if !strings.Contains(out, "FREQ=WEEKLY") {
		t.Error("rule is not weekly")
	}
	for _, day := range []string{"MO", "WE", "FR"} {
		if !strings.Contains(out, day) {
			t.Errorf("rule missing weekday %s", day)
		}
	}
	if !strings.Contains(out, "UNTIL=") {
		t.Error("rule missing UNTIL clause")
	}
}
