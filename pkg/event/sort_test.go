package event

import (
	"testing"
	"time"
)

func clock(s string) *string { return &s }

func at(hour int) Timestamp {
	return Timestamp{Time: time.Date(2026, 1, 10, hour, 0, 0, 0, time.UTC)}
}

func TestSortTimedBeforeUntimed(t *testing.T) {
	a := Event{ID: "a", Title: "standup", Time: clock("09:00"), Created: at(12)}
	b := Event{ID: "b", Title: "groceries", Created: at(8)}

	events := []Event{b, a}
	Sort(events)

	if events[0].ID != "a" || events[1].ID != "b" {
		t.Fatalf("expected timed event first, got %s then %s", events[0].ID, events[1].ID)
	}
}

func TestSortLexicalTimeOrder(t *testing.T) {
	events := []Event{
		{ID: "late", Time: clock("21:30"), Created: at(1)},
		{ID: "early", Time: clock("08:15"), Created: at(2)},
		{ID: "noon", Time: clock("12:00"), Created: at(3)},
	}
	Sort(events)

	want := []string{"early", "noon", "late"}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, events[i].ID, id)
		}
	}
}

func TestSortTiesBreakByCreation(t *testing.T) {
	events := []Event{
		{ID: "second", Time: clock("10:00"), Created: at(5)},
		{ID: "first", Time: clock("10:00"), Created: at(4)},
		{ID: "untimed-second", Created: at(7)},
		{ID: "untimed-first", Created: at(6)},
	}
	Sort(events)

	want := []string{"first", "second", "untimed-first", "untimed-second"}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, events[i].ID, id)
		}
	}
}

func TestSortIsStable(t *testing.T) {
	same := at(3)
	events := []Event{
		{ID: "one", Created: same},
		{ID: "two", Created: same},
		{ID: "three", Created: same},
	}
	Sort(events)

	want := []string{"one", "two", "three"}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, events[i].ID, id)
		}
	}
}
