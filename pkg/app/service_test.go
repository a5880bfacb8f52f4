package app

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

// memoryPersistence emulates the real store, including the copy semantics of
// a JSON round trip on every load and save.
type memoryPersistence struct {
	timeline []byte
	todos    []byte
	saves    int
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{}
}

func (m *memoryPersistence) LoadTimeline() (*store.TimelineState, error) {
	state := store.NewTimelineState()
	if m.timeline != nil {
		if err := json.Unmarshal(m.timeline, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

func (m *memoryPersistence) SaveTimeline(state *store.TimelineState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.timeline = data
	m.saves++
	return nil
}

func (m *memoryPersistence) LoadTodos() (*store.TodoState, error) {
	state := store.NewTodoState()
	if m.todos != nil {
		if err := json.Unmarshal(m.todos, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

func (m *memoryPersistence) SaveTodos(state *store.TodoState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.todos = data
	m.saves++
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestService() (*Service, *memoryPersistence) {
	mp := newMemoryPersistence()
	s := NewService(mp)
	counter := 0
	s.NewID = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Clock = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return s, mp
}

func clock(s string) *string { return &s }

func TestAddEventSortsTimedBeforeUntimed(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	a, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: "A", Time: clock("09:00")})
	if err != nil {
		t.Fatalf("add A: %v", err)
	}
	b, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: "B"})
	if err != nil {
		t.Fatalf("add B: %v", err)
	}

	got, err := s.EventsForDate(ctx, "2026-01-10")
	if err != nil {
		t.Fatalf("events for date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("expected [A B], got [%s %s]", got[0].Title, got[1].Title)
	}
}

func TestAddEventRejectsInvalidInput(t *testing.T) {
	s, mp := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		date string
		in   event.Event
	}{
		{"missing title", "2026-01-10", event.Event{}},
		{"bad date", "jan 10", event.Event{Title: "x"}},
		{"bad time", "2026-01-10", event.Event{Title: "x", Time: clock("25:00")}},
		{"end before start", "2026-01-10", event.Event{Title: "x", Time: clock("10:00"), EndTime: clock("09:00")}},
	}
	for _, tc := range cases {
		if _, err := s.AddEvent(ctx, tc.date, tc.in); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
	if mp.saves != 0 {
		t.Fatalf("rejected input caused %d writes", mp.saves)
	}
}

func TestDeleteLastEventRemovesBucket(t *testing.T) {
	s, mp := newTestService()
	ctx := context.Background()

	e, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: "solo"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.DeleteEvent(ctx, "2026-01-10", e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	state, err := mp.LoadTimeline()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, exists := state.EventsByDate["2026-01-10"]; exists {
		t.Fatal("empty bucket left behind after deleting its last event")
	}
}

func TestDeleteUnknownIsSoftNoOp(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	got, err := s.DeleteEvent(ctx, "2026-01-10", "nope")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}

func TestUndoRestoresIdenticalEvent(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	minutes := 15
	added, err := s.AddEvent(ctx, "2026-01-10", event.Event{
		Title:           "dentist",
		Description:     "bring insurance card",
		Time:            clock("14:30"),
		Color:           "#00ff00",
		ReminderMinutes: &minutes,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: "later", Time: clock("16:00")}); err != nil {
		t.Fatalf("add second: %v", err)
	}

	if _, err := s.DeleteEvent(ctx, "2026-01-10", added.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	restored, err := s.UndoDelete(ctx)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if restored == nil || restored.Date != "2026-01-10" {
		t.Fatalf("unexpected undo result: %+v", restored)
	}

	got, err := s.EventsForDate(ctx, "2026-01-10")
	if err != nil {
		t.Fatalf("events for date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events after undo, got %d", len(got))
	}
	// Resorted: the 14:30 event precedes the 16:00 one again.
	if got[0].ID != added.ID {
		t.Fatalf("restored event not resorted into place: %+v", got)
	}
	if got[0].Title != "dentist" || got[0].Description != "bring insurance card" ||
		got[0].Time == nil || *got[0].Time != "14:30" ||
		got[0].ReminderMinutes == nil || *got[0].ReminderMinutes != 15 {
		t.Fatalf("restored fields differ: %+v", got[0])
	}
}

func TestUndoStackCapsAtTen(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	ids := make([]string, 0, 11)
	for i := 0; i < 11; i++ {
		e, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: fmt.Sprintf("ev-%d", i)})
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		ids = append(ids, e.ID)
	}
	for _, id := range ids {
		if _, err := s.DeleteEvent(ctx, "2026-01-10", id); err != nil {
			t.Fatalf("delete %s: %v", id, err)
		}
	}

	recovered := 0
	for {
		d, err := s.UndoDelete(ctx)
		if err != nil {
			t.Fatalf("undo: %v", err)
		}
		if d == nil {
			break
		}
		if d.Event.ID == ids[0] {
			t.Fatal("oldest deletion should have been dropped from the stack")
		}
		recovered++
	}
	if recovered != 10 {
		t.Fatalf("recovered %d deletions, want 10", recovered)
	}
}

func TestUndoOnEmptyStack(t *testing.T) {
	s, _ := newTestService()
	got, err := s.UndoDelete(context.Background())
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on empty stack, got %+v", got)
	}
}

func TestUndoStackIsPerService(t *testing.T) {
	s, mp := newTestService()
	ctx := context.Background()

	e, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: "gone"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.DeleteEvent(ctx, "2026-01-10", e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// A new service over the same persistence models a fresh process: the
	// stack is in memory, so the deletion is out of reach.
	fresh := NewService(mp)
	got, err := fresh.UndoDelete(ctx)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got != nil {
		t.Fatalf("undo reached another service's stack: %+v", got)
	}
}

func TestMoveEventSameDateIsNoOp(t *testing.T) {
	s, mp := newTestService()
	ctx := context.Background()

	e, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: "stay"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	before := string(mp.timeline)
	saves := mp.saves

	got, err := s.MoveEvent(ctx, "2026-01-10", "2026-01-10", e.ID)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if got == nil || got.ID != e.ID {
		t.Fatalf("expected the event back, got %+v", got)
	}
	if mp.saves != saves || string(mp.timeline) != before {
		t.Fatal("same-date move mutated state")
	}
}

func TestMoveEventTransfersOwnership(t *testing.T) {
	s, mp := newTestService()
	ctx := context.Background()

	e, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: "travel", Time: clock("08:00")})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.MoveEvent(ctx, "2026-01-10", "2026-01-12", e.ID); err != nil {
		t.Fatalf("move: %v", err)
	}

	state, err := mp.LoadTimeline()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, exists := state.EventsByDate["2026-01-10"]; exists {
		t.Fatal("source bucket should be gone")
	}
	dst := state.EventsByDate["2026-01-12"]
	if len(dst) != 1 || dst[0].ID != e.ID {
		t.Fatalf("destination bucket wrong: %+v", dst)
	}
}

func TestSearchByDateKey(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.AddEvent(ctx, "2026-03-10", event.Event{Title: "alpha"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddEvent(ctx, "2026-03-10", event.Event{Title: "beta"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddEvent(ctx, "2026-04-01", event.Event{Title: "gamma"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	hits, err := s.Search(ctx, "2026-03-10")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected every event under the date key, got %d hits", len(hits))
	}
	for _, h := range hits {
		if h.Date != "2026-03-10" {
			t.Errorf("hit from wrong bucket: %s", h.Date)
		}
	}
}

func TestSearchCaseInsensitiveTitle(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.AddEvent(ctx, "2026-02-01", event.Event{Title: "Team Meeting"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	hits, err := s.Search(ctx, "MeetIng")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].Event.Title != "Team Meeting" {
		t.Fatalf("expected the meeting, got %+v", hits)
	}
}

func TestSearchDeduplicatesAndSortsDescending(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	// Title contains the date string, so this event matches both by date
	// key and by field; it must appear once.
	if _, err := s.AddEvent(ctx, "2026-03-10", event.Event{Title: "review 2026-03-10 notes"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddEvent(ctx, "2026-05-01", event.Event{Title: "2026-03-10 retrospective"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	hits, err := s.Search(ctx, "2026-03-10")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 deduplicated hits, got %d", len(hits))
	}
	if hits[0].Date != "2026-05-01" || hits[1].Date != "2026-03-10" {
		t.Fatalf("hits not in reverse chronological order: %+v", hits)
	}
}

func TestTagDeletionCascades(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	tag, err := s.AddTag(ctx, "work", "#0000ff")
	if err != nil {
		t.Fatalf("add tag: %v", err)
	}
	keep, err := s.AddTag(ctx, "home", "#00ff00")
	if err != nil {
		t.Fatalf("add tag: %v", err)
	}

	e, err := s.AddEvent(ctx, "2026-01-10", event.Event{Title: "tagged", TagIDs: []string{tag.ID, keep.ID}})
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	if _, err := s.AddRecurring(ctx, event.RecurringEvent{
		Title: "weekly", Days: []time.Weekday{time.Monday}, TagIDs: []string{tag.ID},
	}); err != nil {
		t.Fatalf("add recurring: %v", err)
	}

	if _, err := s.DeleteTag(ctx, tag.ID); err != nil {
		t.Fatalf("delete tag: %v", err)
	}

	got, err := s.EventsForDate(ctx, "2026-01-10")
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(got) != 1 || len(got[0].TagIDs) != 1 || got[0].TagIDs[0] != keep.ID {
		t.Fatalf("event %s kept dangling tag refs: %v", e.ID, got[0].TagIDs)
	}

	recs, err := s.Recurrings(ctx)
	if err != nil {
		t.Fatalf("recurrings: %v", err)
	}
	if len(recs) != 1 || len(recs[0].TagIDs) != 0 {
		t.Fatalf("recurring kept dangling tag refs: %v", recs[0].TagIDs)
	}
}

func TestRecurringMaterialization(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.AddRecurring(ctx, event.RecurringEvent{
		Title: "standup",
		Days:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
	}); err != nil {
		t.Fatalf("add recurring: %v", err)
	}

	// 2026-01-13 is a Tuesday, 2026-01-14 a Wednesday.
	tue, err := s.RecurringOn(ctx, "2026-01-13")
	if err != nil {
		t.Fatalf("recurring on tuesday: %v", err)
	}
	if len(tue) != 0 {
		t.Fatalf("expected nothing on Tuesday, got %d", len(tue))
	}
	wed, err := s.RecurringOn(ctx, "2026-01-14")
	if err != nil {
		t.Fatalf("recurring on wednesday: %v", err)
	}
	if len(wed) != 1 || wed[0].Title != "standup" {
		t.Fatalf("expected the standup on Wednesday, got %+v", wed)
	}
}

func TestAgendaIncludesRecurring(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.AddEvent(ctx, "2026-01-14", event.Event{Title: "stored"}); err != nil {
		t.Fatalf("add event: %v", err)
	}
	if _, err := s.AddRecurring(ctx, event.RecurringEvent{
		Title: "virtual", Days: []time.Weekday{time.Wednesday},
	}); err != nil {
		t.Fatalf("add recurring: %v", err)
	}

	agenda, err := s.Agenda(ctx, "2026-01-14")
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	if len(agenda.Events) != 1 || len(agenda.Recurring) != 1 {
		t.Fatalf("agenda incomplete: %+v", agenda)
	}

	has, err := s.HasEvents(ctx, "2026-01-21")
	if err != nil {
		t.Fatalf("has events: %v", err)
	}
	if !has {
		t.Fatal("recurring-only date should count as having events")
	}
}

func TestMarkReminderSentIsIdempotent(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	minutes := 10
	e, err := s.AddEvent(ctx, "2026-01-10", event.Event{
		Title: "call", Time: clock("10:00"), ReminderMinutes: &minutes,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.MarkReminderSent(ctx, "2026-01-10", e.ID); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := s.MarkReminderSent(ctx, "2026-01-10", e.ID); err != nil {
		t.Fatalf("mark twice: %v", err)
	}

	got, err := s.EventsForDate(ctx, "2026-01-10")
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if !got[0].ReminderSent {
		t.Fatal("reminder flag not set")
	}
}

func TestRecurringReminderFiredDates(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	r, err := s.AddRecurring(ctx, event.RecurringEvent{
		Title: "gym", Days: []time.Weekday{time.Monday},
	})
	if err != nil {
		t.Fatalf("add recurring: %v", err)
	}

	if err := s.MarkRecurringReminderFired(ctx, r.ID, "2026-01-12"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := s.MarkRecurringReminderFired(ctx, r.ID, "2026-01-12"); err != nil {
		t.Fatalf("mark twice: %v", err)
	}

	recs, err := s.Recurrings(ctx)
	if err != nil {
		t.Fatalf("recurrings: %v", err)
	}
	if len(recs[0].FiredDates) != 1 || recs[0].FiredDates[0] != "2026-01-12" {
		t.Fatalf("fired dates wrong: %v", recs[0].FiredDates)
	}
}

func TestTodoLifecycle(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	td, err := s.AddTodo(ctx, "water plants")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	done := true
	updated, err := s.UpdateTodo(ctx, td.ID, todo.Patch{Done: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil || !updated.Done {
		t.Fatalf("todo not completed: %+v", updated)
	}

	removed, err := s.DeleteTodo(ctx, td.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed == nil {
		t.Fatal("expected the removed todo back")
	}

	left, err := s.Todos(ctx)
	if err != nil {
		t.Fatalf("todos: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected empty todo list, got %+v", left)
	}
}

func TestUpdateEventUnknownReturnsNil(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	title := "new"
	got, err := s.UpdateEvent(ctx, "2026-01-10", "missing", event.Patch{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown event, got %+v", got)
	}
}
