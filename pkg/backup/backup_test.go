package backup

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

type testConfig struct{ path string }

func (t testConfig) BasePath() string { return t.path }

func seeded(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	when := "09:00"
	timeline := store.NewTimelineState()
	timeline.EventsByDate["2026-01-10"] = []event.Event{{
		ID: "e1", Title: "standup", Time: &when,
		Created: event.Timestamp{Time: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)},
	}}
	timeline.RecurringEvents = []event.RecurringEvent{{
		ID: "r1", Title: "gym", Days: []time.Weekday{time.Monday},
	}}
	timeline.Tags = []event.EventTag{{ID: "t1", Name: "work"}}
	if err := p.SaveTimeline(timeline); err != nil {
		t.Fatalf("save timeline: %v", err)
	}

	todos := store.NewTodoState()
	todos.Todos = []todo.Todo{{ID: "td1", Title: "water plants"}}
	if err := p.SaveTodos(todos); err != nil {
		t.Fatalf("save todos: %v", err)
	}
	return p
}

func TestExportImportRoundTrip(t *testing.T) {
	src := seeded(t)

	var buf bytes.Buffer
	if err := Export(src, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := Import(dst, &buf); err != nil {
		t.Fatalf("import: %v", err)
	}

	timeline, err := dst.LoadTimeline()
	if err != nil {
		t.Fatalf("load timeline: %v", err)
	}
	if len(timeline.EventsByDate["2026-01-10"]) != 1 {
		t.Fatalf("events not imported: %+v", timeline.EventsByDate)
	}
	if len(timeline.RecurringEvents) != 1 || timeline.RecurringEvents[0].Title != "gym" {
		t.Fatalf("recurring events not imported: %+v", timeline.RecurringEvents)
	}
	if len(timeline.Tags) != 1 {
		t.Fatalf("tags not imported: %+v", timeline.Tags)
	}

	todos, err := dst.LoadTodos()
	if err != nil {
		t.Fatalf("load todos: %v", err)
	}
	if len(todos.Todos) != 1 || todos.Todos[0].Title != "water plants" {
		t.Fatalf("todos not imported: %+v", todos.Todos)
	}
}

func TestImportOverwritesWholesale(t *testing.T) {
	src := seeded(t)
	var buf bytes.Buffer
	if err := Export(src, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := seeded(t)
	extra := store.NewTimelineState()
	extra.EventsByDate["2030-12-25"] = []event.Event{{ID: "x", Title: "stale"}}
	if err := dst.SaveTimeline(extra); err != nil {
		t.Fatalf("seed stale state: %v", err)
	}

	if err := Import(dst, &buf); err != nil {
		t.Fatalf("import: %v", err)
	}
	timeline, err := dst.LoadTimeline()
	if err != nil {
		t.Fatalf("load timeline: %v", err)
	}
	if _, exists := timeline.EventsByDate["2030-12-25"]; exists {
		t.Fatal("import should overwrite, not merge")
	}
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	p := seeded(t)

	if err := Import(p, strings.NewReader("{broken")); err == nil {
		t.Fatal("expected error for malformed backup")
	}
	if err := Import(p, strings.NewReader(`{"version": 99, "data": {}}`)); err == nil {
		t.Fatal("expected error for unsupported version")
	}

	timeline, err := p.LoadTimeline()
	if err != nil {
		t.Fatalf("load timeline: %v", err)
	}
	if len(timeline.EventsByDate["2026-01-10"]) != 1 {
		t.Fatal("failed import mutated state")
	}
}
