package remind

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
)

type recordingNotifier struct {
	mu   sync.Mutex
	tags []string
}

func (r *recordingNotifier) Notify(title, body, tag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append(r.tags, tag)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tags)
}

// jsonPersistence is the same round-trip fake the app tests use.
type jsonPersistence struct {
	timeline []byte
	todos    []byte
}

func (m *jsonPersistence) LoadTimeline() (*store.TimelineState, error) {
	state := store.NewTimelineState()
	if m.timeline != nil {
		if err := json.Unmarshal(m.timeline, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

func (m *jsonPersistence) SaveTimeline(state *store.TimelineState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.timeline = data
	return nil
}

func (m *jsonPersistence) LoadTodos() (*store.TodoState, error) {
	return store.NewTodoState(), nil
}

func (m *jsonPersistence) SaveTodos(*store.TodoState) error { return nil }

func (m *jsonPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func clock(s string) *string { return &s }

func newTestPoller(now time.Time) (*Poller, *app.Service, *recordingNotifier) {
	svc := app.NewService(&jsonPersistence{})
	svc.Clock = func() time.Time { return now }
	sink := &recordingNotifier{}
	p := NewPoller(svc, sink)
	p.Clock = func() time.Time { return now }
	return p, svc, sink
}

func TestTickFiresDueReminderOnce(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 50, 0, 0, time.UTC)
	p, svc, sink := newTestPoller(now)
	ctx := context.Background()

	lead := 15
	if _, err := svc.AddEvent(ctx, "2026-01-10", event.Event{
		Title: "dentist", Time: clock("09:00"), ReminderMinutes: &lead,
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	p.Tick(ctx)
	if sink.count() != 1 {
		t.Fatalf("expected one notification, got %d", sink.count())
	}

	// A second tick must not re-fire: the sent flag guards delivery.
	p.Tick(ctx)
	if sink.count() != 1 {
		t.Fatalf("reminder re-fired, got %d notifications", sink.count())
	}
}

func TestTickSkipsNotYetDue(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	p, svc, sink := newTestPoller(now)
	ctx := context.Background()

	lead := 15
	if _, err := svc.AddEvent(ctx, "2026-01-10", event.Event{
		Title: "dentist", Time: clock("09:00"), ReminderMinutes: &lead,
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	p.Tick(ctx)
	if sink.count() != 0 {
		t.Fatalf("fired %d notifications before the lead window", sink.count())
	}
}

func TestTickSkipsEventsWithoutReminder(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	p, svc, sink := newTestPoller(now)
	ctx := context.Background()

	if _, err := svc.AddEvent(ctx, "2026-01-10", event.Event{Title: "no lead", Time: clock("09:00")}); err != nil {
		t.Fatalf("add timed: %v", err)
	}
	lead := 5
	if _, err := svc.AddEvent(ctx, "2026-01-10", event.Event{Title: "untimed", ReminderMinutes: &lead}); err != nil {
		t.Fatalf("add untimed: %v", err)
	}

	p.Tick(ctx)
	if sink.count() != 0 {
		t.Fatalf("expected nothing to fire, got %d", sink.count())
	}
}

func TestTickFiresRecurringOncePerDay(t *testing.T) {
	// 2026-01-12 is a Monday.
	now := time.Date(2026, 1, 12, 17, 55, 0, 0, time.UTC)
	p, svc, sink := newTestPoller(now)
	ctx := context.Background()

	lead := 10
	if _, err := svc.AddRecurring(ctx, event.RecurringEvent{
		Title: "gym", Days: []time.Weekday{time.Monday},
		Time: clock("18:00"), ReminderMinutes: &lead,
	}); err != nil {
		t.Fatalf("add recurring: %v", err)
	}

	p.Tick(ctx)
	p.Tick(ctx)
	if sink.count() != 1 {
		t.Fatalf("expected one recurring notification, got %d", sink.count())
	}

	recs, err := svc.Recurrings(ctx)
	if err != nil {
		t.Fatalf("recurrings: %v", err)
	}
	if !recs[0].ReminderFiredOn("2026-01-12") {
		t.Fatal("occurrence not recorded as fired")
	}
}

func TestTickSkipsRecurringOnOtherDays(t *testing.T) {
	// 2026-01-13 is a Tuesday.
	now := time.Date(2026, 1, 13, 17, 55, 0, 0, time.UTC)
	p, svc, sink := newTestPoller(now)
	ctx := context.Background()

	lead := 10
	if _, err := svc.AddRecurring(ctx, event.RecurringEvent{
		Title: "gym", Days: []time.Weekday{time.Monday},
		Time: clock("18:00"), ReminderMinutes: &lead,
	}); err != nil {
		t.Fatalf("add recurring: %v", err)
	}

	p.Tick(ctx)
	if sink.count() != 0 {
		t.Fatalf("recurring fired on the wrong weekday, got %d", sink.count())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	p, _, _ := newTestPoller(time.Now())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := p.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	p.Stop()
	p.Stop() // must not panic or block
}

func TestPollerRestartsAfterStop(t *testing.T) {
	p, _, _ := newTestPoller(time.Now())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := p.Start(ctx); err != nil {
		t.Fatalf("first start: %v", err)
	}
	p.Stop()

	if err := p.Start(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}
	p.mu.Lock()
	running := p.cron != nil
	p.mu.Unlock()
	if !running {
		t.Fatal("poller did not restart after Stop")
	}

	p.Stop()
	p.mu.Lock()
	stopped := p.cron == nil
	p.mu.Unlock()
	if !stopped {
		t.Fatal("second Stop left the scheduler running")
	}
}
