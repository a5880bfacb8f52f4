// Package remind delivers event reminders. A poller periodically re-reads
// the full event set, fires a Notifier for anything due, and marks delivery
// so reminders never repeat.
package remind

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"tableflip.dev/agenda/pkg/app"
)

const (
	layoutISO = "2006-01-02"

	// DefaultInterval is the poll period.
	DefaultInterval = 30 * time.Second
)

// Notifier is the delivery sink. The tag deduplicates at the OS notification
// layer; actual delivery is outside this package.
type Notifier interface {
	Notify(title, body, tag string) error
}

// LogNotifier writes reminders to the process log. It is the default sink
// when no platform delivery is wired up.
type LogNotifier struct{}

func (LogNotifier) Notify(title, body, tag string) error {
	log.Printf("remind: %s — %s", title, body)
	return nil
}

// Poller checks reminder due-times on a fixed interval. Start and Stop may
// be called any number of times, in any order; Stop is idempotent and a
// stopped poller can be started again.
type Poller struct {
	Service  *app.Service
	Notifier Notifier
	Interval time.Duration

	// Clock is overridable for tests; zero value means time.Now.
	Clock func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

// NewPoller wires a poller to the service and sink.
func NewPoller(svc *app.Service, n Notifier) *Poller {
	if n == nil {
		n = LogNotifier{}
	}
	return &Poller{Service: svc, Notifier: n, Interval: DefaultInterval}
}

func (p *Poller) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

// Start begins ticking until ctx is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cron != nil {
		return nil
	}

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		p.Tick(ctx)
	}); err != nil {
		return fmt.Errorf("remind: schedule poll: %w", err)
	}
	c.Start()
	p.cron = c

	go func() {
		<-ctx.Done()
		p.Stop()
	}()
	return nil
}

// Stop cancels the running scheduler and waits for an in-flight tick.
// Stopping an already-stopped poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	c := p.cron
	p.cron = nil
	p.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// Tick runs one full reminder pass: every stored event and every recurring
// occurrence for today is checked against now. Delivery is idempotent per
// event; the sent flag (or the per-date fired set for recurring templates)
// guards against re-firing.
func (p *Poller) Tick(ctx context.Context) {
	now := p.now()
	today := now.Format(layoutISO)

	dates, err := p.Service.Dates(ctx)
	if err != nil {
		log.Printf("remind: list dates: %v", err)
		return
	}
	for _, date := range dates {
		events, err := p.Service.EventsForDate(ctx, date)
		if err != nil {
			log.Printf("remind: load %s: %v", date, err)
			continue
		}
		for _, e := range events {
			if !due(date, e.Time, e.ReminderMinutes, e.ReminderSent, now) {
				continue
			}
			if err := p.deliver(e.Title, date, *e.Time); err != nil {
				log.Printf("remind: notify %s: %v", e.ID, err)
				continue
			}
			if err := p.Service.MarkReminderSent(ctx, date, e.ID); err != nil {
				log.Printf("remind: mark %s: %v", e.ID, err)
			}
		}
	}

	recurrings, err := p.Service.Recurrings(ctx)
	if err != nil {
		log.Printf("remind: list recurring: %v", err)
		return
	}
	for _, r := range recurrings {
		if !r.OccursOn(today) || r.ReminderFiredOn(today) {
			continue
		}
		if !due(today, r.Time, r.ReminderMinutes, false, now) {
			continue
		}
		if err := p.deliver(r.Title, today, *r.Time); err != nil {
			log.Printf("remind: notify %s: %v", r.ID, err)
			continue
		}
		if err := p.Service.MarkRecurringReminderFired(ctx, r.ID, today); err != nil {
			log.Printf("remind: mark %s: %v", r.ID, err)
		}
	}
}

func (p *Poller) deliver(title, date, clock string) error {
	body := fmt.Sprintf("Starting at %s", clock)
	tag := date + "/" + title
	return p.Notifier.Notify(title, body, tag)
}

// due reports whether a reminder should fire: the event has a start time and
// a lead, nothing was sent yet, and now is at or past start minus lead.
// Untimed events carry no deliverable instant and never fire.
func due(date string, clock *string, leadMinutes *int, sent bool, now time.Time) bool {
	if sent || clock == nil || leadMinutes == nil {
		return false
	}
	start, err := time.ParseInLocation(layoutISO+" 15:04", date+" "+*clock, now.Location())
	if err != nil {
		return false
	}
	fireAt := start.Add(-time.Duration(*leadMinutes) * time.Minute)
	return !now.Before(fireAt)
}

var _ Notifier = LogNotifier{}
