package app

import (
	"context"
	"sort"
	"strings"

	"tableflip.dev/agenda/pkg/event"
)

// DayAgenda is everything shown for one date: the stored bucket plus the
// recurring templates materializing that day. Recurring occurrences are
// computed on demand and never stored.
type DayAgenda struct {
	Date      string
	Events    []event.Event
	Recurring []event.RecurringEvent
}

// SearchHit pairs a matched event with the date bucket it was found under.
type SearchHit struct {
	Date  string
	Event event.Event
}

// EventsForDate returns the stored bucket for a date in display order. An
// unknown date yields an empty slice.
func (s *Service) EventsForDate(ctx context.Context, date string) ([]event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}
	bucket := state.EventsByDate[date]
	out := make([]event.Event, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e.Clone())
	}
	event.Sort(out)
	return out, nil
}

// RecurringOn filters the template set to those materializing on the date.
func (s *Service) RecurringOn(ctx context.Context, date string) ([]event.RecurringEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}
	return recurringOn(state.RecurringEvents, date), nil
}

func recurringOn(templates []event.RecurringEvent, date string) []event.RecurringEvent {
	out := make([]event.RecurringEvent, 0)
	for _, r := range templates {
		if r.OccursOn(date) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Agenda returns the stored and materialized entries for one date.
func (s *Service) Agenda(ctx context.Context, date string) (*DayAgenda, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	bucket := state.EventsByDate[date]
	events := make([]event.Event, 0, len(bucket))
	for _, e := range bucket {
		events = append(events, e.Clone())
	}
	event.Sort(events)

	return &DayAgenda{
		Date:      date,
		Events:    events,
		Recurring: recurringOn(state.RecurringEvents, date),
	}, nil
}

// HasEvents reports whether the date shows anything: a stored bucket or at
// least one materialized recurring event.
func (s *Service) HasEvents(ctx context.Context, date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return false, err
	}
	if len(state.EventsByDate[date]) > 0 {
		return true, nil
	}
	for _, r := range state.RecurringEvents {
		if r.OccursOn(date) {
			return true, nil
		}
	}
	return false, nil
}

// Search runs a free-text query over the timeline. A bucket whose date key
// contains the query contributes all its events; independently, any event
// whose title or description contains the query (case-insensitive) is
// included. Hits deduplicate by (date, event id) and come back in reverse
// chronological order, bucket order within a date.
func (s *Service) Search(ctx context.Context, query string) ([]SearchHit, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []SearchHit{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(state.EventsByDate))
	for d := range state.EventsByDate {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	hits := make([]SearchHit, 0)
	seen := make(map[string]struct{})
	for _, date := range dates {
		dateMatch := strings.Contains(date, q)

		bucket := make([]event.Event, 0, len(state.EventsByDate[date]))
		for _, e := range state.EventsByDate[date] {
			bucket = append(bucket, e.Clone())
		}
		event.Sort(bucket)

		for _, e := range bucket {
			if !dateMatch && !fieldMatch(e, q) {
				continue
			}
			key := date + "\x00" + e.ID
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			hits = append(hits, SearchHit{Date: date, Event: e})
		}
	}
	return hits, nil
}

func fieldMatch(e event.Event, q string) bool {
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}

// Dates returns every date key holding at least one stored event, ascending.
func (s *Service) Dates(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(state.EventsByDate))
	for d := range state.EventsByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}
