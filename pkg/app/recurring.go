package app

import (
	"context"

	"tableflip.dev/agenda/pkg/event"
)

// firedDatesCap bounds the per-template record of delivered occurrence
// reminders; oldest dates age out first.
const firedDatesCap = 90

// AddRecurring validates and stores a new recurring event template.
func (s *Service) AddRecurring(ctx context.Context, in event.RecurringEvent) (*event.RecurringEvent, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	r := in.Clone()
	r.ID = s.id()
	r.FiredDates = nil
	r.Created = event.Timestamp{Time: s.now()}

	state.RecurringEvents = append(state.RecurringEvents, r)
	if err := s.Persistence.SaveTimeline(state); err != nil {
		return nil, err
	}
	out := r.Clone()
	return &out, nil
}

// UpdateRecurring merges the patch into the identified template. A missing
// id yields a nil result; invalid merges are rejected before writing.
func (s *Service) UpdateRecurring(ctx context.Context, id string, patch event.RecurringPatch) (*event.RecurringEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	for i := range state.RecurringEvents {
		if state.RecurringEvents[i].ID != id {
			continue
		}
		merged := state.RecurringEvents[i].Clone()
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		state.RecurringEvents[i] = merged
		if err := s.Persistence.SaveTimeline(state); err != nil {
			return nil, err
		}
		out := merged.Clone()
		return &out, nil
	}
	return nil, nil
}

// DeleteRecurring removes the template. Already-stored events are untouched;
// only future materialization stops.
func (s *Service) DeleteRecurring(ctx context.Context, id string) (*event.RecurringEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	for i := range state.RecurringEvents {
		if state.RecurringEvents[i].ID != id {
			continue
		}
		removed := state.RecurringEvents[i].Clone()
		state.RecurringEvents = append(state.RecurringEvents[:i], state.RecurringEvents[i+1:]...)
		if err := s.Persistence.SaveTimeline(state); err != nil {
			return nil, err
		}
		return &removed, nil
	}
	return nil, nil
}

// Recurrings lists all recurring event templates.
func (s *Service) Recurrings(ctx context.Context) ([]event.RecurringEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}
	out := make([]event.RecurringEvent, 0, len(state.RecurringEvents))
	for _, r := range state.RecurringEvents {
		out = append(out, r.Clone())
	}
	return out, nil
}

// MarkRecurringReminderFired records that the occurrence reminder for the
// given date went out, keeping the poller idempotent. Unknown ids are a
// no-op.
func (s *Service) MarkRecurringReminderFired(ctx context.Context, id, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return err
	}

	for i := range state.RecurringEvents {
		r := &state.RecurringEvents[i]
		if r.ID != id {
			continue
		}
		if r.ReminderFiredOn(date) {
			return nil
		}
		r.FiredDates = append(r.FiredDates, date)
		if len(r.FiredDates) > firedDatesCap {
			r.FiredDates = r.FiredDates[len(r.FiredDates)-firedDatesCap:]
		}
		return s.Persistence.SaveTimeline(state)
	}
	return nil
}
