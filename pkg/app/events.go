package app

import (
	"context"

	"tableflip.dev/agenda/pkg/event"
)

// AddEvent validates the input, assigns an id and creation timestamp, files
// the event under the date bucket, and persists. The created event is
// returned.
func (s *Service) AddEvent(ctx context.Context, date string, in event.Event) (*event.Event, error) {
	if err := in.Validate(date); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	e := in.Clone()
	e.ID = s.id()
	e.ReminderSent = false
	e.Created = event.Timestamp{Time: s.now()}

	state.EventsByDate[date] = append(state.EventsByDate[date], e)
	event.Sort(state.EventsByDate[date])

	if err := s.Persistence.SaveTimeline(state); err != nil {
		return nil, err
	}
	out := e.Clone()
	return &out, nil
}

// UpdateEvent merges the patch into the identified event and persists. A
// missing bucket or id is a soft no-op signalled by a nil result. Patches
// producing an invalid event are rejected before anything is written.
func (s *Service) UpdateEvent(ctx context.Context, date, id string, patch event.Patch) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	bucket, ok := state.EventsByDate[date]
	if !ok {
		return nil, nil
	}
	for i := range bucket {
		if bucket[i].ID != id {
			continue
		}
		merged := bucket[i].Clone()
		patch.Apply(&merged)
		if err := merged.Validate(date); err != nil {
			return nil, err
		}
		bucket[i] = merged
		event.Sort(bucket)
		state.EventsByDate[date] = bucket
		if err := s.Persistence.SaveTimeline(state); err != nil {
			return nil, err
		}
		out := merged.Clone()
		return &out, nil
	}
	return nil, nil
}

// DeleteEvent removes the event from its bucket, dropping the bucket once
// empty, and pushes the removed event onto the undo stack. A nil result
// means nothing matched.
func (s *Service) DeleteEvent(ctx context.Context, date, id string) (*event.DeletedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	bucket, ok := state.EventsByDate[date]
	if !ok {
		return nil, nil
	}
	for i := range bucket {
		if bucket[i].ID != id {
			continue
		}
		removed := bucket[i].Clone()
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(state.EventsByDate, date)
		} else {
			state.EventsByDate[date] = bucket
		}
		if err := s.Persistence.SaveTimeline(state); err != nil {
			return nil, err
		}

		entry := event.DeletedEvent{
			Event:     removed,
			Date:      date,
			DeletedAt: event.Timestamp{Time: s.now()},
		}
		s.pushDeleted(entry)
		return &entry, nil
	}
	return nil, nil
}

// MoveEvent transfers the event from one date bucket to another in a single
// persisted mutation. Moving an event onto its own date is a no-op that
// returns the event unchanged.
func (s *Service) MoveEvent(ctx context.Context, fromDate, toDate, id string) (*event.Event, error) {
	if err := event.ValidateDate(toDate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	bucket, ok := state.EventsByDate[fromDate]
	if !ok {
		return nil, nil
	}
	for i := range bucket {
		if bucket[i].ID != id {
			continue
		}
		moved := bucket[i].Clone()
		if fromDate == toDate {
			return &moved, nil
		}

		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(state.EventsByDate, fromDate)
		} else {
			state.EventsByDate[fromDate] = bucket
		}
		state.EventsByDate[toDate] = append(state.EventsByDate[toDate], moved)
		event.Sort(state.EventsByDate[toDate])

		if err := s.Persistence.SaveTimeline(state); err != nil {
			return nil, err
		}
		out := moved.Clone()
		return &out, nil
	}
	return nil, nil
}

// RestoreEvent reinserts an event under the given date, preserving its
// original identifier. Used by undo.
func (s *Service) RestoreEvent(ctx context.Context, date string, e event.Event) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restoreLocked(date, e)
}

func (s *Service) restoreLocked(date string, e event.Event) (*event.Event, error) {
	state, err := s.timeline()
	if err != nil {
		return nil, err
	}
	restored := e.Clone()
	state.EventsByDate[date] = append(state.EventsByDate[date], restored)
	event.Sort(state.EventsByDate[date])
	if err := s.Persistence.SaveTimeline(state); err != nil {
		return nil, err
	}
	out := restored.Clone()
	return &out, nil
}

// UndoDelete pops the most recently deleted event and reinserts it into its
// original date bucket. A nil result means the stack was empty.
func (s *Service) UndoDelete(ctx context.Context) (*event.DeletedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.deleted) == 0 {
		return nil, nil
	}
	top := s.deleted[len(s.deleted)-1]
	if _, err := s.restoreLocked(top.Date, top.Event); err != nil {
		return nil, err
	}
	s.deleted = s.deleted[:len(s.deleted)-1]
	return &top, nil
}

// ClearUndo empties the recently-deleted stack, e.g. after a bulk import.
func (s *Service) ClearUndo() {
	s.mu.Lock()
	s.deleted = nil
	s.mu.Unlock()
}

// RecentlyDeleted returns a copy of the undo stack, newest first.
func (s *Service) RecentlyDeleted() []event.DeletedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]event.DeletedEvent, 0, len(s.deleted))
	for i := len(s.deleted) - 1; i >= 0; i-- {
		out = append(out, s.deleted[i])
	}
	return out
}

func (s *Service) pushDeleted(entry event.DeletedEvent) {
	s.deleted = append(s.deleted, entry)
	if len(s.deleted) > undoCapacity {
		s.deleted = s.deleted[len(s.deleted)-undoCapacity:]
	}
}

// MarkReminderSent flips the reminder flag so the poller does not re-fire.
// Unknown dates or ids are a no-op.
func (s *Service) MarkReminderSent(ctx context.Context, date, id string) error {
	sent := true
	_, err := s.UpdateEvent(ctx, date, id, event.Patch{ReminderSent: &sent})
	return err
}
