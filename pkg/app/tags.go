package app

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/agenda/pkg/event"
)

var errTagNameRequired = errors.New("app: tag name required")

// AddTag stores a new tag in the catalog.
func (s *Service) AddTag(ctx context.Context, name, color string) (*event.EventTag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errTagNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	tag := event.EventTag{ID: s.id(), Name: name, Color: color}
	state.Tags = append(state.Tags, tag)
	if err := s.Persistence.SaveTimeline(state); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag merges the patch into the identified tag; nil when missing.
func (s *Service) UpdateTag(ctx context.Context, id string, patch event.TagPatch) (*event.EventTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	for i := range state.Tags {
		if state.Tags[i].ID != id {
			continue
		}
		merged := state.Tags[i]
		patch.Apply(&merged)
		if strings.TrimSpace(merged.Name) == "" {
			return nil, errTagNameRequired
		}
		state.Tags[i] = merged
		if err := s.Persistence.SaveTimeline(state); err != nil {
			return nil, err
		}
		return &merged, nil
	}
	return nil, nil
}

// DeleteTag removes the tag and cascades: every reference to it held by an
// event or recurring event is dropped in the same persisted mutation, so no
// dangling tag ids survive.
func (s *Service) DeleteTag(ctx context.Context, id string) (*event.EventTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range state.Tags {
		if state.Tags[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}
	removed := state.Tags[idx]
	state.Tags = append(state.Tags[:idx], state.Tags[idx+1:]...)

	for date, bucket := range state.EventsByDate {
		for i := range bucket {
			bucket[i].TagIDs = withoutTag(bucket[i].TagIDs, id)
		}
		state.EventsByDate[date] = bucket
	}
	for i := range state.RecurringEvents {
		state.RecurringEvents[i].TagIDs = withoutTag(state.RecurringEvents[i].TagIDs, id)
	}

	if err := s.Persistence.SaveTimeline(state); err != nil {
		return nil, err
	}
	return &removed, nil
}

// Tags lists the tag catalog.
func (s *Service) Tags(ctx context.Context) ([]event.EventTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.timeline()
	if err != nil {
		return nil, err
	}
	return append([]event.EventTag(nil), state.Tags...), nil
}

func withoutTag(ids []string, id string) []string {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
