package app

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
)

// Service provides high-level operations over the persisted timeline and
// todo documents. It owns no ambient state: construct one and pass it to
// whatever needs it. Every mutation runs a single load-mutate-save sequence
// under the service mutex, which preserves the one-writer guarantee the
// storage layer relies on.
type Service struct {
	Persistence store.Persistence

	// Clock and NewID exist so tests can pin time and identifiers; the
	// zero values fall back to time.Now and random UUIDs.
	Clock func() time.Time
	NewID func() string

	mu      sync.Mutex
	deleted []event.DeletedEvent // undo stack, newest last
}

// undoCapacity bounds the recently-deleted stack; oldest entries are
// dropped on overflow.
const undoCapacity = 10

var errNoPersistence = errors.New("app: no persistence configured")

// NewService wraps the given persistence.
func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Service) id() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) timeline() (*store.TimelineState, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.LoadTimeline()
}

func (s *Service) todos() (*store.TodoState, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.LoadTodos()
}
