package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// The two fixed document keys. Timeline and todos are independent
	// namespaces; saving one never touches the other.
	keyTimeline = "timeline"
	keyTodos    = "todos"

	documentVersion = 1
)

// Persistence is the storage contract for the two persisted documents. Loads
// never fail visibly: a missing key or a malformed blob yields the documented
// empty default so the caller always starts from a consistent state.
type Persistence interface {
	LoadTimeline() (*TimelineState, error)
	SaveTimeline(*TimelineState) error
	LoadTodos() (*TodoState, error)
	SaveTodos(*TodoState) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// document wraps persisted state with a schema version.
type document struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadTimeline() (*TimelineState, error) {
	state := NewTimelineState()
	if !p.loadDocument(keyTimeline, state) {
		// Unmarshal may have filled some fields before failing; a partial
		// document must never leak out as authoritative state.
		state = NewTimelineState()
	}
	state.normalize()
	return state, nil
}

func (p *persistence) SaveTimeline(state *TimelineState) error {
	return p.saveDocument(keyTimeline, state)
}

func (p *persistence) LoadTodos() (*TodoState, error) {
	state := NewTodoState()
	if !p.loadDocument(keyTodos, state) {
		state = NewTodoState()
	}
	state.normalize()
	return state, nil
}

func (p *persistence) SaveTodos(state *TodoState) error {
	return p.saveDocument(keyTodos, state)
}

// loadDocument fills target from the stored blob. Missing keys leave target
// at its defaults and report success. Malformed JSON is reported on stderr
// and returns false; target may then hold a partial decode and the caller
// must discard it for the empty default.
func (p *persistence) loadDocument(key string, target any) bool {
	val, err := p.d.Read(key)
	if err != nil {
		return true
	}
	var doc document
	if err := json.Unmarshal(val, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: malformed document, starting empty: %v\n", key, err)
		return false
	}
	if len(doc.State) == 0 {
		return true
	}
	if err := json.Unmarshal(doc.State, target); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: malformed state, starting empty: %v\n", key, err)
		return false
	}
	return true
}

func (p *persistence) saveDocument(key string, state any) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	data, err := json.Marshal(document{State: raw, Version: documentVersion})
	if err != nil {
		return fmt.Errorf("store: marshal %s document: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
