package session

import (
	"errors"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/context-ai/showcase/backend/pkg/common"
)

// ErrNotFound is returned when a session id does not resolve to a live
// session.
var ErrNotFound = errors.New("session not found")

// State is the explicit per-viewer demo state: which applicant archetype is
// selected, which journey stage the viewer is on, and whether debug
// rendering is enabled. A zero stage index means the first journey stage.
type State struct {
	ID         string           `json:"id"`
	Archetype  common.Archetype `json:"archetype"`
	StageIndex int              `json:"stage_index"`
	Debug      bool             `json:"debug"`
}

// Stage resolves the stage index to its name.
func (s State) Stage() string {
	idx := s.StageIndex
	if idx < 0 {
		idx = 0
	}
	if idx >= len(common.Stages) {
		idx = len(common.Stages) - 1
	}
	return common.Stages[idx]
}

// Registry holds live sessions in memory. Sessions do not survive a restart,
// which is fine for a demo: a stale id just means creating a new session.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]State
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]State)}
}

// Create registers a new session starting at the first journey stage.
func (r *Registry) Create(archetype common.Archetype) (State, error) {
	id, err := gonanoid.New()
	if err != nil {
		return State{}, err
	}

	s := State{ID: id, Archetype: archetype}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	return s, nil
}

func (r *Registry) Get(id string) (State, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return State{}, ErrNotFound
	}
	return s, nil
}

// Update applies fn to the session under the registry lock and returns the
// resulting state. The stage index is clamped to the journey bounds so a
// viewer can never step past the last stage or before the first.
func (r *Registry) Update(id string, fn func(*State)) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}

	fn(&s)
	if s.StageIndex < 0 {
		s.StageIndex = 0
	}
	if s.StageIndex >= len(common.Stages) {
		s.StageIndex = len(common.Stages) - 1
	}
	s.ID = id

	r.sessions[id] = s
	return s, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
