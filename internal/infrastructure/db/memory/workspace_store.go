// Package memory holds workspaces in process memory. State is lost on
// restart, which matches a browser session's lifetime closely enough for a
// single instance.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

type entry struct {
	ws        *domain.Workspace
	expiresAt time.Time
}

// WorkspaceStore is a mutex-guarded map of workspaces with sliding expiry.
type WorkspaceStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewWorkspaceStore(ttl time.Duration) *WorkspaceStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &WorkspaceStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *WorkspaceStore) Load(_ context.Context, id string) (*domain.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		return nil, domain.ErrWorkspaceNotFound
	}
	return e.ws.Clone(), nil
}

func (s *WorkspaceStore) Update(_ context.Context, id string, fn func(*domain.Workspace) error) (*domain.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next *domain.Workspace
	if e, ok := s.live(id); ok {
		next = e.ws.Clone()
	} else {
		next = domain.NewWorkspace(id)
	}

	if err := fn(next); err != nil {
		return nil, err
	}

	now := s.now()
	next.UpdatedAt = now.UTC()
	s.entries[id] = entry{ws: next.Clone(), expiresAt: now.Add(s.ttl)}
	return next, nil
}

func (s *WorkspaceStore) Ping(context.Context) error { return nil }

// Len reports the number of stored workspaces, expired ones included.
func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops expired workspaces and returns how many were removed.
func (s *WorkspaceStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// StartSweeper runs Sweep every interval until ctx is cancelled.
func (s *WorkspaceStore) StartSweeper(ctx context.Context, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					log.Debug().Int("removed", n).Msg("expired workspaces swept")
				}
			}
		}
	}()
}

// live must be called with mu held.
func (s *WorkspaceStore) live(id string) (entry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return entry{}, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return entry{}, false
	}
	return e, true
}
