package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub workspace store
// ---------------------------------------------------------------------------

type stubWorkspaceStore struct {
	workspaces map[string]*domain.Workspace
	updateErr  error // if set, Update returns this error
}

func newStubWorkspaceStore() *stubWorkspaceStore {
	return &stubWorkspaceStore{workspaces: make(map[string]*domain.Workspace)}
}

func (s *stubWorkspaceStore) Load(_ context.Context, id string) (*domain.Workspace, error) {
	ws, ok := s.workspaces[id]
	if !ok {
		return nil, domain.ErrWorkspaceNotFound
	}
	return ws.Clone(), nil
}

func (s *stubWorkspaceStore) Update(_ context.Context, id string, fn func(*domain.Workspace) error) (*domain.Workspace, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	ws, ok := s.workspaces[id]
	if !ok {
		ws = domain.NewWorkspace(id)
	}
	next := ws.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	s.workspaces[id] = next.Clone()
	return next, nil
}

func (s *stubWorkspaceStore) Ping(context.Context) error { return nil }

var discardLogger = zerolog.Nop()
