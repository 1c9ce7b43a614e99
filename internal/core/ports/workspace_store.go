package ports

import (
	"context"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

// WorkspaceStore holds per-visitor workspace state.
type WorkspaceStore interface {
	// Load returns the workspace with the given id or domain.ErrWorkspaceNotFound.
	Load(ctx context.Context, id string) (*domain.Workspace, error)
	// Update applies fn to the workspace atomically, creating an empty
	// workspace first when none exists. The mutated workspace is returned.
	// When fn returns an error nothing is written.
	Update(ctx context.Context, id string, fn func(*domain.Workspace) error) (*domain.Workspace, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
