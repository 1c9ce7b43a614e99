package ports

import (
	"context"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

type AuthService interface {
	// SignIn checks email and password against the seeded credentials and
	// records the outcome in the workspace's auth flag.
	SignIn(ctx context.Context, workspaceID, email, password string) (*domain.Credential, error)
	SignOut(ctx context.Context, workspaceID string) error
	// IsAuthenticated combines cookie presence with the workspace flag.
	IsAuthenticated(ctx context.Context, workspaceID string, hasCookie bool) (bool, error)
}
