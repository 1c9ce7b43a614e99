package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
)

// DefaultCredentials is the static credential list the sign-in form checks
// against.
var DefaultCredentials = []domain.Credential{
	{EmpID: 1007, Email: "jane@jane.com", Password: "JaneJane123"},
}

// AuthService is a sign-in mock: credentials are a fixed list compared in
// plain text and the outcome is a boolean flag on the workspace.
type AuthService struct {
	store       ports.WorkspaceStore
	credentials []domain.Credential
	logger      zerolog.Logger
}

func NewAuthService(store ports.WorkspaceStore, credentials []domain.Credential, logger zerolog.Logger) *AuthService {
	if credentials == nil {
		credentials = DefaultCredentials
	}
	return &AuthService{store: store, credentials: credentials, logger: logger}
}

func (s *AuthService) SignIn(ctx context.Context, workspaceID, email, password string) (*domain.Credential, error) {
	var match *domain.Credential
	for i := range s.credentials {
		if s.credentials[i].Email == email && s.credentials[i].Password == password {
			match = &s.credentials[i]
			break
		}
	}

	if _, err := s.store.Update(ctx, workspaceID, func(w *domain.Workspace) error {
		w.SignedIn = match != nil
		return nil
	}); err != nil {
		return nil, err
	}

	if match == nil {
		s.logger.Warn().Str("workspace_id", workspaceID).Str("email", email).Msg("sign-in rejected")
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("workspace_id", workspaceID).Int("emp_id", match.EmpID).Msg("signed in")
	c := *match
	return &c, nil
}

func (s *AuthService) SignOut(ctx context.Context, workspaceID string) error {
	_, err := s.store.Update(ctx, workspaceID, func(w *domain.Workspace) error {
		w.SignedIn = false
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("workspace_id", workspaceID).Msg("signed out")
	return nil
}

// IsAuthenticated is true only when the session cookie is present and the
// workspace flag is set. The two are not kept in lockstep: a cookie that
// outlives its workspace reads as signed out here while still passing the
// route guard.
func (s *AuthService) IsAuthenticated(ctx context.Context, workspaceID string, hasCookie bool) (bool, error) {
	if !hasCookie || workspaceID == "" {
		return false, nil
	}
	ws, err := s.store.Load(ctx, workspaceID)
	if err == domain.ErrWorkspaceNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ws.SignedIn, nil
}
