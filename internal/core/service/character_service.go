package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
)

// CharacterService creates characters inside a visitor's workspace.
type CharacterService struct {
	store  ports.WorkspaceStore
	logger zerolog.Logger

	mu        sync.RWMutex
	listeners []ports.CharacterListener
}

func NewCharacterService(store ports.WorkspaceStore, logger zerolog.Logger) *CharacterService {
	return &CharacterService{store: store, logger: logger}
}

// OnChange registers fn to be called with the full list after each creation.
func (s *CharacterService) OnChange(fn ports.CharacterListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Create validates input, assigns the next sequential id and appends the
// character. The returned slice is the full updated list.
func (s *CharacterService) Create(ctx context.Context, workspaceID string, input ports.CreateCharacterInput) (domain.Character, []domain.Character, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Character{}, nil, domain.ErrBlankName
	}
	gender, err := domain.ParseGender(input.Gender)
	if err != nil {
		return domain.Character{}, nil, err
	}
	class, err := domain.ParseCharClass(input.CharClass)
	if err != nil {
		return domain.Character{}, nil, err
	}

	var created domain.Character
	ws, err := s.store.Update(ctx, workspaceID, func(w *domain.Workspace) error {
		if w.NextCharacterID < 1 {
			w.NextCharacterID = 1
		}
		created = domain.Character{
			ID:        w.NextCharacterID,
			Name:      name,
			Gender:    gender,
			CharClass: class,
		}
		w.NextCharacterID++
		w.Characters = append(w.Characters, created)
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("workspace_id", workspaceID).Msg("failed to create character")
		return domain.Character{}, nil, err
	}

	s.logger.Info().
		Str("workspace_id", workspaceID).
		Int("character_id", created.ID).
		Str("class", string(created.CharClass)).
		Msg("character created")

	s.notify(workspaceID, ws.Characters)
	return created, ws.Characters, nil
}

// List returns the workspace's characters in creation order. A workspace
// that does not exist yet has no characters.
func (s *CharacterService) List(ctx context.Context, workspaceID string) ([]domain.Character, error) {
	ws, err := s.store.Load(ctx, workspaceID)
	if err == domain.ErrWorkspaceNotFound {
		return []domain.Character{}, nil
	}
	if err != nil {
		return nil, err
	}
	return ws.Characters, nil
}

func (s *CharacterService) notify(workspaceID string, characters []domain.Character) {
	s.mu.RLock()
	listeners := append([]ports.CharacterListener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(workspaceID, append([]domain.Character(nil), characters...))
	}
}
