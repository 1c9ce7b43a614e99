package ports

import (
	"context"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

// CreateCharacterInput carries the raw values submitted by the character form.
type CreateCharacterInput struct {
	Name      string
	Gender    string
	CharClass string
}

// CharacterListener receives the full character list after every change.
type CharacterListener func(workspaceID string, characters []domain.Character)

type CharacterService interface {
	Create(ctx context.Context, workspaceID string, input CreateCharacterInput) (domain.Character, []domain.Character, error)
	List(ctx context.Context, workspaceID string) ([]domain.Character, error)
	OnChange(fn CharacterListener)
}
