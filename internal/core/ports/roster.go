package ports

import "github.com/rpgbuilder/character-builder/internal/core/domain"

// Roster serves the fixed adventurer data behind the static pages.
type Roster interface {
	Players() []domain.Player
	Factions() []domain.Faction
}
