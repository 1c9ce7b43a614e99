package service

import "github.com/rpgbuilder/character-builder/internal/core/domain"

var adventurers = []domain.Player{
	{Name: "Thorn", Gender: domain.GenderMale, Class: domain.ClassWarrior, Faction: "The Brotherhood", StartingLocation: "Home", FunFact: "defeated a dragon."},
	{Name: "Lyra", Gender: domain.GenderFemale, Class: domain.ClassMage, Faction: "Pixies", StartingLocation: "Beach", FunFact: "knows spells"},
	{Name: "Shade", Gender: domain.GenderOther, Class: domain.ClassRogue, Faction: "The Veil", StartingLocation: "Pub", FunFact: "Can pick any lock"},
	{Name: "Brom", Gender: domain.GenderMale, Class: domain.ClassWarrior, Faction: "The Veil", StartingLocation: "Home", FunFact: "Uses a shield"},
	{Name: "Seraphine", Gender: domain.GenderFemale, Class: domain.ClassMage, Faction: "Sunlit Order", StartingLocation: "Pub", FunFact: "Her familiar is a sentient mote of sunlight."},
	{Name: "Vex", Gender: domain.GenderOther, Class: domain.ClassRogue, Faction: "The Vail", StartingLocation: "Beach", FunFact: "Vex leaves origami foxes at every heist."},
	{Name: "Garruk", Gender: domain.GenderMale, Class: domain.ClassWarrior, Faction: "Sunlit Order", StartingLocation: "Home", FunFact: "Garruk arm-wrestled a minotaur and won."},
	{Name: "Naida", Gender: domain.GenderFemale, Class: domain.ClassMage, Faction: "Pixies", StartingLocation: "Beach", FunFact: "breathes underwater."},
	{Name: "Kite", Gender: domain.GenderOther, Class: domain.ClassRogue, Faction: "Skylark Syndicate", StartingLocation: "Pub", FunFact: "never touched the ground"},
	{Name: "Helga", Gender: domain.GenderFemale, Class: domain.ClassWarrior, Faction: "Vanguard", StartingLocation: "Home", FunFact: "laughs at battlefield."},
}

// RosterService serves the fixed adventurer list.
type RosterService struct {
	players []domain.Player
}

func NewRosterService() *RosterService {
	return &RosterService{players: adventurers}
}

// Players returns a copy of the adventurer list in display order.
func (s *RosterService) Players() []domain.Player {
	return append([]domain.Player(nil), s.players...)
}

// Factions groups players by faction, ordered by each faction's first
// appearance in the player list.
func (s *RosterService) Factions() []domain.Faction {
	index := make(map[string]int)
	var factions []domain.Faction
	for _, p := range s.players {
		i, ok := index[p.Faction]
		if !ok {
			i = len(factions)
			index[p.Faction] = i
			factions = append(factions, domain.Faction{Name: p.Faction})
		}
		factions[i].Members = append(factions[i].Members, p)
	}
	return factions
}
