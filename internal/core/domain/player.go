package domain

// Player is one of the fixed adventurers shown on the players page.
type Player struct {
	Name             string
	Gender           Gender
	Class            CharClass
	Faction          string
	StartingLocation string
	FunFact          string
}

// Faction groups the players that belong to it.
type Faction struct {
	Name    string
	Members []Player
}
