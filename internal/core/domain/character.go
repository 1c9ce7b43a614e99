package domain

import "errors"

// Gender of a created character.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// CharClass is the adventuring class of a character.
type CharClass string

const (
	ClassWarrior CharClass = "Warrior"
	ClassMage    CharClass = "Mage"
	ClassRogue   CharClass = "Rogue"
)

var (
	ErrInvalidGender = errors.New("invalid gender")
	ErrInvalidClass  = errors.New("invalid character class")
	ErrBlankName     = errors.New("character name is blank")
)

// Genders lists the selectable genders in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Classes lists the selectable classes in display order.
var Classes = []CharClass{ClassWarrior, ClassMage, ClassRogue}

// ParseGender returns the Gender matching s exactly.
func ParseGender(s string) (Gender, error) {
	for _, g := range Genders {
		if string(g) == s {
			return g, nil
		}
	}
	return "", ErrInvalidGender
}

// ParseCharClass returns the CharClass matching s exactly.
func ParseCharClass(s string) (CharClass, error) {
	for _, c := range Classes {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidClass
}

// Character is a record created from the character form. It is never
// mutated after creation.
type Character struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	CharClass CharClass `json:"charClass"`
}
