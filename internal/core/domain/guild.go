package domain

import "errors"

// GuildType categorises a guild.
type GuildType string

const (
	GuildCompetitive GuildType = "Competitive"
	GuildCasual      GuildType = "Casual"
	GuildEducational GuildType = "Educational"
)

// NotificationPreference is how a guild wants to be contacted.
type NotificationPreference string

const (
	NotifyEmail NotificationPreference = "Email"
	NotifySMS   NotificationPreference = "SMS"
)

const (
	MaxGuildNameLen   = 100
	MaxDescriptionLen = 1000
)

var (
	ErrInvalidGuildType    = errors.New("invalid guild type")
	ErrInvalidNotification = errors.New("invalid notification preference")
	ErrTermsNotAccepted    = errors.New("terms not accepted")
	ErrGuildNameRequired   = errors.New("guild name is required")
	ErrGuildNameTooLong    = errors.New("guild name too long")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description too long")
)

var GuildTypes = []GuildType{GuildCompetitive, GuildCasual, GuildEducational}

var NotificationPreferences = []NotificationPreference{NotifyEmail, NotifySMS}

func ParseGuildType(s string) (GuildType, error) {
	for _, t := range GuildTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidGuildType
}

func ParseNotificationPreference(s string) (NotificationPreference, error) {
	for _, n := range NotificationPreferences {
		if string(n) == s {
			return n, nil
		}
	}
	return "", ErrInvalidNotification
}

// Guild is a record created from the guild form. GuildName is used as the
// removal key but is not required to be unique.
type Guild struct {
	GuildName              string                 `json:"guildName"`
	Description            string                 `json:"description"`
	Type                   GuildType              `json:"type"`
	NotificationPreference NotificationPreference `json:"notificationPreference"`
}
