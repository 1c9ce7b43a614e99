package handler

type characterForm struct {
	Name      string `form:"name"      validate:"notblank"`
	Gender    string `form:"gender"    validate:"required,oneof=Male Female Other"`
	CharClass string `form:"charClass" validate:"required,oneof=Warrior Mage Rogue"`
}

func (characterForm) messages() map[string]string {
	return map[string]string{
		"name.notblank":      "Name is required.",
		"gender.required":    "Gender is required.",
		"gender.oneof":       "Gender is required.",
		"charClass.required": "Class is required.",
		"charClass.oneof":    "Class is required.",
	}
}

type guildForm struct {
	GuildName              string `form:"guildName"              validate:"required,max=100"`
	Description            string `form:"description"            validate:"required,max=1000"`
	Type                   string `form:"type"                   validate:"required,oneof=Competitive Casual Educational"`
	NotificationPreference string `form:"notificationPreference" validate:"required,oneof=Email SMS"`
	AcceptTerms            bool   `form:"acceptTerms"            validate:"required"`
}

func (guildForm) messages() map[string]string {
	return map[string]string{
		"guildName.required":              "Guild name is required.",
		"guildName.max":                   "Max 100 characters.",
		"description.required":            "Description is required.",
		"description.max":                 "Max 1000 characters.",
		"type.required":                   "Type is required.",
		"type.oneof":                      "Type is required.",
		"notificationPreference.required": "Notification preference is required.",
		"notificationPreference.oneof":    "Notification preference is required.",
		"acceptTerms.required":            "You must accept the terms.",
	}
}

type signinForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=8,strongpassword"`
}

func (signinForm) messages() map[string]string {
	return map[string]string{
		"email.required":          "Email is required.",
		"email.email":             "Invalid email address.",
		"password.required":       "Password is required.",
		"password.min":            "Password must be at least 8 characters long.",
		"password.strongpassword": "Password must contain at least one uppercase letter and one number.",
	}
}
