package model

// Config holds the process configuration assembled at startup from the
// environment plus the per-guild settings loaded from the database.
type Config struct {
	BotToken     string
	AppID        string
	DataDir      string
	LogChannelID string
	LogFile      string

	// AutoRoles maps guild ID to that guild's auto-role settings. The map is
	// replaced wholesale on reload, never mutated in place.
	AutoRoles map[string]AutoRoleConfig
}

// AutoRoleConfig is the per-guild auto-role assignment configuration. The bot
// only reads it; operators manage the rows directly in the database.
type AutoRoleConfig struct {
	GuildID string
	Enabled bool
	RoleIDs []string
}
