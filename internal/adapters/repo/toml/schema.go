package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Session *sessionSchema `toml:"session,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	UserID       string `toml:"user_id"`
	Username     string `toml:"username"`
	Email        string `toml:"email"`
	Plan         int    `toml:"plan"`
	DefaultBotID string `toml:"default_bot_id,omitempty"`
	SignedInAt   string `toml:"signed_in_at,omitempty"`
}
