package pool

import "context"

type Repository interface {
	// StateForUpdate loads the singleton state row with a row lock when the
	// backing store supports one. Mutating operations call this first.
	StateForUpdate(ctx context.Context) (*State, error)
	State(ctx context.Context) (*State, error)
	SaveState(ctx context.Context, s *State) error

	Config(ctx context.Context) (*Config, error)
	SaveConfig(ctx context.Context, c *Config) error

	// EnsureDefaults creates the singleton rows on first boot; existing rows
	// are left alone.
	EnsureDefaults(ctx context.Context, cfg Config) error
}
