package repositories

import (
	"context"
)

// BrewRepository abstracts the Homebrew CLI collaborator.
type BrewRepository interface {
	// IsAvailable reports whether the brew executable can be found.
	IsAvailable() error
	// Version returns brew's version string (e.g. "4.2.0").
	Version(ctx context.Context) (string, error)
	// TapExists reports whether the named tap is already registered.
	TapExists(ctx context.Context, tap string) (bool, error)
	// CreateTap registers a new empty tap (brew tap-new).
	CreateTap(ctx context.Context, tap string) error
	// TapPath resolves the tap's backing filesystem root.
	TapPath(ctx context.Context, tap string) (string, error)
	// Install installs the tap-qualified formula, surfacing output verbatim.
	Install(ctx context.Context, qualifiedName string) error
	// Reinstall reinstalls the tap-qualified formula.
	Reinstall(ctx context.Context, qualifiedName string) error
}
