//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/brewpin/internal/domain/repositories"
)

// SpyBrewRepository implements repositories.BrewRepository as a configurable
// spy. Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyBrewRepository struct {
	// --- IsAvailable ---
	AvailableErr error

	// --- Version ---
	VersionResult string
	VersionErr    error

	// --- TapExists ---
	TapExistsResult bool
	TapExistsErr    error
	// spy: taps that were checked
	TapExistsCalls []string

	// --- CreateTap ---
	CreateTapErr error
	// spy: taps that were created
	CreateTapCalls []string

	// --- TapPath ---
	TapPathResult string
	TapPathErr    error

	// --- Install / Reinstall ---
	InstallErr   error
	ReinstallErr error
	// spy: qualified names received
	InstallCalls   []string
	ReinstallCalls []string
}

var _ repositories.BrewRepository = (*SpyBrewRepository)(nil)

func (s *SpyBrewRepository) IsAvailable() error { return s.AvailableErr }

func (s *SpyBrewRepository) Version(_ context.Context) (string, error) {
	return s.VersionResult, s.VersionErr
}

func (s *SpyBrewRepository) TapExists(_ context.Context, tap string) (bool, error) {
	s.TapExistsCalls = append(s.TapExistsCalls, tap)
	return s.TapExistsResult, s.TapExistsErr
}

func (s *SpyBrewRepository) CreateTap(_ context.Context, tap string) error {
	s.CreateTapCalls = append(s.CreateTapCalls, tap)
	return s.CreateTapErr
}

func (s *SpyBrewRepository) TapPath(_ context.Context, _ string) (string, error) {
	return s.TapPathResult, s.TapPathErr
}

func (s *SpyBrewRepository) Install(_ context.Context, qualifiedName string) error {
	s.InstallCalls = append(s.InstallCalls, qualifiedName)
	return s.InstallErr
}

func (s *SpyBrewRepository) Reinstall(_ context.Context, qualifiedName string) error {
	s.ReinstallCalls = append(s.ReinstallCalls, qualifiedName)
	return s.ReinstallErr
}
