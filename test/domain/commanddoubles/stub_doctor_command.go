//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/brewpin/internal/domain/commands"
)

// StubDoctorCommand is a stub implementation of commands.Doctor.
type StubDoctorCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
}

var _ commands.Doctor = (*StubDoctorCommand)(nil)

func (s *StubDoctorCommand) Execute(_ context.Context) error {
	s.ExecuteCallCount++
	return s.ExecuteErr
}
