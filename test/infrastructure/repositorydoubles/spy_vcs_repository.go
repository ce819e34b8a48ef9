//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/brewpin/internal/domain/repositories"
)

// CommitCall records one CommitFile invocation.
type CommitCall struct {
	RepoPath string
	RelPath  string
	Message  string
}

// SpyVcsRepository implements repositories.VcsRepository as a configurable spy.
type SpyVcsRepository struct {
	CommitResult bool
	CommitErr    error
	// spy: inputs received
	CommitCalls []CommitCall
}

var _ repositories.VcsRepository = (*SpyVcsRepository)(nil)

func (s *SpyVcsRepository) CommitFile(
	_ context.Context,
	repoPath, relPath, message string,
) (bool, error) {
	s.CommitCalls = append(s.CommitCalls, CommitCall{
		RepoPath: repoPath,
		RelPath:  relPath,
		Message:  message,
	})
	return s.CommitResult, s.CommitErr
}
