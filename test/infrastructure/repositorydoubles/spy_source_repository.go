//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/brewpin/internal/domain/repositories"
)

// SpySourceRepository implements repositories.SourceRepository as a
// configurable spy backed by in-memory content.
type SpySourceRepository struct {
	// --- Exists ---
	ExistingURLs map[string]bool // url -> exists
	ExistsErr    error
	// spy: urls that were probed
	ProbedURLs []string

	// --- Download ---
	DownloadContent []byte
	DownloadErr     error
	// spy: urls that were downloaded
	DownloadedURLs []string
}

var _ repositories.SourceRepository = (*SpySourceRepository)(nil)

func (s *SpySourceRepository) Exists(_ context.Context, url string) (bool, error) {
	s.ProbedURLs = append(s.ProbedURLs, url)
	if s.ExistsErr != nil {
		return false, s.ExistsErr
	}
	return s.ExistingURLs[url], nil
}

func (s *SpySourceRepository) Download(_ context.Context, url, dest string) (int64, error) {
	s.DownloadedURLs = append(s.DownloadedURLs, url)
	if s.DownloadErr != nil {
		return 0, s.DownloadErr
	}
	if err := os.WriteFile(dest, s.DownloadContent, 0o644); err != nil {
		return 0, err
	}
	return int64(len(s.DownloadContent)), nil
}
