package repositories

import (
	"context"
)

// VcsRepository abstracts version control over the tap's working tree.
type VcsRepository interface {
	// CommitFile stages relPath inside the repository at repoPath and
	// commits it with the given message. The change check is scoped to
	// relPath only; unrelated staged files neither suppress nor force a
	// commit. Returns false without creating a commit when the file is
	// unchanged against the last commit.
	CommitFile(ctx context.Context, repoPath, relPath, message string) (bool, error)
}
