package git

import (
	"context"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/brewpin/internal/domain/repositories"
)

// Fallback identity for the one-shot commit retry when the repository has
// no configured identity. It is scoped to the single commit invocation and
// never persisted to any git config.
const (
	fallbackIdentityName  = "brewpin"
	fallbackIdentityEmail = "brewpin@localhost"
)

// GoGitVcsRepository implements repositories.VcsRepository with go-git,
// keeping the commit protocol in-process.
type GoGitVcsRepository struct{}

// NewGoGitVcsRepository creates a new go-git backed VCS collaborator.
func NewGoGitVcsRepository() repositories.VcsRepository {
	return &GoGitVcsRepository{}
}

// CommitFile stages relPath and commits only when that path differs from
// the last commit. The change check ignores unrelated entries in the
// working tree so foreign staged files cannot misfire it.
func (it *GoGitVcsRepository) CommitFile(
	_ context.Context,
	repoPath, relPath, message string,
) (bool, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return false, fmt.Errorf("failed to open repository at %s: %w", repoPath, err)
	}

	worktree, wtErr := repo.Worktree()
	if wtErr != nil {
		return false, fmt.Errorf("failed to open worktree at %s: %w", repoPath, wtErr)
	}

	if _, addErr := worktree.Add(relPath); addErr != nil {
		return false, fmt.Errorf("failed to stage %s: %w", relPath, addErr)
	}

	status, statusErr := worktree.Status()
	if statusErr != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", statusErr)
	}
	fileStatus, staged := status[relPath]
	if !staged || fileStatus.Staging == gogit.Unmodified {
		return false, nil
	}

	hash, commitErr := worktree.Commit(message, &gogit.CommitOptions{})
	if commitErr != nil {
		logger.Debugf("Commit failed (%v), retrying once with the fallback identity", commitErr)
		signature := &object.Signature{
			Name:  fallbackIdentityName,
			Email: fallbackIdentityEmail,
			When:  time.Now(),
		}
		hash, commitErr = worktree.Commit(message, &gogit.CommitOptions{
			Author:    signature,
			Committer: signature,
		})
		if commitErr != nil {
			return false, fmt.Errorf("failed to commit %s: %w", relPath, commitErr)
		}
	}

	logger.Debugf("Committed %s as %s", relPath, hash)
	return true, nil
}
