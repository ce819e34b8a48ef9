//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitrepo "github.com/rios0rios0/brewpin/internal/infrastructure/repositories/git"
)

func initTapRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Formula"), 0o755))
	return dir, repo
}

func writeFormula(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Formula", "doxygen.rb"), []byte(content), 0o644))
}

func headCommit(t *testing.T, repo *gogit.Repository) *object.Commit {
	t.Helper()

	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	return commit
}

func TestGoGitVcsRepositoryCommitFile(t *testing.T) {
	t.Run("should commit a new formula with the fallback identity", func(t *testing.T) {
		// no global git config in sight, so the first commit attempt has
		// no identity to load
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", "")

		// given
		dir, repo := initTapRepo(t)
		writeFormula(t, dir, "class Doxygen < Formula\nend\n")
		vcs := gitrepo.NewGoGitVcsRepository()

		// when
		committed, err := vcs.CommitFile(context.Background(), dir, "Formula/doxygen.rb", "doxygen: import")

		// then
		require.NoError(t, err)
		assert.True(t, committed)
		commit := headCommit(t, repo)
		assert.Equal(t, "doxygen: import", commit.Message)
		assert.Equal(t, "brewpin", commit.Author.Name)
	})

	t.Run("should use the repository's configured identity when present", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initTapRepo(t)
		cfg, err := repo.Config()
		require.NoError(t, err)
		cfg.User.Name = "Tester"
		cfg.User.Email = "tester@example.com"
		require.NoError(t, repo.SetConfig(cfg))
		writeFormula(t, dir, "class Doxygen < Formula\nend\n")
		vcs := gitrepo.NewGoGitVcsRepository()

		// when
		committed, commitErr := vcs.CommitFile(context.Background(), dir, "Formula/doxygen.rb", "doxygen: import")

		// then
		require.NoError(t, commitErr)
		assert.True(t, committed)
		assert.Equal(t, "Tester", headCommit(t, repo).Author.Name)
	})

	t.Run("should create exactly one commit across two runs with unchanged content", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initTapRepo(t)
		writeFormula(t, dir, "class Doxygen < Formula\nend\n")
		vcs := gitrepo.NewGoGitVcsRepository()
		committed, err := vcs.CommitFile(context.Background(), dir, "Formula/doxygen.rb", "doxygen: import")
		require.NoError(t, err)
		require.True(t, committed)
		firstHead := headCommit(t, repo).Hash

		// when
		committedAgain, secondErr := vcs.CommitFile(context.Background(), dir, "Formula/doxygen.rb", "doxygen: import")

		// then
		require.NoError(t, secondErr)
		assert.False(t, committedAgain)
		assert.Equal(t, firstHead, headCommit(t, repo).Hash)
	})

	t.Run("should commit again when the content changed", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initTapRepo(t)
		writeFormula(t, dir, "class Doxygen < Formula\nend\n")
		vcs := gitrepo.NewGoGitVcsRepository()
		_, err := vcs.CommitFile(context.Background(), dir, "Formula/doxygen.rb", "doxygen: import v1")
		require.NoError(t, err)
		firstHead := headCommit(t, repo).Hash
		writeFormula(t, dir, "class Doxygen < Formula\n  # bumped\nend\n")

		// when
		committed, secondErr := vcs.CommitFile(context.Background(), dir, "Formula/doxygen.rb", "doxygen: import v2")

		// then
		require.NoError(t, secondErr)
		assert.True(t, committed)
		assert.NotEqual(t, firstHead, headCommit(t, repo).Hash)
	})

	t.Run("should ignore unrelated staged files when nothing changed", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initTapRepo(t)
		writeFormula(t, dir, "class Doxygen < Formula\nend\n")
		vcs := gitrepo.NewGoGitVcsRepository()
		_, err := vcs.CommitFile(context.Background(), dir, "Formula/doxygen.rb", "doxygen: import")
		require.NoError(t, err)
		firstHead := headCommit(t, repo).Hash

		require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("foreign"), 0o644))
		worktree, wtErr := repo.Worktree()
		require.NoError(t, wtErr)
		_, addErr := worktree.Add("unrelated.txt")
		require.NoError(t, addErr)

		// when
		committed, secondErr := vcs.CommitFile(context.Background(), dir, "Formula/doxygen.rb", "doxygen: import")

		// then
		require.NoError(t, secondErr)
		assert.False(t, committed)
		assert.Equal(t, firstHead, headCommit(t, repo).Hash)
	})

	t.Run("should fail on a directory that is not a repository", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := gitrepo.NewGoGitVcsRepository()

		// when
		_, err := vcs.CommitFile(context.Background(), t.TempDir(), "Formula/doxygen.rb", "doxygen: import")

		// then
		require.Error(t, err)
	})
}
