//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/brewpin/internal/domain/entities"
	"github.com/rios0rios0/brewpin/test/domain/entitybuilders"
)

func TestNewCandidateURLs(t *testing.T) {
	t.Parallel()

	t.Run("should derive both layout candidates", func(t *testing.T) {
		t.Parallel()

		// given
		root := "https://raw.githubusercontent.com/Homebrew/homebrew-core"
		commit := "d2267b9f2ad247bc9c8273eb755b39566a474a70"

		// when
		candidates := entities.NewCandidateURLs(root, commit, "doxygen")

		// then
		assert.Equal(t,
			root+"/"+commit+"/Formula/d/doxygen.rb",
			candidates.Sharded,
		)
		assert.Equal(t,
			root+"/"+commit+"/Formula/doxygen.rb",
			candidates.Flat,
		)
	})

	t.Run("should lowercase the shard letter and tolerate a trailing slash", func(t *testing.T) {
		t.Parallel()

		// when
		candidates := entities.NewCandidateURLs("https://example.com/root/", "abc", "CMake")

		// then
		assert.Equal(t, "https://example.com/root/abc/Formula/c/CMake.rb", candidates.Sharded)
	})
}

func TestResolvedTarget(t *testing.T) {
	t.Parallel()

	t.Run("should build the tap-qualified name", func(t *testing.T) {
		t.Parallel()

		// given
		target := entitybuilders.NewTargetBuilder().
			WithFormula("doxygen").
			WithTap("tester/local").
			BuildTarget()

		// when
		name := target.QualifiedName()

		// then
		assert.Equal(t, "tester/local/doxygen", name)
		assert.Equal(t, "doxygen.rb", target.FileName())
	})

	t.Run("should reject a target without a formula name", func(t *testing.T) {
		t.Parallel()

		// given
		target := entitybuilders.NewTargetBuilder().WithFormula("").BuildTarget()

		// when
		err := target.Validate()

		// then
		require.Error(t, err)
		assert.Equal(t, entities.ExitCodeUsage, entities.ExitCodeFor(err))
	})

	t.Run("should reject a target without a source URL", func(t *testing.T) {
		t.Parallel()

		// given
		target := entitybuilders.NewTargetBuilder().WithSourceURL("").BuildTarget()

		// when
		err := target.Validate()

		// then
		require.Error(t, err)
	})
}

func TestLayoutVariant(t *testing.T) {
	t.Parallel()

	t.Run("should print every variant", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "sharded", entities.LayoutSharded.String())
		assert.Equal(t, "flat", entities.LayoutFlat.String())
		assert.Equal(t, "explicit", entities.LayoutExplicit.String())
		assert.Equal(t, "unknown", entities.LayoutUnknown.String())
	})
}
