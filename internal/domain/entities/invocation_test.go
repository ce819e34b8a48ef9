//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/brewpin/internal/domain/entities"
)

func TestNewInvocationRequest(t *testing.T) {
	t.Parallel()

	t.Run("should classify long form with explicit tap", func(t *testing.T) {
		t.Parallel()

		// given
		args := []string{"doxygen", "d2267b9f2ad247bc9c8273eb755b39566a474a70", "mytap"}

		// when
		request, err := entities.NewInvocationRequest(entities.ActionInstall, args, "tester/local")

		// then
		require.NoError(t, err)
		assert.Equal(t, "doxygen", request.Formula)
		assert.Equal(t, "d2267b9f2ad247bc9c8273eb755b39566a474a70", request.Source)
		assert.Equal(t, "mytap", request.Tap)
		assert.False(t, request.DefaultedTap)
	})

	t.Run("should default the tap in long form", func(t *testing.T) {
		t.Parallel()

		// given
		args := []string{"doxygen", "d2267b9f"}

		// when
		request, err := entities.NewInvocationRequest(entities.ActionInstall, args, "tester/local")

		// then
		require.NoError(t, err)
		assert.Equal(t, "tester/local", request.Tap)
		assert.True(t, request.DefaultedTap)
	})

	t.Run("should classify short form with URL", func(t *testing.T) {
		t.Parallel()

		// given
		args := []string{"https://example.com/Formula/doxygen.rb"}

		// when
		request, err := entities.NewInvocationRequest(entities.ActionInstall, args, "tester/local")

		// then
		require.NoError(t, err)
		assert.Empty(t, request.Formula)
		assert.Equal(t, "https://example.com/Formula/doxygen.rb", request.Source)
		assert.Equal(t, "tester/local", request.Tap)
		assert.True(t, request.DefaultedTap)
	})

	t.Run("should accept an explicit tap in short form", func(t *testing.T) {
		t.Parallel()

		// given
		args := []string{"https://example.com/Formula/doxygen.rb", "mytap"}

		// when
		request, err := entities.NewInvocationRequest(entities.ActionInstall, args, "tester/local")

		// then
		require.NoError(t, err)
		assert.Equal(t, "mytap", request.Tap)
		assert.False(t, request.DefaultedTap)
	})

	t.Run("should fail when no arguments are given", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewInvocationRequest(entities.ActionInstall, nil, "tester/local")

		// then
		require.Error(t, err)
		assert.Equal(t, entities.ExitCodeUsage, entities.ExitCodeFor(err))
	})

	t.Run("should fail long form without a source reference", func(t *testing.T) {
		t.Parallel()

		// given
		args := []string{"doxygen"}

		// when
		_, err := entities.NewInvocationRequest(entities.ActionInstall, args, "tester/local")

		// then
		require.Error(t, err)
		assert.Equal(t, entities.ExitCodeUsage, entities.ExitCodeFor(err))
	})

	t.Run("should fail with too many arguments", func(t *testing.T) {
		t.Parallel()

		// given
		args := []string{"doxygen", "abc123", "mytap", "extra"}

		// when
		_, err := entities.NewInvocationRequest(entities.ActionInstall, args, "tester/local")

		// then
		require.Error(t, err)
		assert.Equal(t, entities.ExitCodeUsage, entities.ExitCodeFor(err))
	})
}

func TestIsSourceURL(t *testing.T) {
	t.Parallel()

	t.Run("should recognize URL schemes", func(t *testing.T) {
		t.Parallel()

		assert.True(t, entities.IsSourceURL("https://example.com/x.rb"))
		assert.True(t, entities.IsSourceURL("http://example.com"))
	})

	t.Run("should reject bare commit identifiers", func(t *testing.T) {
		t.Parallel()

		assert.False(t, entities.IsSourceURL("d2267b9f2ad247bc9c8273eb755b39566a474a70"))
		assert.False(t, entities.IsSourceURL("doxygen"))
	})
}
