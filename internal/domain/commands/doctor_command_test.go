//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/brewpin/internal/domain/commands"
	"github.com/rios0rios0/brewpin/internal/domain/entities"
	"github.com/rios0rios0/brewpin/test/infrastructure/repositorydoubles"
)

func TestDoctorCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should fail fast when brew is missing", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpyBrewRepository{
			AvailableErr: entities.NewDependencyError("brew not found"),
		}
		command := commands.NewDoctorCommand(spy)

		// when
		err := command.Execute(context.Background())

		// then
		require.Error(t, err)
		assert.Equal(t, entities.ExitCodeMissingDependency, entities.ExitCodeFor(err))
	})
}

func TestParseBrewVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse a plain release version", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "4.2.0", commands.ParseBrewVersion("Homebrew 4.2.0"))
	})

	t.Run("should strip the git describe suffix", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "4.2.0", commands.ParseBrewVersion("Homebrew 4.2.0-63-g5b2ba45"))
	})

	t.Run("should reject output that is not from brew", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, commands.ParseBrewVersion("git version 2.43.0"))
		assert.Empty(t, commands.ParseBrewVersion(""))
		assert.Empty(t, commands.ParseBrewVersion("Homebrew"))
	})

	t.Run("should reject garbage version fields", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, commands.ParseBrewVersion("Homebrew banana"))
	})
}
