package repositories

import (
	"go.uber.org/dig"

	brewRepo "github.com/rios0rios0/brewpin/internal/infrastructure/repositories/brew"
	gitRepo "github.com/rios0rios0/brewpin/internal/infrastructure/repositories/git"
	githubRepo "github.com/rios0rios0/brewpin/internal/infrastructure/repositories/github"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(brewRepo.NewExecBrewRepository); err != nil {
		return err
	}
	if err := container.Provide(githubRepo.NewHTTPSourceRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewGoGitVcsRepository); err != nil {
		return err
	}

	return nil
}
