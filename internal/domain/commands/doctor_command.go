package commands

import (
	"context"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/brewpin/internal/domain/entities"
	"github.com/rios0rios0/brewpin/internal/domain/repositories"
)

// minBrewVersion is the first brew release that ships the letter-sharded
// homebrew-core layout the resolver prefers.
const minBrewVersion = "4.0.0"

// Doctor is the interface for the environment preflight check.
type Doctor interface {
	Execute(ctx context.Context) error
}

// DoctorCommand verifies the external tools the pipeline depends on.
type DoctorCommand struct {
	brew repositories.BrewRepository
}

// NewDoctorCommand creates a new DoctorCommand.
func NewDoctorCommand(brew repositories.BrewRepository) *DoctorCommand {
	return &DoctorCommand{brew: brew}
}

// Execute checks that brew and git are present and that brew is recent
// enough to know the sharded formula layout.
func (it *DoctorCommand) Execute(ctx context.Context) error {
	if err := it.brew.IsAvailable(); err != nil {
		return err
	}
	logger.Info("brew: found")

	// brew tap-new and commit sharing both shell out to git.
	if _, err := exec.LookPath("git"); err != nil {
		return entities.NewDependencyError("git executable not found in PATH: %v", err)
	}
	logger.Info("git: found")

	raw, err := it.brew.Version(ctx)
	if err != nil {
		return entities.NewDependencyError("failed to determine brew version: %v", err)
	}

	version := parseBrewVersion(raw)
	if version == "" {
		logger.Warnf("Could not parse brew version from %q, skipping the version check", raw)
		return nil
	}
	if semver.Compare("v"+version, "v"+minBrewVersion) < 0 {
		logger.Warnf(
			"brew %s predates the sharded formula layout (needs >= %s); expect legacy-layout fallbacks",
			version, minBrewVersion,
		)
		return nil
	}

	logger.Infof("brew %s: ok (>= %s)", version, minBrewVersion)
	return nil
}

// parseBrewVersion extracts the bare version from `brew --version` output
// such as "Homebrew 4.2.0" or "Homebrew 4.2.0-63-g5b2ba45".
func parseBrewVersion(raw string) string {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Homebrew") {
		return ""
	}
	version, _, _ := strings.Cut(fields[1], "-")
	if !semver.IsValid("v" + version) {
		return ""
	}
	return version
}
