package brew

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/brewpin/internal/domain/entities"
	"github.com/rios0rios0/brewpin/internal/domain/repositories"
)

// ExecBrewRepository implements repositories.BrewRepository by shelling out
// to the brew executable.
type ExecBrewRepository struct {
	bin string
}

// NewExecBrewRepository creates a brew collaborator using the configured
// executable name.
func NewExecBrewRepository(settings *entities.Settings) repositories.BrewRepository {
	return &ExecBrewRepository{bin: settings.BrewBinary}
}

// IsAvailable reports whether the brew executable can be found on PATH.
func (it *ExecBrewRepository) IsAvailable() error {
	if _, err := exec.LookPath(it.bin); err != nil {
		return entities.NewDependencyError("%q executable not found in PATH: %v", it.bin, err)
	}
	return nil
}

// Version returns the first line of `brew --version`.
func (it *ExecBrewRepository) Version(ctx context.Context) (string, error) {
	out, err := it.output(ctx, "--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line), nil
}

// TapExists reports whether the named tap appears in `brew tap`.
func (it *ExecBrewRepository) TapExists(ctx context.Context, tap string) (bool, error) {
	out, err := it.output(ctx, "tap")
	if err != nil {
		return false, err
	}
	return tapListContains(out, tap), nil
}

// CreateTap registers a new empty tap via `brew tap-new`.
func (it *ExecBrewRepository) CreateTap(ctx context.Context, tap string) error {
	return it.stream(ctx, "tap-new", tap)
}

// TapPath resolves the tap's backing filesystem root via `brew --repository`.
func (it *ExecBrewRepository) TapPath(ctx context.Context, tap string) (string, error) {
	out, err := it.output(ctx, "--repository", tap)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(out)
	if path == "" {
		return "", fmt.Errorf("brew --repository %s returned an empty path", tap)
	}
	return path, nil
}

// Install runs `brew install`, surfacing brew's output verbatim.
func (it *ExecBrewRepository) Install(ctx context.Context, qualifiedName string) error {
	return it.stream(ctx, "install", qualifiedName)
}

// Reinstall runs `brew reinstall`, surfacing brew's output verbatim.
func (it *ExecBrewRepository) Reinstall(ctx context.Context, qualifiedName string) error {
	return it.stream(ctx, "reinstall", qualifiedName)
}

// output runs brew and captures stdout, keeping stderr quiet unless the
// command fails.
func (it *ExecBrewRepository) output(ctx context.Context, args ...string) (string, error) {
	logger.Debugf("Running %s %s", it.bin, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, it.bin, args...)

	out, err := cmd.Output()
	if err != nil {
		return "", wrapBrewError(it.bin, args, err)
	}
	return string(out), nil
}

// stream runs brew connected to the user's terminal so progress and errors
// are surfaced verbatim.
func (it *ExecBrewRepository) stream(ctx context.Context, args ...string) error {
	logger.Debugf("Running %s %s", it.bin, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, it.bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return wrapBrewError(it.bin, args, err)
	}
	return nil
}

// wrapBrewError propagates brew's own exit code as this tool's exit code.
func wrapBrewError(bin string, args []string, err error) error {
	wrapped := fmt.Errorf("%s %s: %w", bin, strings.Join(args, " "), err)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		if len(exitErr.Stderr) > 0 {
			wrapped = fmt.Errorf("%s %s: %w: %s", bin, strings.Join(args, " "), err,
				strings.TrimSpace(string(exitErr.Stderr)))
		}
		return entities.NewExitError(exitErr.ExitCode(), wrapped)
	}
	return wrapped
}

// tapListContains reports whether the `brew tap` output lists the tap.
func tapListContains(out, tap string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.EqualFold(strings.TrimSpace(line), tap) {
			return true
		}
	}
	return false
}
