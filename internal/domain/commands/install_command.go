package commands

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/brewpin/internal/domain/entities"
	"github.com/rios0rios0/brewpin/internal/domain/repositories"
)

// Install is the interface for the install/reinstall pipeline.
type Install interface {
	Execute(ctx context.Context, opts InstallOptions) error
}

// InstallOptions holds runtime options for one pipeline run.
type InstallOptions struct {
	Action  entities.Action
	Args    []string
	DryRun  bool
	Verbose bool
}

// formulaPathPattern matches the authoritative /Formula/<name>.rb path shape.
var formulaPathPattern = regexp.MustCompile(`/Formula/([^/]+)\.rb$`)

// InstallCommand runs the full pipeline: classify the arguments, resolve
// the canonical source URL, materialize the formula file into the override
// tap, and invoke brew against the tap-qualified name.
type InstallCommand struct {
	settings *entities.Settings
	brew     repositories.BrewRepository
	source   repositories.SourceRepository
	vcs      repositories.VcsRepository
}

// NewInstallCommand creates a new InstallCommand with its collaborators.
func NewInstallCommand(
	settings *entities.Settings,
	brew repositories.BrewRepository,
	source repositories.SourceRepository,
	vcs repositories.VcsRepository,
) *InstallCommand {
	return &InstallCommand{
		settings: settings,
		brew:     brew,
		source:   source,
		vcs:      vcs,
	}
}

// Execute is the entry point for one install/reinstall run.
func (it *InstallCommand) Execute(ctx context.Context, opts InstallOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	request, err := entities.NewInvocationRequest(opts.Action, opts.Args, it.settings.DefaultTap)
	if err != nil {
		return err
	}

	if availErr := it.brew.IsAvailable(); availErr != nil {
		return availErr
	}

	target, resolveErr := it.resolveTarget(ctx, request)
	if resolveErr != nil {
		return resolveErr
	}
	logger.Infof("Resolved %s to %s (%s layout)", target.Formula, target.SourceURL, target.Layout)

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would fetch %s into tap %s and run 'brew %s %s'",
			target.SourceURL, target.Tap, opts.Action, target.QualifiedName())
		return nil
	}

	if materializeErr := it.materialize(ctx, target); materializeErr != nil {
		return materializeErr
	}

	return it.invoke(ctx, opts.Action, target)
}

// resolveTarget turns the classified request into a single verified target:
// short form derives the formula name from the URL, long form with a bare
// commit probes the two candidate layouts.
func (it *InstallCommand) resolveTarget(
	ctx context.Context,
	request *entities.InvocationRequest,
) (*entities.ResolvedTarget, error) {
	target := &entities.ResolvedTarget{
		Formula:      request.Formula,
		Tap:          request.Tap,
		DefaultedTap: request.DefaultedTap,
	}

	if entities.IsSourceURL(request.Source) {
		// Already canonical; no layout resolution takes place.
		target.SourceURL = request.Source
		target.Layout = entities.LayoutExplicit
		if target.Formula == "" {
			name, guessed := extractFormulaName(request.Source)
			target.Formula = name
			target.NameGuessed = guessed
			if guessed {
				logger.Warnf(
					"Could not reliably derive a formula name from %s; guessing %q",
					request.Source, name,
				)
			}
		}
	} else {
		canonical, layout, probeErr := it.resolveLayout(ctx, request)
		if probeErr != nil {
			return nil, probeErr
		}
		target.SourceURL = canonical
		target.Layout = layout
	}

	if err := target.Validate(); err != nil {
		return nil, err
	}
	if target.DefaultedTap {
		logger.Debugf("No tap given, defaulting to %s", target.Tap)
	}
	return target, nil
}

// resolveLayout probes the letter-sharded candidate first and falls back to
// the legacy flat layout with a warning. A probe failure after retries is
// treated as "does not exist": silently picking the wrong layout yields a
// confusing downstream 404, a warned fallback does not.
func (it *InstallCommand) resolveLayout(
	ctx context.Context,
	request *entities.InvocationRequest,
) (string, entities.LayoutVariant, error) {
	candidates := entities.NewCandidateURLs(it.settings.RawRootURL, request.Source, request.Formula)

	exists, err := it.source.Exists(ctx, candidates.Sharded)
	if err != nil {
		logger.Warnf("Existence probe for %s failed: %v", candidates.Sharded, err)
		exists = false
	}
	if exists {
		return candidates.Sharded, entities.LayoutSharded, nil
	}

	logger.Warnf(
		"Formula %s not found under the sharded layout at commit %s, falling back to the legacy flat layout",
		request.Formula, request.Source,
	)
	return candidates.Flat, entities.LayoutFlat, nil
}

// materialize runs the override-repository state machine:
// NamespaceAbsent -> NamespaceCreated -> FileStaged -> {CommitMade | NoOpNoChange}.
func (it *InstallCommand) materialize(ctx context.Context, target *entities.ResolvedTarget) error {
	tapRoot, err := it.ensureTap(ctx, target.Tap)
	if err != nil {
		return err
	}

	formulaDir := filepath.Join(tapRoot, entities.FormulaDirectory)
	if mkdirErr := os.MkdirAll(formulaDir, 0o755); mkdirErr != nil {
		return fmt.Errorf("failed to create %s: %w", formulaDir, mkdirErr)
	}

	dest := filepath.Join(formulaDir, target.FileName())
	if fetchErr := it.fetchInto(ctx, target, dest); fetchErr != nil {
		return fetchErr
	}

	message := fmt.Sprintf("%s: import from %s", target.Formula, target.SourceURL)
	committed, commitErr := it.vcs.CommitFile(ctx, tapRoot, entities.FormulaDirectory+"/"+target.FileName(), message)
	if commitErr != nil {
		return fmt.Errorf("failed to commit %s: %w", target.FileName(), commitErr)
	}
	if committed {
		logger.Infof("Committed %s to tap %s", target.FileName(), target.Tap)
	} else {
		logger.Infof("No changes to commit; %s is already up to date in tap %s", target.FileName(), target.Tap)
	}
	return nil
}

// ensureTap registers the override tap when absent and resolves its root.
// Creation is idempotent: repeated runs skip it once the tap is present.
func (it *InstallCommand) ensureTap(ctx context.Context, tap string) (string, error) {
	exists, err := it.brew.TapExists(ctx, tap)
	if err != nil {
		return "", fmt.Errorf("failed to list taps: %w", err)
	}
	if !exists {
		logger.Infof("Tap %s does not exist yet, creating it", tap)
		if createErr := it.brew.CreateTap(ctx, tap); createErr != nil {
			return "", fmt.Errorf("failed to create tap %s: %w", tap, createErr)
		}
	}

	tapRoot, pathErr := it.brew.TapPath(ctx, tap)
	if pathErr != nil {
		return "", fmt.Errorf("failed to resolve tap %s root: %w", tap, pathErr)
	}
	return tapRoot, nil
}

// fetchInto downloads the canonical URL to a scoped temporary file and moves
// it over the destination. The temporary file is removed on every exit path.
func (it *InstallCommand) fetchInto(ctx context.Context, target *entities.ResolvedTarget, dest string) error {
	tmp, err := os.CreateTemp("", "brewpin-*"+entities.FormulaExtension)
	if err != nil {
		return entities.NewTempFileError("failed to create temporary file: %v", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if closeErr := tmp.Close(); closeErr != nil {
		return entities.NewTempFileError("failed to close temporary file: %v", closeErr)
	}

	size, downloadErr := it.source.Download(ctx, target.SourceURL, tmpPath)
	if downloadErr != nil {
		return entities.NewFetchError("failed to download %s: %v", target.SourceURL, downloadErr)
	}
	if size == 0 {
		return entities.NewFetchError("downloaded file from %s is empty", target.SourceURL)
	}
	logger.Debugf("Downloaded %d bytes from %s", size, target.SourceURL)

	if moveErr := moveFile(tmpPath, dest); moveErr != nil {
		return fmt.Errorf("failed to place formula at %s: %w", dest, moveErr)
	}
	return nil
}

// invoke runs the package manager. Reinstall falls back to install once so
// it is usable as a general "ensure current" operation even on first install.
func (it *InstallCommand) invoke(ctx context.Context, action entities.Action, target *entities.ResolvedTarget) error {
	name := target.QualifiedName()

	var err error
	switch action {
	case entities.ActionReinstall:
		err = it.brew.Reinstall(ctx, name)
		if err != nil {
			logger.Warnf("Reinstall of %s failed (%v), falling back to install", name, err)
			err = it.brew.Install(ctx, name)
		}
	default:
		err = it.brew.Install(ctx, name)
	}
	if err != nil {
		return err
	}

	logger.Infof("Installed %s", name)
	logger.Infof("Run 'brew pin %s' to hold this version across upgrades", name)
	return nil
}

// extractFormulaName derives the formula name from a raw URL. The second
// return value reports that the name is a best-effort guess.
func extractFormulaName(rawURL string) (string, bool) {
	path := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		path = parsed.Path
	} else if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}

	if match := formulaPathPattern.FindStringSubmatch(path); match != nil {
		return match[1], false
	}

	base := path[strings.LastIndexByte(path, '/')+1:]
	if strings.HasSuffix(base, entities.FormulaExtension) {
		return strings.TrimSuffix(base, entities.FormulaExtension), false
	}
	return base, true
}

// moveFile renames src over dest, copying when the rename crosses
// filesystems (the temp dir is often a different mount than the tap).
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, copyErr := io.Copy(out, in); copyErr != nil {
		out.Close()
		return copyErr
	}
	if closeErr := out.Close(); closeErr != nil {
		return closeErr
	}
	return os.Remove(src)
}
