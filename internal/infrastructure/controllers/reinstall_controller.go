package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/brewpin/internal/domain/commands"
	"github.com/rios0rios0/brewpin/internal/domain/entities"
)

// ReinstallController handles the "reinstall" subcommand.
type ReinstallController struct {
	command commands.Install
}

// NewReinstallController creates a new ReinstallController.
func NewReinstallController(command commands.Install) *ReinstallController {
	return &ReinstallController{command: command}
}

// GetBind returns the Cobra command metadata for the reinstall controller.
func (it *ReinstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "reinstall <formula> <commit-or-url> [tap]",
		Short: "Reinstall a formula pinned to an exact commit",
		Long: `Reinstall a Homebrew formula pinned to an exact historical commit.

Behaves like install, but runs 'brew reinstall' so an already-installed
formula is replaced by the pinned definition. When reinstall fails (for
example because the formula was never installed) a plain install is
attempted automatically, so reinstall works as a general "ensure this
exact version" operation.`,
		Args: cobra.ArbitraryArgs,
	}
}

// Execute runs the reinstall pipeline.
func (it *ReinstallController) Execute(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return it.command.Execute(cmd.Context(), commands.InstallOptions{
		Action:  entities.ActionReinstall,
		Args:    args,
		DryRun:  dryRun,
		Verbose: verbose,
	})
}
