package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/brewpin/internal/domain/commands"
	"github.com/rios0rios0/brewpin/internal/domain/entities"
)

// InstallController handles the "install" subcommand.
type InstallController struct {
	command commands.Install
}

// NewInstallController creates a new InstallController.
func NewInstallController(command commands.Install) *InstallController {
	return &InstallController{command: command}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install <formula> <commit-or-url> [tap]",
		Short: "Install a formula pinned to an exact commit",
		Long: `Install a Homebrew formula pinned to an exact historical commit.

The formula definition for that commit is fetched from homebrew-core's raw
content host, committed into a local override tap (created on demand), and
installed from there.

Two argument forms are accepted:

  brewpin install <formula> <commit-or-url> [tap]
  brewpin install <url> [tap]

When the tap is omitted it defaults to "<current-user>/local". The override
tap persists across runs so pinned formulas can be reused and shared.`,
		Args: cobra.ArbitraryArgs,
	}
}

// Execute runs the install pipeline.
func (it *InstallController) Execute(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return it.command.Execute(cmd.Context(), commands.InstallOptions{
		Action:  entities.ActionInstall,
		Args:    args,
		DryRun:  dryRun,
		Verbose: verbose,
	})
}
