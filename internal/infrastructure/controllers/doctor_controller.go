package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/brewpin/internal/domain/commands"
	"github.com/rios0rios0/brewpin/internal/domain/entities"
)

// DoctorController handles the "doctor" subcommand.
type DoctorController struct {
	command commands.Doctor
}

// NewDoctorController creates a new DoctorController.
func NewDoctorController(command commands.Doctor) *DoctorController {
	return &DoctorController{command: command}
}

// GetBind returns the Cobra command metadata for the doctor controller.
func (it *DoctorController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "doctor",
		Short: "Check the external tools brewpin depends on",
		Long: `Check that brew and git are available and that brew is recent
enough to know the letter-sharded homebrew-core formula layout.`,
		Args: cobra.NoArgs,
	}
}

// Execute runs the environment preflight check.
func (it *DoctorController) Execute(cmd *cobra.Command, _ []string) error {
	return it.command.Execute(cmd.Context())
}
