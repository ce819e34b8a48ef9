package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/brewpin/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewInstallController); err != nil {
		return err
	}
	if err := container.Provide(NewReinstallController); err != nil {
		return err
	}
	if err := container.Provide(NewDoctorController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	installController *InstallController,
	reinstallController *ReinstallController,
	doctorController *DoctorController,
) *[]entities.Controller {
	return &[]entities.Controller{
		installController,
		reinstallController,
		doctorController,
	}
}
