package entities

// Action identifies the package manager operation to perform.
type Action string

const (
	ActionInstall   Action = "install"
	ActionReinstall Action = "reinstall"
)
