package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/brewpin/internal"
	"github.com/rios0rios0/brewpin/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "brewpin <install|reinstall>",
		Short: "Install Homebrew formulas pinned to exact commits",
		Long: `A CLI tool that installs a Homebrew formula pinned to an exact
historical commit.

It fetches that commit's formula definition from homebrew-core's raw
content host, commits it into a local override tap, and installs the
tap-qualified formula. Re-running with unchanged content creates no new
commits, so repeated runs are safe.

Usage:
  brewpin install <formula> <commit-or-url> [tap]
  brewpin install <url> [tap]
  brewpin reinstall <formula> <commit-or-url> [tap]`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			_ = command.Help()
			if len(args) == 0 {
				return entities.NewUsageError("missing action: expected install or reinstall")
			}
			return entities.NewUsageError("invalid action %q: expected install or reinstall", args[0])
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().Bool("dry-run", false,
		"Resolve the canonical URL without fetching or installing anything")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:           bind.Use,
			Short:         bind.Short,
			Long:          bind.Long,
			Args:          bind.Args,
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// External interruption cancels in-flight probes and downloads so
	// scoped temporary files are still released.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.ExecuteContext(ctx); err != nil {
		logger.Errorf("Error executing 'brewpin': %s", err)
		stop()
		os.Exit(entities.ExitCodeFor(err)) //nolint:gocritic // exit code contract
	}
}
