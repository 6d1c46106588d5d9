package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/cmd/pangan/cmd/export"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/cmd/pangan/cmd/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/cmd/pangan/cmd/profile"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/cmd/pangan/cmd/regions"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/cmd/pangan/cmd/spatial"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(regions.NewCommand(a))
	rootCmd.AddCommand(regions.NewRegionCommand(a))
	rootCmd.AddCommand(spatial.NewCommand(a))

	// Analysis commands
	rootCmd.AddCommand(profile.NewCommand(a))
	rootCmd.AddCommand(profile.NewAveragesCommand(a))
	rootCmd.AddCommand(profile.NewDistributionCommand(a))

	// Reference commands
	rootCmd.AddCommand(indicators.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("pangan %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
				cmd.Printf("  go:       %s\n", runtime.Version())
			}
		},
	}
}
