// Obsidian-wizard is the interactive installer for ObsidianOS.
//
// It walks an operator through installing, repairing, updating and slot
// management of an ObsidianOS system, driving the obsidianctl provisioning
// tool underneath. The wizard draws full-screen frames on the controlling
// terminal and needs no arguments.
//
// Usage:
//
//	obsidian-wizard [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'obsidian-wizard --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obsidianos/obsidian-wizard/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "obsidian-wizard",
	Short: "ObsidianOS Installation Wizard",
	Long: `A full-screen installation and maintenance wizard for ObsidianOS.

Walks through disk selection, partition sizing, network setup and system
image selection, then drives the obsidianctl provisioning tool. Repair,
update and A/B slot management flows are included.

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("obsidian-wizard %s\n", version.Full())
	},
}
