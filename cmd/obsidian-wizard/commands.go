package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/obsidianos/obsidian-wizard/internal/config"
	"github.com/obsidianos/obsidian-wizard/internal/logging"
	"github.com/obsidianos/obsidian-wizard/internal/provision"
	"github.com/obsidianos/obsidian-wizard/internal/term"
	"github.com/obsidianos/obsidian-wizard/internal/ui"
	"github.com/obsidianos/obsidian-wizard/internal/wizard"
)

// Root command flags
var (
	toolOverride string
	logLevel     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&toolOverride, "tool", "", "Provisioning tool to drive (default from config, obsidianctl)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log verbosity to stderr (debug, info, warn, error); silent when unset")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(configPathCmd)
}

// wizardCmd launches the interactive wizard explicitly. Same as running
// with no arguments.
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive installation wizard",
	Long: `Launch the full-screen installation wizard.

The wizard provides:
- Installing ObsidianOS onto a disk, with partition sizing and dual boot
- Repairing or updating an existing A/B slot from a system image
- Switching the active slot, permanently or for one boot
- Syncing the active slot onto the inactive one

This is the recommended interface; the other commands exist for scripting.`,
	Example: `  # Launch the wizard
  obsidian-wizard
  # Or explicitly:
  obsidian-wizard wizard

  # Drive a different provisioning tool
  obsidian-wizard --tool /usr/local/bin/obsidianctl-dev`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	if !term.IsTerminal(os.Stdin) || !term.IsTerminal(os.Stdout) {
		return fmt.Errorf("obsidian-wizard needs an interactive terminal")
	}

	// Raw mode is scoped per keystroke, so the terminal is already cooked on
	// any panic path; this only keeps a stack trace off a half-drawn frame.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprint(os.Stdout, "\x1b[2J\x1b[H")
			fmt.Fprintf(os.Stderr, "Error: unexpected failure: %v\n", r)
			logging.Sync()
			os.Exit(1)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if toolOverride != "" {
		cfg.Tool = toolOverride
	}

	app := wizard.New(ui.New(ui.DefaultPalette()), cfg)
	app.Run(cmd.Context())
	return nil
}

// statusCmd runs the provisioning tool's status report directly, without
// entering the wizard.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the provisioning tool's slot status",
	Long: `Run the provisioning tool's status command and print its output.

Equivalent to running 'obsidianctl status' yourself; the wizard's --tool
flag and configuration override apply here too.`,
	Example: `  obsidian-wizard status
  obsidian-wizard status --tool /usr/local/bin/obsidianctl-dev`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	tool, err := resolveTool()
	if err != nil {
		return err
	}

	code := provision.Run([]string{tool, string(provision.ActionStatus)})
	if code != 0 {
		return fmt.Errorf("%s status exited with code %d", tool, code)
	}
	return nil
}

// slotsCmd prints the slots the provisioning tool reports, one per line.
var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List the A/B slots the provisioning tool reports",
	Example: `  obsidian-wizard slots`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel); err != nil {
			return err
		}
		defer logging.Sync()

		tool, err := resolveTool()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		for _, slot := range provision.Slots(ctx, provision.Output, tool) {
			fmt.Println(slot)
		}
		return nil
	},
}

// configPathCmd prints where the wizard reads its configuration from.
var configPathCmd = &cobra.Command{
	Use:   "config-path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func resolveTool() (string, error) {
	if toolOverride != "" {
		return toolOverride, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg.Tool, nil
}
