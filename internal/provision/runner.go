package provision

import (
	"context"
	"os"
	"os/exec"

	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// Output runs a command capturing stdout. Probe-style callers pass a context
// with a deadline so a hung external tool cannot freeze the wizard.
func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Run executes argv synchronously with the terminal handed to the child.
// Returns the process exit code; -1 means the command could not be started.
// The provisioning command is deliberately unbounded: imaging a disk has no
// natural timeout.
func Run(argv []string) int {
	logging.LogCommand(argv, "start")

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	code := exitCode(err)
	logging.LogCommandExit(argv, code)
	return code
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}
