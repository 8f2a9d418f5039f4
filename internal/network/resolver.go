package network

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

// RunFunc executes a command and returns its stdout.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

var (
	// ErrNoBackend means no WiFi connection backend executable exists on
	// the system. This is a hard stop for the install flow: proceeding
	// unconnected would fail later at package-fetch time with a worse
	// error.
	ErrNoBackend = errors.New("no wifi backend available (iwctl, nmcli or wpa_supplicant)")
	// ErrNoWireless means no wireless interface is enumerable.
	ErrNoWireless = errors.New("no wireless interface found")
)

// Resolver probes the machine's connectivity state and drives WiFi backends.
// All external probes are bounded by the configured timeout; only the
// deliberate post-scan settle waits are plain sleeps.
type Resolver struct {
	run      RunFunc
	lookPath func(string) (string, error)
	sysfs    string
	procfs   string
	timeout  time.Duration
	scanWait time.Duration
}

// New returns a Resolver using the real system tools.
func New(probeTimeout time.Duration) *Resolver {
	return &Resolver{
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
		lookPath: exec.LookPath,
		sysfs:    "/sys",
		procfs:   "/proc",
		timeout:  probeTimeout,
		scanWait: 3 * time.Second,
	}
}

// NewWithDeps returns a Resolver with injected probes. Used by tests.
func NewWithDeps(run RunFunc, lookPath func(string) (string, error), sysfs, procfs string) *Resolver {
	return &Resolver{
		run:      run,
		lookPath: lookPath,
		sysfs:    sysfs,
		procfs:   procfs,
		timeout:  time.Second,
		scanWait: 0,
	}
}

func (r *Resolver) probeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}
