// Package disks discovers block devices eligible as installation targets.
//
// Discovery shells out to lsblk and parses its columnar output. Results are
// built fresh on every call; disks can appear or vanish between wizard
// steps, so nothing here is cached.
package disks

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// Disk describes one candidate block device.
type Disk struct {
	Path  string // e.g. /dev/sda
	Size  string // human-readable, as reported by lsblk
	Model string // may be empty
}

// Label renders the disk for menu display.
func (d Disk) Label() string {
	if d.Model == "" {
		return d.Path + " (" + d.Size + ")"
	}
	return d.Path + " (" + d.Size + ", " + d.Model + ")"
}

// RunFunc executes a command and returns its stdout.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// run is the production RunFunc.
func run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

const queryTimeout = 5 * time.Second

// Discover lists block devices via lsblk.
func Discover(ctx context.Context) []Disk {
	return List(ctx, run)
}

// List enumerates disks using the given runner. A missing tool or empty
// output yields an empty slice, never an error; callers treat empty as
// "no disks found" and abort their flow instead of retrying.
func List(ctx context.Context, runner RunFunc) []Disk {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out, err := runner(ctx, "lsblk", "-d", "-n", "-o", "NAME,SIZE,MODEL")
	if err != nil {
		logging.Warn("lsblk unavailable", zap.Error(err))
		return nil
	}

	var disks []Disk
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		d := Disk{
			Path: "/dev/" + fields[0],
			Size: fields[1],
		}
		if len(fields) > 2 {
			d.Model = strings.Join(fields[2:], " ")
		}
		disks = append(disks, d)
	}

	logging.Debug("disk discovery", zap.Int("count", len(disks)))
	return disks
}
