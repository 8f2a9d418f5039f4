package provision

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// slotPattern scrapes slot identifiers from the tool's status output. The
// "Slot X" form is the only part of that output the wizard reads.
var slotPattern = regexp.MustCompile(`(?m)\bSlot\s+([A-Za-z0-9]+)\b`)

// defaultSlots is the fixed two-slot scheme assumed when the status query
// fails or yields nothing.
var defaultSlots = []string{"a", "b"}

const statusTimeout = 10 * time.Second

// RunFunc executes a command and returns its stdout.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Slots queries the provisioning tool for its slot identifiers. Any failure
// falls back to the default a/b scheme rather than blocking the flow.
func Slots(ctx context.Context, runner RunFunc, tool string) []string {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	out, err := runner(ctx, tool, string(ActionStatus))
	if err != nil {
		logging.Warn("slot status query failed, assuming a/b",
			zap.String("tool", tool), zap.Error(err))
		return defaultSlots
	}

	var slots []string
	seen := map[string]bool{}
	for _, m := range slotPattern.FindAllStringSubmatch(string(out), -1) {
		s := m[1]
		if !seen[s] {
			seen[s] = true
			slots = append(slots, s)
		}
	}

	if len(slots) == 0 {
		return defaultSlots
	}
	return slots
}
