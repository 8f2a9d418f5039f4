package provision

import (
	"errors"
)

// Action is a provisioning tool verb.
type Action string

const (
	ActionInstall    Action = "install"
	ActionRepair     Action = "repair"
	ActionUpdate     Action = "update"
	ActionSwitch     Action = "switch"
	ActionSwitchOnce Action = "switch-once"
	ActionSync       Action = "sync"
	ActionStatus     Action = "status"
)

// PartitionSizes is the finalized partition layout for an install. All size
// fields are non-empty strings once the settings editor completes; blank
// user input keeps the prior value there, never an empty one here.
type PartitionSizes struct {
	ESP        string
	Rootfs     string
	Etc        string
	Var        string
	Filesystem string // "ext4" or "f2fs"
}

// Request is the terminal aggregate a flow builds across its steps. It is
// consumed exactly once by Argv and then discarded with the flow.
type Request struct {
	Action    Action
	DiskPath  string
	ImagePath string
	DualBoot  bool
	Sizes     PartitionSizes
	Slot      string
}

var (
	// ErrMissingDisk means an install request has no target device.
	ErrMissingDisk = errors.New("installation request has no target disk")
	// ErrMissingImage means a request that writes an image has no source.
	ErrMissingImage = errors.New("installation request has no image path")
)

// Validate rejects requests with missing required fields. A flow aborts to
// the main menu on error here; it never executes a partial request.
func (r *Request) Validate() error {
	switch r.Action {
	case ActionInstall:
		if r.DiskPath == "" {
			return ErrMissingDisk
		}
		if r.ImagePath == "" {
			return ErrMissingImage
		}
	case ActionRepair, ActionUpdate:
		if r.ImagePath == "" {
			return ErrMissingImage
		}
	}
	return nil
}

// Argv renders the request into the provisioning tool command line. Flag
// order is fixed and deterministic for scriptability: dual-boot first, then
// each partition-size flag, then the filesystem flag, then the positional
// slot, device and image arguments.
func (r *Request) Argv(tool string) []string {
	argv := []string{tool, string(r.Action)}

	if r.DualBoot {
		argv = append(argv, "--dual-boot")
	}
	if r.Sizes.ESP != "" {
		argv = append(argv, "--esp-size", r.Sizes.ESP)
	}
	if r.Sizes.Rootfs != "" {
		argv = append(argv, "--rootfs-size", r.Sizes.Rootfs)
	}
	if r.Sizes.Etc != "" {
		argv = append(argv, "--etc-size", r.Sizes.Etc)
	}
	if r.Sizes.Var != "" {
		argv = append(argv, "--var-size", r.Sizes.Var)
	}
	if r.Sizes.Filesystem == "f2fs" {
		argv = append(argv, "--use-f2fs")
	}
	if r.Slot != "" {
		argv = append(argv, r.Slot)
	}
	if r.DiskPath != "" {
		argv = append(argv, r.DiskPath)
	}
	if r.ImagePath != "" {
		argv = append(argv, r.ImagePath)
	}

	return argv
}

// Summary returns the human-readable lines shown on the final confirmation
// screen. Every collected value appears.
func (r *Request) Summary() []string {
	yesNo := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}

	lines := []string{"Action: " + string(r.Action)}
	if r.Slot != "" {
		lines = append(lines, "Slot: "+r.Slot)
	}
	if r.DiskPath != "" {
		lines = append(lines, "Disk: "+r.DiskPath)
	}
	if r.ImagePath != "" {
		lines = append(lines, "Image: "+r.ImagePath)
	}
	if r.Action == ActionInstall {
		lines = append(lines,
			"Dual Boot: "+yesNo(r.DualBoot),
			"ESP: "+r.Sizes.ESP,
			"Rootfs: "+r.Sizes.Rootfs,
			"Etc: "+r.Sizes.Etc,
			"Var: "+r.Sizes.Var,
			"Filesystem: "+r.Sizes.Filesystem,
		)
	}
	return lines
}
