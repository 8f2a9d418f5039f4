package wizard

import (
	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/config"
	"github.com/obsidianos/obsidian-wizard/internal/logging"
	"github.com/obsidianos/obsidian-wizard/internal/provision"
	"github.com/obsidianos/obsidian-wizard/internal/ui"
)

// settingsEntry is a typed settings-editor row.
type settingsEntry int

const (
	entryESP settingsEntry = iota
	entryRootfs
	entryEtc
	entryVar
	entryFilesystem
	entryReset
	entrySave
)

// editPartitions collects partition-size and filesystem overrides. Blank
// input on any edit keeps the current value; "Reset to Defaults" restores
// the whole set atomically; saving requires a confirmation listing every
// value. Saved values are written back to the preferences registry so they
// become the next run's defaults; a failed write is logged but never blocks
// the install. The returned set is a finalized copy the editor no longer
// touches.
func (a *App) editPartitions() (provision.PartitionSizes, bool) {
	working := partitionsFromConfig(a.Config)

	for {
		rows := []struct {
			entry settingsEntry
			label string
		}{
			{entryESP, "ESP Size: " + working.ESP},
			{entryRootfs, "Rootfs Size: " + working.Rootfs},
			{entryEtc, "Etc Size: " + working.Etc},
			{entryVar, "Var Size: " + working.Var},
			{entryFilesystem, "Filesystem: " + working.Filesystem},
			{entryReset, "Reset to Defaults"},
			{entrySave, "Save and Continue"},
		}
		options := make([]string, len(rows))
		for i, r := range rows {
			options[i] = r.label
		}

		idx, ok := a.Screen.ChooseIndex(ui.Menu{
			Title:    "Partition Settings",
			Subtitle: "blank input keeps the current value",
			Options:  options,
		})
		if !ok {
			return provision.PartitionSizes{}, false
		}

		switch rows[idx].entry {
		case entryESP:
			working.ESP = a.editSize("ESP partition size", working.ESP)
		case entryRootfs:
			working.Rootfs = a.editSize("Rootfs partition size", working.Rootfs)
		case entryEtc:
			working.Etc = a.editSize("Etc partition size", working.Etc)
		case entryVar:
			working.Var = a.editSize("Var partition size", working.Var)
		case entryFilesystem:
			if fs, ok := a.chooseFilesystem(working.Filesystem); ok {
				working.Filesystem = fs
			}
		case entryReset:
			working = defaultPartitions()
		case entrySave:
			if a.Screen.Confirm("Save these partition settings?", false, "",
				summarizeSizes(working)) {
				a.Config.Partitions = &config.Partitions{
					ESP:        working.ESP,
					Rootfs:     working.Rootfs,
					Etc:        working.Etc,
					Var:        working.Var,
					Filesystem: working.Filesystem,
				}
				if err := a.SaveConfig(a.Config); err != nil {
					logging.Warn("could not persist partition settings", zap.Error(err))
				}
				return working, true
			}
		}
	}
}

// editSize prompts for one size field. The prompt returns the current value
// on blank input, so a size string can never end up empty.
func (a *App) editSize(label, current string) string {
	value, ok := a.Screen.Prompt(label, current)
	if !ok || value == "" {
		return current
	}
	return value
}

func (a *App) chooseFilesystem(current string) (string, bool) {
	options := []string{"ext4", "f2fs"}
	idx, ok := a.Screen.ChooseIndex(ui.Menu{
		Title:    "Root Filesystem Type",
		Subtitle: "current: " + current,
		Options:  options,
	})
	if !ok {
		return "", false
	}
	return options[idx], true
}

func partitionsFromConfig(cfg *config.Settings) provision.PartitionSizes {
	p := cfg.Partitions
	if p == nil {
		return defaultPartitions()
	}
	return provision.PartitionSizes{
		ESP:        p.ESP,
		Rootfs:     p.Rootfs,
		Etc:        p.Etc,
		Var:        p.Var,
		Filesystem: p.Filesystem,
	}
}

func defaultPartitions() provision.PartitionSizes {
	d := config.DefaultPartitions()
	return provision.PartitionSizes{
		ESP:        d.ESP,
		Rootfs:     d.Rootfs,
		Etc:        d.Etc,
		Var:        d.Var,
		Filesystem: d.Filesystem,
	}
}

func summarizeSizes(p provision.PartitionSizes) []string {
	return []string{
		"ESP: " + p.ESP,
		"Rootfs: " + p.Rootfs,
		"Etc: " + p.Etc,
		"Var: " + p.Var,
		"Filesystem: " + p.Filesystem,
	}
}
