package wizard

import (
	"context"
	"strings"

	"github.com/obsidianos/obsidian-wizard/internal/provision"
	"github.com/obsidianos/obsidian-wizard/internal/ui"
)

// installFlow is the full installation pipeline: dual-boot choice, network
// resolver, partition settings, disk selection, image selection, final
// confirmation, execution. Strictly linear; any cancellation aborts the
// whole flow and the partially built request is discarded.
func (a *App) installFlow(ctx context.Context) {
	dualIdx, ok := a.Screen.ChooseIndex(ui.Menu{
		Title:   "Dual Boot",
		Options: []string{"Yes", "No"},
	})
	if !ok {
		return
	}
	dualBoot := dualIdx == 0

	if !a.connectivityStep(ctx) {
		return
	}

	sizes, ok := a.editPartitions()
	if !ok {
		return
	}

	disk, ok := a.selectDisk(ctx)
	if !ok {
		return
	}

	imagePath, ok := a.selectImage(ctx)
	if !ok {
		return
	}

	req := &provision.Request{
		Action:    provision.ActionInstall,
		DiskPath:  disk,
		ImagePath: imagePath,
		DualBoot:  dualBoot,
		Sizes:     sizes,
	}

	if !a.Screen.Confirm("Install ObsidianOS with these settings?", true,
		"This will erase the selected disk.", req.Summary()) {
		return
	}

	a.execute(req, "Installing ObsidianOS")
}

// slotImageFlow covers Repair and Update: pick a target slot and an image,
// skipping disk, partition and network steps entirely.
func (a *App) slotImageFlow(ctx context.Context, action provision.Action) {
	slot, ok := a.selectSlot(ctx, string(action))
	if !ok {
		return
	}

	imagePath, ok := a.selectImage(ctx)
	if !ok {
		return
	}

	req := &provision.Request{
		Action:    action,
		Slot:      slot,
		ImagePath: imagePath,
	}

	if !a.Screen.Confirm(titleFor(action)+" slot "+slot+"?", true, "", req.Summary()) {
		return
	}

	a.execute(req, titleFor(action)+" slot "+slot)
}

// switchFlow targets a slot for the next boot (or one boot only). The
// reboot offer is made only after the switch command reports success; a
// failed switch must not tempt the operator into rebooting a half-switched
// system.
func (a *App) switchFlow(ctx context.Context, action provision.Action) {
	slot, ok := a.selectSlot(ctx, string(action))
	if !ok {
		return
	}

	req := &provision.Request{Action: action, Slot: slot}

	if !a.Screen.Confirm("Switch to slot "+slot+"?", false, "", req.Summary()) {
		return
	}

	if a.execute(req, "Switching to slot "+slot) != 0 {
		return
	}

	a.rebootFlow()
}

// syncFlow copies the active slot onto the inactive one.
func (a *App) syncFlow() {
	if !a.Screen.Confirm("Sync slots now?", true,
		"The inactive slot will be overwritten with the active one.", nil) {
		return
	}
	a.runCommand([]string{a.Config.Tool, string(provision.ActionSync)}, "Syncing slots")
}

// rebootFlow asks for confirmation and reboots.
func (a *App) rebootFlow() {
	if !a.Screen.Confirm("Are you sure you want to reboot the system?", true, "", nil) {
		return
	}
	a.runCommand([]string{"sudo", "reboot"}, "Rebooting")
}

// selectDisk discovers block devices and lets the operator pick one. An
// empty discovery aborts the flow with a banner; it never retries.
func (a *App) selectDisk(ctx context.Context) (string, bool) {
	found := a.Disks(ctx)
	if len(found) == 0 {
		a.Screen.Banner(ui.BannerFailure, "No disks found!", "Please check your system.")
		return "", false
	}

	options := make([]string, len(found))
	for i, d := range found {
		options[i] = d.Label()
	}

	idx, ok := a.Screen.ChooseIndex(ui.Menu{
		Title:   "Select a Disk",
		Options: options,
	})
	if !ok {
		return "", false
	}
	return found[idx].Path, true
}

// selectSlot queries the provisioning tool for its slots and lets the
// operator pick one. The query falls back to the fixed a/b scheme, so this
// step never dead-ends.
func (a *App) selectSlot(ctx context.Context, verb string) (string, bool) {
	slots := a.Slots(ctx, a.Config.Tool)

	options := make([]string, len(slots))
	for i, s := range slots {
		options[i] = "Slot " + s
	}

	idx, ok := a.Screen.ChooseIndex(ui.Menu{
		Title:    "Select Target Slot",
		Subtitle: verb,
		Options:  options,
	})
	if !ok {
		return "", false
	}
	return slots[idx], true
}

// selectImage presents the merged image-source tiers and resolves the
// chosen one to a path. Pre-existing files get an extra confirmation, and
// declining it returns to the source list rather than aborting the flow.
func (a *App) selectImage(ctx context.Context) (string, bool) {
	for {
		sources := a.Sources(a.Config, a.WorkDir)

		options := make([]string, len(sources))
		for i, s := range sources {
			options[i] = s.Label()
		}

		idx, ok := a.Screen.ChooseIndex(ui.Menu{
			Title:   "Select System Image",
			Options: options,
		})
		if !ok {
			return "", false
		}
		src := sources[idx]

		if src.Path != "" && !a.Screen.Confirm("Use "+src.Path+"?", false, "", nil) {
			continue
		}

		path, err := a.Materialize(src, a.Config)
		if err != nil {
			a.Screen.Banner(ui.BannerFailure, "Could not prepare image", err.Error())
			continue
		}
		return path, true
	}
}

func titleFor(action provision.Action) string {
	s := string(action)
	return strings.ToUpper(s[:1]) + s[1:]
}
