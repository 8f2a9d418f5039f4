package wizard

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/config"
	"github.com/obsidianos/obsidian-wizard/internal/disks"
	"github.com/obsidianos/obsidian-wizard/internal/image"
	"github.com/obsidianos/obsidian-wizard/internal/logging"
	"github.com/obsidianos/obsidian-wizard/internal/network"
	"github.com/obsidianos/obsidian-wizard/internal/provision"
	"github.com/obsidianos/obsidian-wizard/internal/ui"
)

// App is the workflow controller. It owns the main menu loop and sequences
// the flows; every collaborator is a field so tests can script the whole
// wizard end to end.
type App struct {
	Screen *ui.Screen
	Config *config.Settings
	Net    *network.Resolver

	Disks       func(ctx context.Context) []disks.Disk
	Slots       func(ctx context.Context, tool string) []string
	Sources     func(cfg *config.Settings, workDir string) []image.Source
	Materialize func(src image.Source, cfg *config.Settings) (string, error)
	Execute     func(argv []string) int
	SaveConfig  func(cfg *config.Settings) error

	WorkDir string
}

// New wires an App to the real system.
func New(screen *ui.Screen, cfg *config.Settings) *App {
	workDir, _ := os.Getwd()
	return &App{
		Screen: screen,
		Config: cfg,
		Net:    network.New(time.Duration(cfg.ProbeSecs) * time.Second),
		Disks:  disks.Discover,
		Slots: func(ctx context.Context, tool string) []string {
			return provision.Slots(ctx, provision.Output, tool)
		},
		Sources: image.Sources,
		Materialize: func(src image.Source, cfg *config.Settings) (string, error) {
			return src.Materialize(cfg)
		},
		Execute: provision.Run,
		SaveConfig: func(cfg *config.Settings) error {
			return cfg.Save()
		},
		WorkDir: workDir,
	}
}

// mainAction is a typed main-menu entry. Menu options are generated from
// these values and never re-parsed from display text.
type mainAction int

const (
	actionInstall mainAction = iota
	actionRepair
	actionUpdate
	actionSwitchSlot
	actionSwitchSlotOnce
	actionSyncSlots
	actionTerminal
	actionReboot
)

var mainMenu = []struct {
	action mainAction
	label  string
}{
	{actionInstall, "Install ObsidianOS"},
	{actionRepair, "Repair ObsidianOS"},
	{actionUpdate, "Update ObsidianOS"},
	{actionSwitchSlot, "Switch Slot"},
	{actionSwitchSlotOnce, "Switch Slot (one boot)"},
	{actionSyncSlots, "Sync Slots"},
	{actionTerminal, "Terminal"},
	{actionReboot, "Reboot"},
}

// Run drives the main menu until the operator exits. Every flow is linear:
// cancelling any step discards the flow's state and lands back here.
func (a *App) Run(ctx context.Context) {
	options := make([]string, len(mainMenu))
	for i, entry := range mainMenu {
		options[i] = entry.label
	}

	for {
		idx, ok := a.Screen.ChooseIndex(ui.Menu{
			Title:    "ObsidianOS Wizard",
			Subtitle: "↑/↓ move · Enter select · q quit",
			Options:  options,
		})
		if !ok {
			a.Screen.Clear()
			return
		}

		logging.Debug("main menu selection", zap.String("action", mainMenu[idx].label))

		switch mainMenu[idx].action {
		case actionInstall:
			a.installFlow(ctx)
		case actionRepair:
			a.slotImageFlow(ctx, provision.ActionRepair)
		case actionUpdate:
			a.slotImageFlow(ctx, provision.ActionUpdate)
		case actionSwitchSlot:
			a.switchFlow(ctx, provision.ActionSwitch)
		case actionSwitchSlotOnce:
			a.switchFlow(ctx, provision.ActionSwitchOnce)
		case actionSyncSlots:
			a.syncFlow()
		case actionTerminal:
			a.Screen.Clear()
			return
		case actionReboot:
			a.rebootFlow()
		}
	}
}

// execute validates, assembles and runs a request, reporting the outcome.
// Returns the tool's exit code, or -1 when the request never ran.
func (a *App) execute(req *provision.Request, description string) int {
	if err := req.Validate(); err != nil {
		// A flow should never get here with missing fields; abort loudly
		// rather than running a partial command.
		logging.Error("invalid provisioning request", zap.Error(err))
		a.Screen.Banner(ui.BannerFailure, "Internal error", err.Error())
		return -1
	}

	argv := req.Argv(a.Config.Tool)
	return a.runCommand(argv, description)
}

// runCommand shows the literal command, hands the terminal to the child and
// reports success or failure. Nonzero exits are reported, never retried.
func (a *App) runCommand(argv []string, description string) int {
	a.Screen.ShowBanner(ui.BannerInfo, description, strings.Join(argv, " "))

	code := a.Execute(argv)
	if code == 0 {
		a.Screen.Banner(ui.BannerSuccess, description+" finished")
	} else {
		a.Screen.Banner(ui.BannerFailure, description+" failed",
			strings.Join(argv, " "),
			"The command exited with a non-zero status.")
	}
	return code
}
