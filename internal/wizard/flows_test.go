package wizard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/obsidianos/obsidian-wizard/internal/config"
	"github.com/obsidianos/obsidian-wizard/internal/disks"
	"github.com/obsidianos/obsidian-wizard/internal/image"
	"github.com/obsidianos/obsidian-wizard/internal/network"
	"github.com/obsidianos/obsidian-wizard/internal/term"
	"github.com/obsidianos/obsidian-wizard/internal/ui"
)

type scriptKeys struct {
	events []term.KeyEvent
	pos    int
}

func (k *scriptKeys) ReadKey() (term.KeyEvent, error) {
	if k.pos >= len(k.events) {
		return term.KeyEvent{}, io.EOF
	}
	ev := k.events[k.pos]
	k.pos++
	return ev, nil
}

func keys(ks ...term.Key) []term.KeyEvent {
	evs := make([]term.KeyEvent, len(ks))
	for i, k := range ks {
		evs[i] = term.KeyEvent{Key: k}
	}
	return evs
}

// desktopResolver classifies as desktop: empty sysfs/procfs, no commands.
func desktopResolver(t *testing.T) *network.Resolver {
	t.Helper()
	return network.NewWithDeps(
		func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return nil, errors.New("not available")
		},
		func(string) (string, error) { return "", errors.New("not found") },
		t.TempDir(), t.TempDir(),
	)
}

// laptopSysfs builds a sysfs root with a battery node.
func laptopSysfs(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "class", "power_supply", "BAT0")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "type"), []byte("Battery\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

type fakeExec struct {
	argvs []([]string)
	code  int
}

func (f *fakeExec) run(argv []string) int {
	f.argvs = append(f.argvs, argv)
	return f.code
}

func testApp(t *testing.T, events []term.KeyEvent, lineInput string) (*App, *fakeExec, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	screen := ui.NewWithIO(ui.DefaultPalette(), &scriptKeys{events: events},
		strings.NewReader(lineInput), out, func() (int, int) { return 100, 40 })

	exec := &fakeExec{}
	cfg := config.NewSettings()

	app := &App{
		Screen: screen,
		Config: cfg,
		Net:    desktopResolver(t),
		Disks: func(ctx context.Context) []disks.Disk {
			return []disks.Disk{
				{Path: "/dev/sda", Size: "931.5G", Model: "Samsung SSD"},
				{Path: "/dev/sdb", Size: "1.8T"},
			}
		},
		Slots: func(ctx context.Context, tool string) []string { return []string{"a", "b"} },
		Sources: func(cfg *config.Settings, workDir string) []image.Source {
			return []image.Source{{Kind: image.KindPreconfigured, Path: "/usr/preconf/server.mkobsfs"}}
		},
		Materialize: func(src image.Source, cfg *config.Settings) (string, error) {
			return src.Path, nil
		},
		Execute:    exec.run,
		SaveConfig: func(cfg *config.Settings) error { return nil },
		WorkDir:    t.TempDir(),
	}
	return app, exec, out
}

func TestInstallFlowAssemblesCommand(t *testing.T) {
	// Dual boot yes, settings saved unchanged, first disk, first image,
	// image confirm, final confirm, dismiss success banner.
	events := keys(
		term.KeyEnter, // dual boot: Yes
		term.KeyUp, term.KeyEnter, // settings: wrap up to Save and Continue
		term.KeyEnter, // settings confirm: Yes
		term.KeyEnter, // disk: /dev/sda
		term.KeyEnter, // image: server.mkobsfs
		term.KeyEnter, // image confirm: Yes
		term.KeyEnter, // final confirm: Yes
		term.KeyEnter, // success banner
	)
	app, exec, _ := testApp(t, events, "")

	app.installFlow(context.Background())

	if len(exec.argvs) != 1 {
		t.Fatalf("executed %d commands, want 1", len(exec.argvs))
	}
	got := strings.Join(exec.argvs[0], " ")
	want := "obsidianctl install --dual-boot --esp-size 512M --rootfs-size 5G --etc-size 1G --var-size 5G /dev/sda /usr/preconf/server.mkobsfs"
	if got != want {
		t.Errorf("command =\n  %s\nwant\n  %s", got, want)
	}
}

func TestInstallFlowAbortsWithoutDisks(t *testing.T) {
	events := keys(
		term.KeyEnter,             // dual boot: Yes
		term.KeyUp, term.KeyEnter, // settings: Save and Continue
		term.KeyEnter, // settings confirm: Yes
		term.KeyEnter, // dismiss "no disks" banner
	)
	app, exec, out := testApp(t, events, "")
	app.Disks = func(ctx context.Context) []disks.Disk { return nil }

	app.installFlow(context.Background())

	if len(exec.argvs) != 0 {
		t.Fatalf("executed %v, want nothing", exec.argvs)
	}
	if !strings.Contains(out.String(), "No disks found!") {
		t.Error("missing no-disks banner")
	}
}

func TestInstallFlowCancelAtDualBootRunsNothing(t *testing.T) {
	app, exec, _ := testApp(t, keys(term.KeyQuit), "")
	app.installFlow(context.Background())
	if len(exec.argvs) != 0 {
		t.Fatalf("executed %v, want nothing", exec.argvs)
	}
}

func TestInstallFlowDecliningFinalConfirmationRunsNothing(t *testing.T) {
	events := keys(
		term.KeyEnter,             // dual boot: Yes
		term.KeyUp, term.KeyEnter, // settings: Save and Continue
		term.KeyEnter,               // settings confirm: Yes
		term.KeyEnter,               // disk
		term.KeyEnter,               // image
		term.KeyEnter,               // image confirm: Yes
		term.KeyDown, term.KeyEnter, // final confirm: No
	)
	app, exec, _ := testApp(t, events, "")

	app.installFlow(context.Background())

	if len(exec.argvs) != 0 {
		t.Fatalf("executed %v, want nothing after declined confirmation", exec.argvs)
	}
}

func TestInstallFlowHardStopsWithoutBackend(t *testing.T) {
	// Laptop, no wired route, no backend executables: the flow must abort
	// before disk or image selection.
	events := keys(
		term.KeyEnter, // dual boot: Yes
		term.KeyEnter, // dismiss hard-stop banner
	)
	app, exec, _ := testApp(t, events, "")
	app.Net = network.NewWithDeps(
		func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return nil, errors.New("no route")
		},
		func(string) (string, error) { return "", errors.New("not found") },
		laptopSysfs(t), t.TempDir(),
	)
	disksCalled := false
	app.Disks = func(ctx context.Context) []disks.Disk {
		disksCalled = true
		return nil
	}

	app.installFlow(context.Background())

	if len(exec.argvs) != 0 {
		t.Fatalf("executed %v, want nothing", exec.argvs)
	}
	if disksCalled {
		t.Error("disk discovery ran after the no-backend hard stop")
	}
}

func TestRepairFlowSkipsDiskAndPartitionSteps(t *testing.T) {
	events := keys(
		term.KeyDown, term.KeyEnter, // slot: b
		term.KeyEnter, // image
		term.KeyEnter, // image confirm: Yes
		term.KeyEnter, // final confirm: Yes
		term.KeyEnter, // success banner
	)
	app, exec, _ := testApp(t, events, "")

	app.slotImageFlow(context.Background(), "repair")

	if len(exec.argvs) != 1 {
		t.Fatalf("executed %d commands, want 1", len(exec.argvs))
	}
	got := strings.Join(exec.argvs[0], " ")
	want := "obsidianctl repair b /usr/preconf/server.mkobsfs"
	if got != want {
		t.Errorf("command = %s, want %s", got, want)
	}
}

func TestSwitchFlowOffersRebootOnlyOnSuccess(t *testing.T) {
	t.Run("success offers reboot", func(t *testing.T) {
		events := keys(
			term.KeyEnter, // slot: a
			term.KeyEnter, // switch confirm: Yes
			term.KeyEnter, // success banner
			term.KeyDown, term.KeyEnter, // reboot confirm: No
		)
		app, exec, out := testApp(t, events, "")

		app.switchFlow(context.Background(), "switch")

		if len(exec.argvs) != 1 {
			t.Fatalf("executed %v, want only the switch", exec.argvs)
		}
		if !strings.Contains(out.String(), "reboot") {
			t.Error("reboot offer missing after successful switch")
		}
	})

	t.Run("failure does not offer reboot", func(t *testing.T) {
		events := keys(
			term.KeyEnter, // slot: a
			term.KeyEnter, // switch confirm: Yes
			term.KeyEnter, // failure banner
		)
		app, exec, _ := testApp(t, events, "")
		exec.code = 1

		app.switchFlow(context.Background(), "switch")

		if len(exec.argvs) != 1 {
			t.Fatalf("executed %v, want only the failed switch", exec.argvs)
		}
		for _, argv := range exec.argvs {
			if argv[0] == "sudo" {
				t.Error("reboot ran after a failed slot switch")
			}
		}
	})
}

func TestSyncFlowRequiresConfirmation(t *testing.T) {
	app, exec, _ := testApp(t, keys(term.KeyDown, term.KeyEnter), "")
	app.syncFlow()
	if len(exec.argvs) != 0 {
		t.Fatalf("executed %v after declined confirmation", exec.argvs)
	}

	app2, exec2, _ := testApp(t, keys(term.KeyEnter, term.KeyEnter), "")
	app2.syncFlow()
	if len(exec2.argvs) != 1 || strings.Join(exec2.argvs[0], " ") != "obsidianctl sync" {
		t.Fatalf("executed %v, want obsidianctl sync", exec2.argvs)
	}
}

func TestWifiBlankPassphraseReturnsToNetworkList(t *testing.T) {
	// Laptop without wired access; nmcli is the only backend. The first
	// passphrase entry is blank, which must re-scan and re-prompt rather
	// than attempt an unauthenticated connection.
	var connectAttempts int
	run := func(ctx context.Context, name string, args ...string) ([]byte, error) {
		switch name {
		case "ip":
			return nil, errors.New("no route")
		case "nmcli":
			if len(args) > 0 && args[0] == "device" && args[1] == "wifi" && args[2] == "connect" {
				connectAttempts++
				return nil, nil
			}
			return []byte("HomeLan:90:WPA2\n"), nil
		}
		return nil, errors.New("not available")
	}
	lookPath := func(name string) (string, error) {
		if name == "nmcli" {
			return "/usr/bin/nmcli", nil
		}
		return "", errors.New("not found")
	}

	sysfs := laptopSysfs(t)
	netDir := filepath.Join(sysfs, "class", "net", "wlan0", "wireless")
	if err := os.MkdirAll(netDir, 0755); err != nil {
		t.Fatal(err)
	}

	events := keys(
		term.KeyEnter, // wifi menu: Scan
		term.KeyEnter, // network list: HomeLan (blank passphrase follows)
		term.KeyEnter, // network list again: HomeLan
		term.KeyEnter, // success banner
	)
	app, _, _ := testApp(t, events, "\nhunter2\n")
	app.Net = network.NewWithDeps(run, lookPath, sysfs, t.TempDir())

	if !app.connectivityStep(context.Background()) {
		t.Fatal("connectivityStep failed, want success after passphrase retry")
	}
	if connectAttempts != 1 {
		t.Errorf("connect attempts = %d, want exactly 1 (none with blank passphrase)", connectAttempts)
	}
}

func TestConnectivityStepDesktopSkips(t *testing.T) {
	// No key events at all: a desktop must pass without interaction.
	app, _, _ := testApp(t, nil, "")
	if !app.connectivityStep(context.Background()) {
		t.Error("connectivityStep failed on a desktop")
	}
}

func TestConnectivityStepSkipsWhenAlreadyAssociated(t *testing.T) {
	// Laptop without wired access whose wireless interface is already
	// associated: the step must pass without showing the WiFi menu or
	// attempting a connection.
	var connectAttempts int
	run := func(ctx context.Context, name string, args ...string) ([]byte, error) {
		switch name {
		case "ip":
			return nil, errors.New("no route")
		case "iw":
			return []byte("Connected to aa:bb:cc:dd:ee:ff (on wlan0)\n\tSSID: HomeLan\n"), nil
		case "nmcli":
			connectAttempts++
			return nil, nil
		}
		return nil, errors.New("not available")
	}
	lookPath := func(name string) (string, error) {
		if name == "nmcli" {
			return "/usr/bin/nmcli", nil
		}
		return "", errors.New("not found")
	}

	sysfs := laptopSysfs(t)
	if err := os.MkdirAll(filepath.Join(sysfs, "class", "net", "wlan0", "wireless"), 0755); err != nil {
		t.Fatal(err)
	}

	app, _, _ := testApp(t, nil, "") // no key events: must not interact
	app.Net = network.NewWithDeps(run, lookPath, sysfs, t.TempDir())

	if !app.connectivityStep(context.Background()) {
		t.Fatal("connectivityStep failed with an associated interface")
	}
	if connectAttempts != 0 {
		t.Errorf("connect attempts = %d, want none", connectAttempts)
	}
}
