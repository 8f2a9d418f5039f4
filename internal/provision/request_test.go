package provision

import (
	"strings"
	"testing"
)

func TestArgvInstallFlagOrder(t *testing.T) {
	r := Request{
		Action:    ActionInstall,
		DiskPath:  "/dev/sda",
		ImagePath: "/etc/system.sfs",
		DualBoot:  true,
		Sizes: PartitionSizes{
			ESP:        "512M",
			Rootfs:     "5G",
			Etc:        "1G",
			Var:        "5G",
			Filesystem: "f2fs",
		},
	}

	got := strings.Join(r.Argv("obsidianctl"), " ")
	want := "obsidianctl install --dual-boot --esp-size 512M --rootfs-size 5G --etc-size 1G --var-size 5G --use-f2fs /dev/sda /etc/system.sfs"
	if got != want {
		t.Errorf("Argv() =\n  %s\nwant\n  %s", got, want)
	}
}

func TestArgvExt4OmitsFilesystemFlag(t *testing.T) {
	r := Request{
		Action:    ActionInstall,
		DiskPath:  "/dev/sda",
		ImagePath: "/etc/system.sfs",
		Sizes: PartitionSizes{
			ESP: "512M", Rootfs: "5G", Etc: "1G", Var: "5G", Filesystem: "ext4",
		},
	}

	got := strings.Join(r.Argv("obsidianctl"), " ")
	if strings.Contains(got, "--use-f2fs") {
		t.Errorf("Argv() = %s, ext4 must not emit --use-f2fs", got)
	}
	if strings.Contains(got, "--dual-boot") {
		t.Errorf("Argv() = %s, dual-boot flag emitted without dual boot", got)
	}
}

func TestArgvRepairWithSlot(t *testing.T) {
	r := Request{
		Action:    ActionRepair,
		Slot:      "b",
		ImagePath: "/usr/preconf/server.mkobsfs",
	}

	got := strings.Join(r.Argv("obsidianctl"), " ")
	want := "obsidianctl repair b /usr/preconf/server.mkobsfs"
	if got != want {
		t.Errorf("Argv() = %s, want %s", got, want)
	}
}

func TestArgvSwitchOnce(t *testing.T) {
	r := Request{Action: ActionSwitchOnce, Slot: "a"}
	got := strings.Join(r.Argv("obsidianctl"), " ")
	if got != "obsidianctl switch-once a" {
		t.Errorf("Argv() = %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "install without disk",
			req:     Request{Action: ActionInstall, ImagePath: "/x.sfs"},
			wantErr: ErrMissingDisk,
		},
		{
			name:    "install without image",
			req:     Request{Action: ActionInstall, DiskPath: "/dev/sda"},
			wantErr: ErrMissingImage,
		},
		{
			name: "complete install",
			req:  Request{Action: ActionInstall, DiskPath: "/dev/sda", ImagePath: "/x.sfs"},
		},
		{
			name:    "update without image",
			req:     Request{Action: ActionUpdate, Slot: "a"},
			wantErr: ErrMissingImage,
		},
		{
			name: "switch needs neither disk nor image",
			req:  Request{Action: ActionSwitch, Slot: "a"},
		},
		{
			name: "sync has no parameters",
			req:  Request{Action: ActionSync},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummaryShowsEveryCollectedValue(t *testing.T) {
	r := Request{
		Action:    ActionInstall,
		DiskPath:  "/dev/nvme0n1",
		ImagePath: "/etc/system.sfs",
		DualBoot:  true,
		Sizes:     PartitionSizes{ESP: "512M", Rootfs: "5G", Etc: "1G", Var: "5G", Filesystem: "f2fs"},
	}

	joined := strings.Join(r.Summary(), "\n")
	for _, want := range []string{"install", "/dev/nvme0n1", "/etc/system.sfs", "Dual Boot: Yes", "512M", "5G", "1G", "f2fs"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Summary() missing %q:\n%s", want, joined)
		}
	}
}
