package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/obsidianos/obsidian-wizard/internal/network"
	"github.com/obsidianos/obsidian-wizard/internal/ui"
)

// connectivityStep runs the network resolver state machine ahead of an
// install. Desktops and wired laptops pass trivially. A laptop with
// wireless hardware but no usable backend is a hard stop: the install
// would otherwise fail much later, at package-fetch time, with a worse
// error. Failed connection attempts are not a hard stop; they return to
// the WiFi menu.
func (a *App) connectivityStep(ctx context.Context) bool {
	if !a.Net.IsLaptop() {
		return true
	}
	if a.Net.WiredConnected(ctx) {
		return true
	}

	backends := a.Net.Backends()
	if len(backends) == 0 {
		a.Screen.Banner(ui.BannerFailure, "No WiFi backend available",
			"Install iwd, NetworkManager or wpa_supplicant and try again.",
			"The installer needs network access to proceed.")
		return false
	}

	ifaces := a.Net.WirelessInterfaces()
	if len(ifaces) == 0 {
		a.Screen.Banner(ui.BannerFailure, "No wireless interface found",
			"Connect an ethernet cable or check your WiFi hardware.")
		return false
	}
	iface := ifaces[0]

	// Already associated (e.g. configured on a previous run): nothing to set up
	if a.Net.CurrentSSID(ctx, iface) != "" {
		return true
	}

	for {
		idx, ok := a.Screen.ChooseIndex(ui.Menu{
			Title:    "WiFi Setup",
			Subtitle: "interface: " + iface,
			Options:  []string{"Scan for networks", "Enter network manually"},
		})
		if !ok {
			return false
		}

		var (
			ssid       string
			passphrase string
		)
		switch idx {
		case 0:
			ssid, passphrase, ok = a.scanAndSelect(ctx, backends[0], iface)
			if !ok {
				continue
			}
		case 1:
			ssid, ok = a.Screen.PromptRequired("Network SSID")
			if !ok {
				return false
			}
			passphrase, ok = a.Screen.PromptSecret("Passphrase (blank for open network)")
			if !ok {
				return false
			}
		}

		a.Screen.ShowBanner(ui.BannerInfo, "Connecting to "+ssid+"...")
		if err := a.Net.Connect(ctx, backends, iface, ssid, passphrase); err != nil {
			a.Screen.Banner(ui.BannerFailure, "Connection failed", err.Error())
			continue
		}

		a.Screen.Banner(ui.BannerSuccess, "Connected to "+ssid)
		return true
	}
}

// scanAndSelect scans through the primary backend and lets the operator
// pick a network. For an encrypted network a blank passphrase goes back to
// the list instead of attempting an unauthenticated connection.
func (a *App) scanAndSelect(ctx context.Context, backend network.Backend, iface string) (ssid, passphrase string, ok bool) {
	for {
		a.Screen.ShowBanner(ui.BannerInfo, "Scanning for networks...")

		networks, err := a.Net.Scan(ctx, backend, iface)
		if err != nil {
			a.Screen.Banner(ui.BannerFailure, "Scan failed", err.Error())
			return "", "", false
		}
		if len(networks) == 0 {
			a.Screen.Banner(ui.BannerWarning, "No networks found")
			return "", "", false
		}

		options := make([]string, len(networks))
		for i, n := range networks {
			options[i] = networkLabel(n)
		}

		idx, chosen := a.Screen.ChooseIndex(ui.Menu{
			Title:   "Select a Network",
			Options: options,
		})
		if !chosen {
			return "", "", false
		}
		selected := networks[idx]

		if !selected.Encrypted {
			return selected.SSID, "", true
		}

		pass, entered := a.Screen.PromptSecret("Passphrase for " + selected.SSID)
		if !entered {
			return "", "", false
		}
		if pass == "" {
			// Encrypted network, no passphrase: back to the list
			continue
		}
		return selected.SSID, pass, true
	}
}

func networkLabel(n network.Network) string {
	bars := int(n.Quality*4 + 0.5)
	if bars > 4 {
		bars = 4
	}
	signal := strings.Repeat("▂", bars) + strings.Repeat(" ", 4-bars)

	lock := " "
	if n.Encrypted {
		lock = "🔒"
	}
	return fmt.Sprintf("%s %s %s", signal, lock, n.SSID)
}
