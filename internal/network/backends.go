package network

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// Backend identifies one WiFi connection backend family.
type Backend int

const (
	// BackendIWD is the iwd link-layer daemon, driven via iwctl.
	BackendIWD Backend = iota
	// BackendNetworkManager is NetworkManager, driven via nmcli.
	BackendNetworkManager
	// BackendWPASupplicant is bare wpa_supplicant, the last resort.
	BackendWPASupplicant
)

// String returns the backend's client executable name.
func (b Backend) String() string {
	switch b {
	case BackendIWD:
		return "iwctl"
	case BackendNetworkManager:
		return "nmcli"
	default:
		return "wpa_supplicant"
	}
}

// backendPriority is the fixed probe and connection-attempt order.
var backendPriority = []Backend{BackendIWD, BackendNetworkManager, BackendWPASupplicant}

// Backends probes for available connection backends by executable presence,
// in priority order. An empty result means WiFi setup is impossible.
func (r *Resolver) Backends() []Backend {
	var found []Backend
	for _, b := range backendPriority {
		if _, err := r.lookPath(b.String()); err == nil {
			found = append(found, b)
		}
	}
	logging.Debug("wifi backend probe", zap.Int("found", len(found)))
	return found
}

// WirelessInterfaces enumerates wireless-capable network interfaces from
// sysfs. Order is directory order; the first entry is used for scans.
func (r *Resolver) WirelessInterfaces() []string {
	entries, err := os.ReadDir(filepath.Join(r.sysfs, "class", "net"))
	if err != nil {
		return nil
	}
	var ifaces []string
	for _, e := range entries {
		wireless := filepath.Join(r.sysfs, "class", "net", e.Name(), "wireless")
		if _, err := os.Stat(wireless); err == nil {
			ifaces = append(ifaces, e.Name())
		}
	}
	return ifaces
}
