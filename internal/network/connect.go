package network

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// connectTimeout bounds a single backend connection attempt. Association
// plus DHCP can legitimately take a while; this only guards against a hung
// client tool.
const connectTimeout = 45 * time.Second

// Connect attempts to join the network through each backend in priority
// order until one succeeds. A backend that errors is treated the same as
// one that reports failure and the loop moves on. The returned error is the
// last backend's when all fail.
func (r *Resolver) Connect(ctx context.Context, backends []Backend, iface, ssid, passphrase string) error {
	var lastErr error
	for _, b := range backends {
		logging.Info("wifi connection attempt",
			zap.String("backend", b.String()),
			zap.String("ssid", ssid),
		)
		err := r.connectOne(ctx, b, iface, ssid, passphrase)
		if err == nil {
			logging.Info("wifi connected",
				zap.String("backend", b.String()),
				zap.String("ssid", ssid),
			)
			return nil
		}
		logging.Warn("wifi backend failed",
			zap.String("backend", b.String()),
			zap.Error(err),
		)
		lastErr = err
	}
	if lastErr == nil {
		lastErr = ErrNoBackend
	}
	return fmt.Errorf("all wifi backends failed: %w", lastErr)
}

func (r *Resolver) connectOne(ctx context.Context, backend Backend, iface, ssid, passphrase string) error {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch backend {
	case BackendIWD:
		return r.connectIWD(cctx, iface, ssid, passphrase)
	case BackendNetworkManager:
		return r.connectNM(cctx, iface, ssid, passphrase)
	default:
		return r.connectWPA(cctx, iface, ssid, passphrase)
	}
}

func (r *Resolver) connectIWD(ctx context.Context, iface, ssid, passphrase string) error {
	args := []string{"station", iface, "connect", ssid}
	if passphrase != "" {
		args = append([]string{"--passphrase", passphrase}, args...)
	}
	if _, err := r.run(ctx, "iwctl", args...); err != nil {
		return fmt.Errorf("iwctl connect failed: %w", err)
	}
	return nil
}

func (r *Resolver) connectNM(ctx context.Context, iface, ssid, passphrase string) error {
	args := []string{"device", "wifi", "connect", ssid, "ifname", iface}
	if passphrase != "" {
		args = append(args, "password", passphrase)
	}
	if _, err := r.run(ctx, "nmcli", args...); err != nil {
		return fmt.Errorf("nmcli connect failed: %w", err)
	}
	return nil
}

// connectWPA writes a wpa_supplicant config (via wpa_passphrase for
// encrypted networks), restarts the daemon on the interface, and kicks a
// DHCP client. Last-resort path for systems with neither iwd nor
// NetworkManager.
func (r *Resolver) connectWPA(ctx context.Context, iface, ssid, passphrase string) error {
	var network string
	if passphrase != "" {
		out, err := r.run(ctx, "wpa_passphrase", ssid, passphrase)
		if err != nil {
			return fmt.Errorf("wpa_passphrase failed: %w", err)
		}
		network = string(out)
	} else {
		network = fmt.Sprintf("network={\n\tssid=%q\n\tkey_mgmt=NONE\n}\n", ssid)
	}

	config := "ctrl_interface=/run/wpa_supplicant\nupdate_config=1\n\n" + network
	configPath := "/etc/wpa_supplicant/wpa_supplicant.conf"
	if err := os.MkdirAll("/etc/wpa_supplicant", 0755); err != nil {
		return fmt.Errorf("failed to create wpa_supplicant directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(config), 0600); err != nil {
		return fmt.Errorf("failed to write wpa_supplicant config: %w", err)
	}

	_, _ = r.run(ctx, "killall", "wpa_supplicant")
	time.Sleep(500 * time.Millisecond)

	if _, err := r.run(ctx, "wpa_supplicant", "-B", "-i", iface, "-c", configPath); err != nil {
		return fmt.Errorf("wpa_supplicant failed: %w", err)
	}

	return r.requestDHCP(ctx, iface)
}

// requestDHCP tries the common DHCP clients in order. NetworkManager and iwd
// handle addressing themselves; only the wpa_supplicant path needs this.
func (r *Resolver) requestDHCP(ctx context.Context, iface string) error {
	clients := [][]string{
		{"dhcpcd", "-n", iface},
		{"dhclient", iface},
		{"udhcpc", "-i", iface, "-n", "-q"},
	}
	var lastErr error
	for _, argv := range clients {
		if _, err := r.lookPath(argv[0]); err != nil {
			continue
		}
		if _, err := r.run(ctx, argv[0], argv[1:]...); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	if lastErr != nil {
		return fmt.Errorf("dhcp failed: %w", lastErr)
	}
	return fmt.Errorf("no dhcp client available")
}

// CurrentSSID reports the SSID the interface is associated with, or "".
func (r *Resolver) CurrentSSID(ctx context.Context, iface string) string {
	pctx, cancel := r.probeCtx(ctx)
	defer cancel()

	out, err := r.run(pctx, "iw", "dev", iface, "link")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "SSID:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "SSID:"))
		}
	}
	return ""
}
