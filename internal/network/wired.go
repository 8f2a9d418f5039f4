package network

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// WiredConnected reports whether the machine already has working wired
// connectivity: a default route exists, its gateway answers a bounded ping,
// and the egress interface does not look wireless.
func (r *Resolver) WiredConnected(ctx context.Context) bool {
	gateway, iface, err := r.defaultRoute(ctx)
	if err != nil {
		logging.Debug("no default route", zap.Error(err))
		return false
	}
	if looksWireless(iface) {
		logging.Debug("default route is wireless", zap.String("iface", iface))
		return false
	}
	if !r.ping(ctx, gateway) {
		logging.Debug("gateway unreachable", zap.String("gateway", gateway))
		return false
	}
	logging.Info("wired connectivity detected",
		zap.String("iface", iface), zap.String("gateway", gateway))
	return true
}

func (r *Resolver) defaultRoute(ctx context.Context) (gateway, iface string, err error) {
	pctx, cancel := r.probeCtx(ctx)
	defer cancel()

	out, err := r.run(pctx, "ip", "route", "show", "default")
	if err != nil {
		return "", "", fmt.Errorf("failed to query default route: %w", err)
	}
	return parseDefaultRoute(string(out))
}

// parseDefaultRoute extracts the gateway and egress interface from
// "ip route show default" output, e.g.
//
//	default via 192.168.1.1 dev eth0 proto dhcp metric 100
func parseDefaultRoute(out string) (gateway, iface string, err error) {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "default" {
			continue
		}
		for i := 0; i < len(fields)-1; i++ {
			switch fields[i] {
			case "via":
				gateway = fields[i+1]
			case "dev":
				iface = fields[i+1]
			}
		}
		if gateway != "" && iface != "" {
			return gateway, iface, nil
		}
	}
	return "", "", fmt.Errorf("no default route")
}

func (r *Resolver) ping(ctx context.Context, host string) bool {
	pctx, cancel := r.probeCtx(ctx)
	defer cancel()

	secs := int(r.timeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	_, err := r.run(pctx, "ping", "-c", "1", "-W", fmt.Sprintf("%d", secs), host)
	return err == nil
}

// looksWireless applies the interface-naming heuristic: kernel wireless
// interfaces are named wlan*, wl* (predictable naming wlp2s0 etc.) or wifi*.
func looksWireless(iface string) bool {
	return strings.HasPrefix(iface, "wlan") ||
		strings.HasPrefix(iface, "wl") ||
		strings.HasPrefix(iface, "wifi")
}
