package network

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// Network is one scanned WiFi network. Ephemeral: produced by a scan,
// discarded after a selection or connection attempt.
type Network struct {
	SSID      string
	Quality   float64 // [0,1], 1 is best
	Encrypted bool
}

// MaxScanResults caps how many networks a scan offers for selection.
const MaxScanResults = 10

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Scan lists visible networks through the given backend, sorted by quality
// descending and capped at MaxScanResults. Ties keep scan order.
func (r *Resolver) Scan(ctx context.Context, backend Backend, iface string) ([]Network, error) {
	var (
		networks []Network
		err      error
	)
	switch backend {
	case BackendIWD:
		networks, err = r.scanIWD(ctx, iface)
	case BackendNetworkManager:
		networks, err = r.scanNM(ctx, iface)
	default:
		networks, err = r.scanWPA(ctx, iface)
	}
	if err != nil {
		return nil, err
	}

	networks = dedupe(networks)
	sort.SliceStable(networks, func(i, j int) bool {
		return networks[i].Quality > networks[j].Quality
	})
	if len(networks) > MaxScanResults {
		networks = networks[:MaxScanResults]
	}

	logging.Info("wifi scan complete",
		zap.String("backend", backend.String()),
		zap.String("iface", iface),
		zap.Int("networks", len(networks)),
	)
	return networks, nil
}

func dedupe(networks []Network) []Network {
	seen := map[string]bool{}
	out := networks[:0]
	for _, n := range networks {
		if n.SSID == "" || seen[n.SSID] {
			continue
		}
		seen[n.SSID] = true
		out = append(out, n)
	}
	return out
}

func (r *Resolver) scanIWD(ctx context.Context, iface string) ([]Network, error) {
	pctx, cancel := r.probeCtx(ctx)
	_, _ = r.run(pctx, "iwctl", "station", iface, "scan")
	cancel()

	time.Sleep(r.scanWait)

	pctx, cancel = r.probeCtx(ctx)
	defer cancel()
	out, err := r.run(pctx, "iwctl", "station", iface, "get-networks")
	if err != nil {
		return nil, err
	}
	return parseIWDNetworks(string(out)), nil
}

// parseIWDNetworks parses `iwctl station <iface> get-networks` output.
// Rows look like "  > MyNetwork  psk  ****" after ANSI codes are stripped;
// signal is rendered as one to four stars.
func parseIWDNetworks(out string) []Network {
	var networks []Network
	for _, line := range strings.Split(out, "\n") {
		clean := strings.TrimSpace(ansiPattern.ReplaceAllString(line, ""))
		if clean == "" ||
			strings.HasPrefix(clean, "Available") ||
			strings.HasPrefix(clean, "Network name") ||
			strings.HasPrefix(clean, "---") {
			continue
		}

		fields := strings.Fields(clean)
		if len(fields) < 2 {
			continue
		}
		if fields[0] == ">" || fields[0] == "*" {
			fields = fields[1:]
		}
		if len(fields) < 2 {
			continue
		}

		n := Network{SSID: fields[0], Quality: 0.5}
		for _, f := range fields[1:] {
			lower := strings.ToLower(f)
			if strings.Contains(lower, "psk") || strings.Contains(lower, "wpa") || strings.Contains(lower, "8021x") {
				n.Encrypted = true
			}
			if strings.Contains(f, "*") {
				n.Quality = float64(strings.Count(f, "*")) / 4
			}
		}
		if n.SSID != "" && n.SSID != "[Hidden]" {
			networks = append(networks, n)
		}
	}
	return networks
}

func (r *Resolver) scanNM(ctx context.Context, iface string) ([]Network, error) {
	pctx, cancel := r.probeCtx(ctx)
	defer cancel()

	out, err := r.run(pctx, "nmcli", "-t", "-f", "SSID,SIGNAL,SECURITY",
		"device", "wifi", "list", "ifname", iface, "--rescan", "yes")
	if err != nil {
		return nil, err
	}
	return parseNMNetworks(string(out)), nil
}

// parseNMNetworks parses nmcli terse output: SSID:SIGNAL:SECURITY per line,
// signal in percent. Terse mode escapes ':' and '\' inside field values with
// a backslash, so the line cannot be split on ':' directly.
func parseNMNetworks(out string) []Network {
	var networks []Network
	for _, line := range strings.Split(out, "\n") {
		parts := splitNMLine(line)
		if len(parts) < 2 || parts[0] == "" {
			continue
		}
		n := Network{SSID: parts[0], Quality: 0.5}
		if signal, err := strconv.Atoi(parts[1]); err == nil {
			n.Quality = float64(signal) / 100
		}
		if len(parts) > 2 && parts[2] != "" && parts[2] != "--" {
			n.Encrypted = true
		}
		networks = append(networks, n)
	}
	return networks
}

// splitNMLine splits one nmcli -t line on unescaped colons, unescaping the
// backslash sequences as it goes.
func splitNMLine(line string) []string {
	var (
		fields  []string
		b       strings.Builder
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

func (r *Resolver) scanWPA(ctx context.Context, iface string) ([]Network, error) {
	pctx, cancel := r.probeCtx(ctx)
	_, _ = r.run(pctx, "wpa_cli", "-i", iface, "scan")
	cancel()

	time.Sleep(r.scanWait)

	pctx, cancel = r.probeCtx(ctx)
	defer cancel()
	out, err := r.run(pctx, "wpa_cli", "-i", iface, "scan_results")
	if err != nil {
		return nil, err
	}
	return parseWPANetworks(string(out)), nil
}

// parseWPANetworks parses `wpa_cli scan_results`: tab-separated
// bssid / frequency / signal(dBm) / flags / ssid rows after a header line.
func parseWPANetworks(out string) []Network {
	var networks []Network
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "bssid") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 5 || parts[4] == "" {
			continue
		}
		n := Network{SSID: parts[4], Quality: 0.5}
		if dbm, err := strconv.Atoi(parts[2]); err == nil {
			n.Quality = dbmToQuality(dbm)
		}
		if strings.Contains(parts[3], "WPA") || strings.Contains(parts[3], "WEP") || strings.Contains(parts[3], "RSN") {
			n.Encrypted = true
		}
		networks = append(networks, n)
	}
	return networks
}

// dbmToQuality maps received signal strength to [0,1], clamping the usable
// range to -90..-30 dBm.
func dbmToQuality(dbm int) float64 {
	if dbm >= -30 {
		return 1
	}
	if dbm <= -90 {
		return 0
	}
	return float64(dbm+90) / 60
}
