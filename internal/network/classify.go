package network

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// laptopChassisTypes are the SMBIOS chassis codes treated as portable:
// Portable, Laptop, Notebook, Sub Notebook, Tablet, Convertible, Detachable.
var laptopChassisTypes = map[int]bool{
	8: true, 9: true, 10: true, 14: true, 30: true, 31: true, 32: true,
}

// IsLaptop classifies the machine. Signals are checked in order - battery
// power-supply node, DMI chassis type, lid switch - and the first positive
// one short-circuits. When every probe fails the machine is treated as a
// desktop, which makes the resolver skip WiFi setup entirely (fail-safe).
func (r *Resolver) IsLaptop() bool {
	if r.hasBattery() {
		logging.Debug("classified as laptop", zap.String("signal", "battery"))
		return true
	}
	if r.hasLaptopChassis() {
		logging.Debug("classified as laptop", zap.String("signal", "dmi chassis"))
		return true
	}
	if r.hasLid() {
		logging.Debug("classified as laptop", zap.String("signal", "lid switch"))
		return true
	}
	logging.Debug("classified as desktop")
	return false
}

func (r *Resolver) hasBattery() bool {
	entries, err := os.ReadDir(filepath.Join(r.sysfs, "class", "power_supply"))
	if err != nil {
		return false
	}
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(r.sysfs, "class", "power_supply", e.Name(), "type"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) == "Battery" {
			return true
		}
	}
	return false
}

func (r *Resolver) hasLaptopChassis() bool {
	data, err := os.ReadFile(filepath.Join(r.sysfs, "class", "dmi", "id", "chassis_type"))
	if err != nil {
		return false
	}
	code, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return false
	}
	return laptopChassisTypes[code]
}

func (r *Resolver) hasLid() bool {
	entries, err := os.ReadDir(filepath.Join(r.procfs, "acpi", "button", "lid"))
	return err == nil && len(entries) > 0
}
