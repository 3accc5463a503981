package modules

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/Ak-Army/xlog"

	"github.com/Ak-Army/dwmstatus/dwmbar"
)

func init() {
	dwmbar.AddModule("Battery", func() dwmbar.ModuleInterface {
		return &Battery{
			Path: "/sys/class/power_supply/BAT0",
		}
	})
}

type Battery struct {
	dwmbar.ModuleInterface
	Path string `json:"path"`
	log  xlog.Logger
}

func (m *Battery) InitModule(config json.RawMessage, log xlog.Logger) error {
	m.log = log
	if config != nil {
		if err := json.Unmarshal(config, m); err != nil {
			return err
		}
	}
	return nil
}

func (m *Battery) Sample(ctx context.Context) string {
	return BatteryStatus(m.Path)
}

// BatteryStatus reports the charge of the power supply at base as
// "<percent>%<direction>", where direction is '+' while charging, '-' while
// discharging and '?' otherwise.
func BatteryStatus(base string) string {
	present, ok := ReadSingleLine(filepath.Join(base, "present"))
	if !ok {
		return ""
	}
	if !strings.HasPrefix(present, "1") {
		return "not present"
	}

	design, ok := readCapacity(base, "charge_full_design", "energy_full_design")
	if !ok {
		return ""
	}
	remaining, ok := readCapacity(base, "charge_now", "energy_now")
	if !ok {
		return ""
	}
	direction := chargeDirection(base)

	if remaining < 0 || design <= 0 {
		return "invalid"
	}
	return dwmbar.Sprintf("%.0f%%%c", float64(remaining)/float64(design)*100, direction)
}

// readCapacity reads the first readable file of names. The value is -1 when
// the file exists but does not start with a number.
func readCapacity(base string, names ...string) (int64, bool) {
	for _, name := range names {
		contents, ok := ReadSingleLine(filepath.Join(base, name))
		if !ok {
			continue
		}
		if v, ok := scanInt(contents); ok {
			return v, true
		}
		return -1, true
	}
	return -1, false
}

func chargeDirection(base string) rune {
	status, ok := ReadSingleLine(filepath.Join(base, "status"))
	switch {
	case !ok:
		return '?'
	case strings.HasPrefix(status, "Discharging"):
		return '-'
	case strings.HasPrefix(status, "Charging"):
		return '+'
	}
	return '?'
}
