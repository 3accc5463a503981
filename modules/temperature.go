package modules

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Ak-Army/xlog"

	"github.com/Ak-Army/dwmstatus/dwmbar"
)

func init() {
	dwmbar.AddModule("Temperature", func() dwmbar.ModuleInterface {
		return &Temperature{}
	})
}

// Temperature shows a hwmon sensor, e.g. /sys/class/hwmon/hwmon1/temp1_input.
type Temperature struct {
	dwmbar.ModuleInterface
	Path string `json:"path"`
}

func (m *Temperature) InitModule(config json.RawMessage, log xlog.Logger) error {
	if config != nil {
		if err := json.Unmarshal(config, m); err != nil {
			return err
		}
	}
	if m.Path == "" {
		return errors.New("temperature sensor path is missing")
	}
	return nil
}

func (m *Temperature) Sample(ctx context.Context) string {
	return ReadTemperature(m.Path)
}

// ReadTemperature converts a millidegree Celsius reading to "45.23°C".
// Garbage in the file reads as 0.
func ReadTemperature(path string) string {
	contents, ok := ReadSingleLine(path)
	if !ok {
		return ""
	}
	return dwmbar.Sprintf("%02.2f°C", scanFloat(contents)/1000)
}
