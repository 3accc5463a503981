package modules

import (
	"context"
	"encoding/json"

	"github.com/Ak-Army/xlog"
	"github.com/shirou/gopsutil/v3/load"

	"github.com/Ak-Army/dwmstatus/dwmbar"
)

func init() {
	dwmbar.AddModule("LoadAvg", func() dwmbar.ModuleInterface {
		return &LoadAvg{avg: load.AvgWithContext}
	})
}

type LoadAvg struct {
	dwmbar.ModuleInterface
	avg func(ctx context.Context) (*load.AvgStat, error)
	log xlog.Logger
}

func (m *LoadAvg) InitModule(config json.RawMessage, log xlog.Logger) error {
	m.log = log
	return nil
}

func (m *LoadAvg) Sample(ctx context.Context) string {
	text, err := loadAverage(ctx, m.avg)
	if err != nil {
		m.log.Debugf("Load average unavailable: %s", err)
	}
	return text
}

// LoadAverage returns the 1, 5 and 15 minute load averages, or "" if the
// system cannot be queried.
func LoadAverage(ctx context.Context) string {
	text, _ := loadAverage(ctx, load.AvgWithContext)
	return text
}

func loadAverage(ctx context.Context, avg func(ctx context.Context) (*load.AvgStat, error)) (string, error) {
	stat, err := avg(ctx)
	if err != nil {
		return "", err
	}
	return dwmbar.Sprintf("%.2f %.2f %.2f", stat.Load1, stat.Load5, stat.Load15), nil
}
