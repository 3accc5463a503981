package modules

import (
	"context"
	"errors"
	"os"
	"regexp"
	"testing"

	"github.com/shirou/gopsutil/v3/load"
)

func TestLoadAvgModule(t *testing.T) {
	m := &LoadAvg{avg: func(context.Context) (*load.AvgStat, error) {
		return &load.AvgStat{Load1: 0.5234, Load5: 1, Load15: 2.349}, nil
	}}
	if err := m.InitModule(nil, testLogger()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if got := m.Sample(context.Background()); got != "0.52 1.00 2.35" {
		t.Fatalf("expected %q, got %q", "0.52 1.00 2.35", got)
	}
}

func TestLoadAverage(t *testing.T) {
	got := LoadAverage(context.Background())
	if _, err := os.Stat("/proc/loadavg"); err != nil {
		t.Skip("no /proc/loadavg on this system")
	}
	if !regexp.MustCompile(`^\d+\.\d{2} \d+\.\d{2} \d+\.\d{2}$`).MatchString(got) {
		t.Fatalf("unexpected load average %q", got)
	}
}

func TestLoadAvgUnavailable(t *testing.T) {
	m := &LoadAvg{avg: func(context.Context) (*load.AvgStat, error) {
		return nil, errors.New("no /proc")
	}}
	if err := m.InitModule(nil, testLogger()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if got := m.Sample(context.Background()); got != "" {
		t.Fatalf("expected empty load, got %q", got)
	}
}
