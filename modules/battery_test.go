package modules

import (
	"context"
	"path/filepath"
	"testing"
)

func TestBatteryStatus(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name: "discharging",
			files: map[string]string{
				"present":            "1\n",
				"charge_full_design": "2000\n",
				"charge_now":         "1740\n",
				"status":             "Discharging\n",
			},
			want: "87%-",
		},
		{
			name: "charging from energy files",
			files: map[string]string{
				"present":            "1\n",
				"energy_full_design": "50000000\n",
				"energy_now":         "25000000\n",
				"status":             "Charging\n",
			},
			want: "50%+",
		},
		{
			name: "charge file wins over energy file",
			files: map[string]string{
				"present":            "1\n",
				"charge_full_design": "1000\n",
				"energy_full_design": "4000\n",
				"charge_now":         "1000\n",
				"energy_now":         "1\n",
				"status":             "Full\n",
			},
			want: "100%?",
		},
		{
			name: "unreadable status",
			files: map[string]string{
				"present":            "1\n",
				"charge_full_design": "3000\n",
				"charge_now":         "1000\n",
			},
			want: "33%?",
		},
		{
			name:  "not present",
			files: map[string]string{"present": "0\n"},
			want:  "not present",
		},
		{
			name:  "no present file",
			files: map[string]string{"charge_now": "1000\n"},
			want:  "",
		},
		{
			name: "no design capacity",
			files: map[string]string{
				"present":    "1\n",
				"charge_now": "1000\n",
			},
			want: "",
		},
		{
			name: "no remaining capacity",
			files: map[string]string{
				"present":            "1\n",
				"charge_full_design": "1000\n",
			},
			want: "",
		},
		{
			name: "unparsable capacity",
			files: map[string]string{
				"present":            "1\n",
				"charge_full_design": "unknown\n",
				"charge_now":         "1000\n",
				"status":             "Discharging\n",
			},
			want: "invalid",
		},
		{
			name: "zero design capacity",
			files: map[string]string{
				"present":            "1\n",
				"charge_full_design": "0\n",
				"charge_now":         "1000\n",
			},
			want: "invalid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)
			if got := BatteryStatus(dir); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBatteryMissingBase(t *testing.T) {
	if got := BatteryStatus(filepath.Join(t.TempDir(), "BAT9")); got != "" {
		t.Fatalf("expected empty status, got %q", got)
	}
}

func TestBatteryModule(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"present":            "1\n",
		"charge_full_design": "2000\n",
		"charge_now":         "1740\n",
		"status":             "Discharging\n",
	})
	m := &Battery{Path: "/sys/class/power_supply/BAT0"}
	if err := m.InitModule([]byte(`{"path":"`+dir+`"}`), testLogger()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	first := m.Sample(context.Background())
	second := m.Sample(context.Background())
	if first != "87%-" || second != first {
		t.Fatalf("expected stable \"87%%-\", got %q then %q", first, second)
	}
}
