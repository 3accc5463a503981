package modules

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Ak-Army/xlog"

	"github.com/Ak-Army/dwmstatus/dwmbar"
)

func init() {
	dwmbar.AddModule("MemInfo", func() dwmbar.ModuleInterface {
		return &MemInfo{
			Path: "/proc/meminfo",
		}
	})
}

type MemInfo struct {
	dwmbar.ModuleInterface
	Path    string `json:"path"`
	log     xlog.Logger
	missing bool
}

func (m *MemInfo) InitModule(config json.RawMessage, log xlog.Logger) error {
	m.log = log
	if config != nil {
		if err := json.Unmarshal(config, m); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemInfo) Sample(ctx context.Context) string {
	text, ok := MemoryUsage(m.Path)
	if !ok && !m.missing {
		m.log.Warnf("Unable to read %s", m.Path)
	}
	m.missing = !ok
	return text
}

// MemoryUsage returns the used memory in MiB the way free(1) counts it:
// buffers and page cache are free, SReclaimable is not subtracted.
func MemoryUsage(path string) (string, bool) {
	mem := map[string]int64{
		"MemTotal":     0,
		"MemFree":      0,
		"Buffers":      0,
		"SReclaimable": 0,
		"Cached":       0,
	}
	callback := func(line string) bool {
		fields := strings.SplitN(line, ":", 2)
		if len(fields) != 2 {
			return true
		}
		if _, ok := mem[fields[0]]; ok {
			if val, ok := scanInt(fields[1]); ok {
				mem[fields[0]] = val
			}
		}
		return true
	}
	if err := readLines(path, callback); err != nil {
		return "", false
	}

	used := mem["MemTotal"] - mem["MemFree"] - (mem["Cached"] + mem["Buffers"])
	if used < 0 {
		used = 0
	}
	return dwmbar.Sprintf("%d MiB", used/1024), true
}
