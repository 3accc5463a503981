package modules

import (
	"context"
	"encoding/json"

	"github.com/Ak-Army/xlog"

	"github.com/Ak-Army/dwmstatus/dwmbar"
)

func init() {
	dwmbar.AddModule("StaticText", func() dwmbar.ModuleInterface {
		return &StaticText{}
	})
}

type StaticText struct {
	dwmbar.ModuleInterface
	Text string `json:"text"`
}

func (m *StaticText) InitModule(config json.RawMessage, log xlog.Logger) error {
	if config != nil {
		return json.Unmarshal(config, m)
	}
	return nil
}

func (m *StaticText) Sample(ctx context.Context) string {
	return m.Text
}
