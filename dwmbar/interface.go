package dwmbar

import (
	"context"
	"encoding/json"

	"github.com/Ak-Army/xlog"
)

// ModuleInterface is implemented by every sampler that can fill a block.
// Sample never fails: an unavailable value is reported as an empty string
// or a fixed placeholder word.
type ModuleInterface interface {
	InitModule(config json.RawMessage, log xlog.Logger) error
	Sample(ctx context.Context) string
}

// Publisher receives the assembled status line once per tick.
type Publisher interface {
	Publish(text string) error
}

// ConfigSource hands the bar its current configuration.
type ConfigSource interface {
	Config() (*Config, error)
}
