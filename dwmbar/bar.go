package dwmbar

import (
	"context"

	"github.com/Ak-Army/timer"
	"github.com/Ak-Army/xlog"
)

type Bar struct {
	source    ConfigSource
	publisher Publisher
	log       xlog.Logger
	config    *Config
	blocks    []Block
	lastErr   string
}

func NewBar(source ConfigSource, publisher Publisher, log xlog.Logger) *Bar {
	return &Bar{
		source:    source,
		publisher: publisher,
		log:       log,
	}
}

// Run ticks until ctx is done. The pause is measured from the end of a
// tick, so slow samplers stretch the period.
func (bar *Bar) Run(ctx context.Context) {
	for {
		if _, err := bar.Tick(ctx); err != nil {
			bar.log.Errorf("Unable to publish status: %s", err)
		}
		wait := timer.NewTimer("dwmstatusTick", bar.config.interval())
		select {
		case <-ctx.Done():
			wait.SafeStop()
			bar.log.Info("Bar stopped")
			return
		case <-wait.C():
		}
	}
}

// Tick samples every block once, publishes the assembled line and returns it.
func (bar *Bar) Tick(ctx context.Context) (string, error) {
	bar.reload()
	var line Line
	for i := range bar.blocks {
		bar.blocks[i].Render(ctx, &line)
	}
	status := line.String()
	return status, bar.publisher.Publish(status)
}

func (bar *Bar) reload() {
	cfg, err := bar.source.Config()
	if err != nil {
		if err.Error() != bar.lastErr {
			bar.log.Warnf("Config error: %s", err)
			bar.lastErr = err.Error()
		}
	} else {
		bar.lastErr = ""
	}
	if cfg == nil {
		if bar.config == nil {
			bar.config = DefaultConfig()
			bar.blocks = bar.config.createBlocks(bar.log)
		}
		return
	}
	if cfg != bar.config {
		bar.config = cfg
		bar.blocks = cfg.createBlocks(bar.log)
	}
}
