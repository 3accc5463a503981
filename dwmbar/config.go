package dwmbar

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Ak-Army/config"
	"github.com/Ak-Army/config/backend"
	"github.com/Ak-Army/config/backend/file"
	"github.com/Ak-Army/xlog"
	"github.com/pkg/errors"
)

const (
	defaultInterval = 1

	KeyboardLayoutCommand = "setxkbmap -query | grep layout | cut -d':' -f 2- | tr -d ' '"
)

type Config struct {
	// Interval is the pause between two ticks, in seconds.
	Interval int64   `json:"interval" config:"interval"`
	Blocks   []Block `json:"blocks" config:"blocks"`
}

// DefaultConfig reproduces the classic layout:
// " Mem <mem> | KB:<layout> | <temp0> <temp1> | L:<load> | <time>"
func DefaultConfig() *Config {
	return &Config{
		Interval: defaultInterval,
		Blocks: []Block{
			{ModuleName: "MemInfo", Format: " Mem %s | "},
			{ModuleName: "ExternalCmd", Format: "KB:%s | ", Config: rawConfig(map[string]string{
				"command": KeyboardLayoutCommand,
			})},
			{ModuleName: "Temperature", Format: "%s ", Config: rawConfig(map[string]string{
				"path": "/sys/class/hwmon/hwmon2/temp1_input",
			})},
			{ModuleName: "Temperature", Format: "%s | ", Config: rawConfig(map[string]string{
				"path": "/sys/class/hwmon/hwmon1/temp1_input",
			})},
			{ModuleName: "LoadAvg", Format: "L:%s | "},
			{ModuleName: "DateTime", Config: rawConfig(map[string]string{
				"format":   " %d/%m/%y  %H:%M:%S ",
				"location": "Europe/Madrid",
			})},
		},
	}
}

func rawConfig(v map[string]string) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

func (c *Config) interval() time.Duration {
	if c.Interval <= 0 {
		return defaultInterval * time.Second
	}
	return time.Duration(c.Interval) * time.Second
}

func (c *Config) createBlocks(log xlog.Logger) []Block {
	blocks := make([]Block, len(c.Blocks))
	copy(blocks, c.Blocks)
	for i := range blocks {
		if err := blocks[i].CreateModule(i, log); err != nil {
			log.Error(err)
		}
	}
	log.Infof("Bar items: %+v", blocks)
	return blocks
}

// Store holds the current configuration snapshot. With a loader attached
// the file is watched and every new snapshot replaces the previous one.
type Store struct {
	mu     sync.RWMutex
	config *Config
	log    xlog.Logger
	err    error
}

// NewStaticStore serves cfg forever.
func NewStaticStore(cfg *Config) *Store {
	return &Store{config: cfg}
}

// NewStore loads path through the config file backend and keeps watching it.
func NewStore(path string, log xlog.Logger) (*Store, error) {
	store := &Store{log: log}
	loader, err := config.NewLoader(context.Background(),
		file.New(
			file.WithPath(path),
			file.WithWatchInterval(time.Minute),
			file.WithOption(backend.WithWatcher()),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create config loader")
	}
	if err := loader.Load(store); err != nil {
		return nil, errors.Wrapf(err, "unable to load config from %s", path)
	}
	if _, err := store.Config(); err != nil {
		return nil, err
	}
	return store, nil
}

func (c *Store) NewSnapshot() interface{} {
	return DefaultConfig()
}

func (c *Store) SetSnapshot(confInterface interface{}, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
	if err != nil {
		if c.log != nil {
			c.log.Errorf("Config snapshot rejected: %s", err)
		}
		return
	}
	conf, ok := confInterface.(*Config)
	if !ok {
		c.err = errors.Errorf("unexpected config snapshot type %T", confInterface)
		return
	}
	if c.log != nil {
		c.log.Info("New snapshot")
	}
	c.config = conf
}

func (c *Store) Config() (*Config, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.config == nil {
		if c.err != nil {
			return nil, c.err
		}
		return nil, errors.New("no configuration loaded")
	}
	return c.config, c.err
}
