package modules

import (
	"context"
	"encoding/json"
	"time"
	_ "time/tzdata"

	"github.com/Ak-Army/xlog"
	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"

	"github.com/Ak-Army/dwmstatus/dwmbar"
)

// strftime output must fit a 128 byte buffer including the terminator.
const maxTimeSize = 127

func init() {
	dwmbar.AddModule("DateTime", func() dwmbar.ModuleInterface {
		return &DateTime{
			Format:   " %d/%m/%y  %H:%M:%S ",
			Location: "Europe/Madrid",
			clock:    NewClock(),
		}
	})
}

// Clock renders the current time in its active timezone.
type Clock struct {
	Now      func() time.Time
	name     string
	location *time.Location
}

func NewClock() *Clock {
	return &Clock{
		Now:      time.Now,
		name:     "UTC",
		location: time.UTC,
	}
}

// SetTimezone switches the active timezone. An unknown name leaves the
// clock on UTC.
func (c *Clock) SetTimezone(name string) error {
	if name == c.name {
		return nil
	}
	c.name = name
	location, err := time.LoadLocation(name)
	if err != nil {
		c.location = time.UTC
		return errors.Wrapf(err, "timezone not found: `%s`", name)
	}
	c.location = location
	return nil
}

// RenderTime formats the current time with a strftime template in the
// given timezone. It returns "" when the template is invalid or renders to
// nothing or to more than maxTimeSize bytes.
func (c *Clock) RenderTime(template string, timezone string) string {
	_ = c.SetTimezone(timezone)
	out, err := strftime.Format(template, c.Now().In(c.location))
	if err != nil || len(out) > maxTimeSize {
		return ""
	}
	return out
}

type DateTime struct {
	dwmbar.ModuleInterface
	Format   string `json:"format"`
	Location string `json:"location"`
	clock    *Clock
}

func (m *DateTime) InitModule(config json.RawMessage, log xlog.Logger) error {
	if config != nil {
		if err := json.Unmarshal(config, m); err != nil {
			return err
		}
	}
	if _, err := strftime.New(m.Format); err != nil {
		return errors.Wrapf(err, "invalid time format `%s`", m.Format)
	}
	if err := m.clock.SetTimezone(m.Location); err != nil {
		log.Warnf("%s, using UTC", err)
	}
	return nil
}

func (m *DateTime) Sample(ctx context.Context) string {
	return m.clock.RenderTime(m.Format, m.Location)
}
