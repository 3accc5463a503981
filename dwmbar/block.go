package dwmbar

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Ak-Army/xlog"
)

const defaultFormat = "%s"

// Block is one slot of the status line.
type Block struct {
	ModuleName string          `json:"module" config:"module"`
	Format     string          `json:"format,omitempty" config:"format"`
	Config     json.RawMessage `json:"config,omitempty" config:"config"`
	module     ModuleInterface
}

// CreateModule instantiates the block's sampler. On failure the block keeps
// working as a static block that shows the error.
func (block *Block) CreateModule(id int, log xlog.Logger) (err error) {
	if block.Format == "" {
		block.Format = defaultFormat
	}
	if !singleStringVerb(block.Format) {
		err = fmt.Errorf("block %d: format must contain exactly one %%s: `%s`", id, block.Format)
		block.Format = defaultFormat
	} else if newModule, ok := moduleRegistry[block.ModuleName]; ok {
		block.module = newModule()
		err = block.module.InitModule(block.Config, log)
	} else {
		err = fmt.Errorf("module not found: `%s`", block.ModuleName)
	}

	if err != nil {
		block.module = errorText("ERR: " + err.Error())
	}
	return err
}

// singleStringVerb reports whether format holds exactly one %s verb, with
// optional flags, width and precision, and no verb other than %%.
func singleStringVerb(format string) bool {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("-+# 0123456789.", format[i]) >= 0 {
			i++
		}
		switch {
		case i >= len(format):
			return false
		case format[i] == '%' && format[i-1] == '%':
		case format[i] == 's':
			verbs++
		default:
			return false
		}
	}
	return verbs == 1
}

// Render samples the block once and wraps the value in the block format.
func (block *Block) Render(ctx context.Context, line *Line) {
	line.Add(block.Format, block.module.Sample(ctx))
}

type errorText string

func (e errorText) InitModule(json.RawMessage, xlog.Logger) error {
	return nil
}

func (e errorText) Sample(context.Context) string {
	return string(e)
}
