package modules

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/Ak-Army/xlog"
	"github.com/pkg/errors"

	"github.com/Ak-Army/dwmstatus/dwmbar"
)

const maxCommandOutput = 1024

func init() {
	dwmbar.AddModule("ExternalCmd", func() dwmbar.ModuleInterface {
		return &ExternalCmd{}
	})
}

// ExternalCmd shows the first line printed by a shell command. The command
// comes from the configuration and is trusted.
type ExternalCmd struct {
	dwmbar.ModuleInterface
	Command string `json:"command"`
	// Timeout in seconds, 0 waits for the command as long as it takes.
	Timeout int64 `json:"timeout"`
	log     xlog.Logger
	lastErr string
}

func (m *ExternalCmd) InitModule(config json.RawMessage, log xlog.Logger) error {
	m.log = log
	if config != nil {
		if err := json.Unmarshal(config, m); err != nil {
			return err
		}
	}
	if m.Command == "" {
		return errors.New("command is missing")
	}
	return nil
}

func (m *ExternalCmd) Sample(ctx context.Context) string {
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(m.Timeout)*time.Second)
		defer cancel()
	}
	out, err := runCommand(ctx, m.Command)
	switch {
	case err == nil:
		m.lastErr = ""
	case err.Error() != m.lastErr:
		m.log.Warnf("Command `%s` failed: %s", m.Command, err)
		m.lastErr = err.Error()
	}
	return out
}

// RunCommand runs commandLine with sh -c and returns the first line of its
// standard output, or "" if it cannot be started or prints nothing.
func RunCommand(ctx context.Context, commandLine string) string {
	out, _ := runCommand(ctx, commandLine)
	return out
}

func runCommand(ctx context.Context, commandLine string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", commandLine)
	// Kill the whole pipeline on cancel, a surviving child would keep stdout open.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}
	if err := cmd.Start(); err != nil {
		return "", errors.Wrap(err, "unable to start")
	}
	line, _ := bufio.NewReader(io.LimitReader(stdout, maxCommandOutput)).ReadString('\n')
	// Closing the read end ends a talkative command with SIGPIPE.
	_ = stdout.Close()
	if err := cmd.Wait(); err != nil && line == "" {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
