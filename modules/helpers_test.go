package modules

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ak-Army/xlog"
)

func testLogger() xlog.Logger {
	return bufferLogger(io.Discard)
}

func bufferLogger(w io.Writer) xlog.Logger {
	return xlog.New(xlog.Config{
		Output: xlog.NewLogfmtOutput(w),
	})
}

// writeFiles creates name -> contents below a fresh temp dir and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
