package dwmbar

import (
	"fmt"
	"strings"
)

// Sprintf formats according to a format specifier and returns a new string
// sized to the result.
func Sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// Line collects the formatted block outputs of one tick.
type Line struct {
	sb strings.Builder
}

func (l *Line) Add(format string, value string) {
	l.sb.WriteString(Sprintf(format, value))
}

func (l *Line) String() string {
	return l.sb.String()
}
