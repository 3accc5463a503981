package modules

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const maxLineSize = 512

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ReadSingleLine returns the first line of a sysfs or procfs file without
// its newline. ok is false when the file cannot be opened or is empty, which
// is normal for sensors that do not exist on this machine.
func ReadSingleLine(path string) (line string, ok bool) {
	fin, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer fin.Close()

	reader := bufio.NewReader(io.LimitReader(fin, maxLineSize))
	line, err = reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSuffix(line, "\n"), true
}

func readLines(fileName string, callback func(string) bool) error {
	fin, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer fin.Close()

	scanner := bufio.NewScanner(fin)
	for scanner.Scan() {
		if !callback(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

// scanInt parses the leading decimal integer of s, ignoring what follows.
func scanInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// scanFloat parses the leading number of s. Anything unparsable is 0.
func scanFloat(s string) float64 {
	m := leadingFloat.FindString(strings.TrimLeft(s, " \t\n"))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}
