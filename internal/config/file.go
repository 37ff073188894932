package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FileValues holds the settings a configuration file can supply. Every value
// in the file is a comma-separated list.
type FileValues struct {
	WatchMasks []string
	IgnoreList []string
}

// LoadFile reads the sectioned key=value configuration file at path. Only
// the [general] section is consumed; its recognized keys are watch_masks and
// ignore_list, each a comma-separated list with surrounding whitespace
// trimmed. Unrecognized keys and foreign sections are skipped. A file that
// does not exist yields empty values without an error; a line that is
// neither a section header, a comment, nor a key=value pair is a parse
// error.
func LoadFile(path string) (FileValues, error) {
	var vals FileValues

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return vals, nil
		}
		return vals, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer f.Close()

	section := ""
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return vals, fmt.Errorf("%s:%d: malformed section header %q", path, lineNo, line)
			}
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			return vals, fmt.Errorf("%s:%d: expected key=value, got %q", path, lineNo, line)
		}

		if section != "general" {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		values := splitList(line[idx+1:])

		switch key {
		case "watch_masks":
			vals.WatchMasks = values
		case "ignore_list":
			vals.IgnoreList = values
		}
	}
	if err := sc.Err(); err != nil {
		return vals, fmt.Errorf("failed to read configuration file: %w", err)
	}

	return vals, nil
}

// splitList splits a comma-separated value into trimmed entries, dropping
// empties.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
