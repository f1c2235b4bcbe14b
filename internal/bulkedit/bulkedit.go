// Package bulkedit implements the text codec for hk's bulk list editor.
//
// The current list renders as one line per entry:
//
//	[1] = /home/user/project/main.go
//	[2] = /home/user/project/util.go
//
// The user edits these lines freely (reorder, delete, insert, change
// paths). Parse turns the edited lines back into a path list: each line is
// split at the first "=", the bracketed index is informational only, and
// the resulting order is the line order. A line is invalid if it has no
// "=" or its path does not name an existing readable file. Validation is
// all-or-nothing: any invalid line rejects the whole edit.
//
// Unlike single-item adds, duplicate paths across lines are accepted; the
// bulk editor is the one surface where the user can deliberately repeat an
// entry.
package bulkedit

import (
	"fmt"
	"os"
	"strings"
)

// LineError reports a single invalid line in a bulk edit.
type LineError struct {
	Line   int    // 1-based line number
	Reason string // human-readable failure reason
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Render formats the list entries for editing, one line per entry in
// list order.
func Render(paths []string) []string {
	lines := make([]string, len(paths))
	for i, p := range paths {
		lines[i] = fmt.Sprintf("[%d] = %s", i+1, p)
	}
	return lines
}

// Parse converts edited lines back into a path list. Blank lines are
// skipped. On success the returned paths are the post-"=" file paths in
// top-to-bottom order and errs is nil. If any line fails validation,
// paths is nil and errs holds one entry per failing line.
func Parse(lines []string) (paths []string, errs []LineError) {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		_, rest, found := strings.Cut(line, "=")
		if !found {
			errs = append(errs, LineError{Line: i + 1, Reason: "missing '='"})
			continue
		}

		path := strings.TrimSpace(rest)
		if path == "" {
			errs = append(errs, LineError{Line: i + 1, Reason: "empty path"})
			continue
		}

		if err := checkReadable(path); err != nil {
			errs = append(errs, LineError{Line: i + 1, Reason: err.Error()})
			continue
		}

		paths = append(paths, path)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return paths, nil
}

// checkReadable verifies path names an existing, readable regular file.
func checkReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", path)
		}
		return fmt.Errorf("cannot access %s: %v", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("is a directory: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file not readable: %s", path)
	}
	f.Close()

	return nil
}
