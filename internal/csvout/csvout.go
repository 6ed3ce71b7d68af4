// Package csvout serializes task records into CSV text and persists it.
package csvout

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"org2csv/internal/model"
)

// Header is the fixed CSV header line. The todo column carries the record's
// literal todo keyword.
const Header = "task,parents,level,priority,todo,status,scheduled_start,scheduled_end,deadline_start,deadline_end,closed,tags"

// Render produces the full CSV text: header line, then one line per record,
// each terminated by a single newline. The todo keyword is emitted verbatim,
// unescaped, matching the reference export.
func Render(records []model.TaskRecord) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for i := range records {
		b.WriteString(row(&records[i]))
		b.WriteByte('\n')
	}
	return b.String()
}

func row(r *model.TaskRecord) string {
	fields := []string{
		Escape(r.Task),
		Escape(strp(r.Parents)),
		intp(r.Level),
		intp(r.Priority),
		r.Todo,
		r.Status,
		strp(r.ScheduledStart),
		strp(r.ScheduledEnd),
		strp(r.DeadlineStart),
		strp(r.DeadlineEnd),
		strp(r.Closed),
		Escape(r.Tags),
	}
	return strings.Join(fields, ",")
}

func strp(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intp(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// Escape wraps a field in quotes if it contains a comma, quote, or newline.
func Escape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}

// WriteFile persists text byte-for-byte to path. Atomic write: write to a
// temp file then rename, so a failed write never leaves a truncated export.
func WriteFile(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("export error creating directories for %s: %w", path, err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("export error writing temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("export error renaming temp file to %s: %w", path, err)
	}
	return nil
}
