package csvout_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"org2csv/internal/csvout"
	"org2csv/internal/model"
)

func sp(s string) *string { return &s }
func ip(n int) *int       { return &n }

func TestEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"Write report", "Write report"},
		{"Buy milk, eggs", `"Buy milk, eggs"`},
		{`Say "hi"`, `"Say ""hi"""`},
		{"with\nnewline", "\"with\nnewline\""},
		{"with\rreturn", "\"with\rreturn\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvout.Escape(tt.input)
		if got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	got := csvout.Render(nil)
	want := csvout.Header + "\n"
	if got != want {
		t.Errorf("Render(nil) = %q, want %q", got, want)
	}
}

func TestRenderFields(t *testing.T) {
	records := []model.TaskRecord{
		{
			Task:           "Buy milk, eggs",
			Parents:        sp("Groceries"),
			Level:          ip(2),
			Priority:       ip(65),
			Tags:           "home:errands",
			Todo:           "TODO",
			Status:         "todo",
			ScheduledStart: sp("2024-01-10"),
			ScheduledEnd:   sp("2024-01-10"),
		},
	}
	got := csvout.Render(records)
	want := csvout.Header + "\n" +
		`"Buy milk, eggs",Groceries,2,65,TODO,todo,2024-01-10,2024-01-10,,,,home:errands` + "\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

// Every emitted row must have exactly 12 fields, respecting quoted commas.
func TestRenderColumnCount(t *testing.T) {
	records := []model.TaskRecord{
		{Task: "plain", Todo: "TODO", Status: "todo"},
		{Task: "with, comma", Parents: sp(`quoted "parent"`), Todo: "DONE", Status: "done", Tags: "a:b"},
		{Task: "multi\nline", Todo: "WAITING", Status: "todo", Closed: sp("2024-01-09 18:30:00")},
	}
	text := csvout.Render(records)

	r := csv.NewReader(strings.NewReader(text))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable CSV: %v", err)
	}
	if len(rows) != len(records)+1 {
		t.Fatalf("row count = %d, want %d", len(rows), len(records)+1)
	}
	for i, row := range rows {
		if len(row) != 12 {
			t.Errorf("row %d has %d fields, want 12", i, len(row))
		}
	}
}

func TestWriteFileBytes(t *testing.T) {
	text := csvout.Header + "\nPlan trip,,1,,TODO,todo,2024-01-10,2024-01-10,,,,travel\n"
	path := filepath.Join(t.TempDir(), "out", "tasks.csv")

	if err := csvout.WriteFile(path, text); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != text {
		t.Errorf("file bytes = %q, want %q", data, text)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	base := t.TempDir()
	// A file where a directory is needed makes the write fail.
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := csvout.WriteFile(filepath.Join(blocker, "tasks.csv"), "text")
	if err == nil {
		t.Fatal("expected error for invalid target path, got nil")
	}
	if !strings.Contains(err.Error(), "tasks.csv") {
		t.Errorf("error %q does not name the target path", err)
	}
}
