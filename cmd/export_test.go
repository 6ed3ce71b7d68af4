package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"org2csv/internal/csvout"
	"org2csv/internal/org"
)

const sampleOrg = `* TODO Plan trip :travel:
SCHEDULED: <2024-01-10 Wed>
** DONE Book flight
CLOSED: [2024-01-09 Tue 18:30]
`

const wantCSV = `task,parents,level,priority,todo,status,scheduled_start,scheduled_end,deadline_start,deadline_end,closed,tags
Plan trip,,1,,TODO,todo,2024-01-10,2024-01-10,,,,travel
Book flight,Plan trip,2,,DONE,done,,,,,2024-01-09 18:30:00,
`

func TestRenderExportGolden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.org")
	if err := os.WriteFile(path, []byte(sampleOrg), 0o600); err != nil {
		t.Fatal(err)
	}

	docs, err := org.ParseFiles([]string{path}, org.DefaultKeywords())
	if err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}

	got, err := renderExport(docs, "csv")
	if err != nil {
		t.Fatalf("renderExport: %v", err)
	}
	if got != wantCSV {
		t.Errorf("export = %q, want %q", got, wantCSV)
	}
}

func TestRenderExportJSON(t *testing.T) {
	doc, err := org.Parse(strings.NewReader(sampleOrg), "trip.org", org.DefaultKeywords())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got, err := renderExport([]org.Document{doc}, "json")
	if err != nil {
		t.Fatalf("renderExport: %v", err)
	}
	for _, want := range []string{`"task": "Plan trip"`, `"todo": "DONE"`, `"closed": "2024-01-09 18:30:00"`} {
		if !strings.Contains(got, want) {
			t.Errorf("json output missing %q:\n%s", want, got)
		}
	}
}

func TestExportedFileMatchesRendered(t *testing.T) {
	doc, err := org.Parse(strings.NewReader(sampleOrg), "trip.org", org.DefaultKeywords())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	text, err := renderExport([]org.Document{doc}, "csv")
	if err != nil {
		t.Fatalf("renderExport: %v", err)
	}

	out := filepath.Join(t.TempDir(), "tasks.csv")
	if err := csvout.WriteFile(out, text); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Errorf("persisted bytes differ from rendered text")
	}
}
