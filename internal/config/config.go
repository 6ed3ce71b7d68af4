package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"org2csv/internal/org"
)

// Config is the root configuration for org2csv, stored in
// ~/.org2csv/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// Files is the default list of org files exported when the command line
	// names none.
	Files []string `json:"files"`
	// TodoKeywords are the headline keywords counted as open tasks.
	TodoKeywords []string `json:"todo_keywords"`
	// DoneKeywords are the headline keywords counted as closed tasks.
	DoneKeywords []string `json:"done_keywords"`
}

// Keywords returns the configured keyword classification sets.
func (c Config) Keywords() org.KeywordSet {
	return org.KeywordSet{Todo: c.TodoKeywords, Done: c.DoneKeywords}
}

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	kw := org.DefaultKeywords()
	return Config{
		Files:        []string{},
		TodoKeywords: kw.Todo,
		DoneKeywords: kw.Done,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// org2csv configuration – ~/.org2csv/config.json
//
// All settings are optional; the built-in defaults shown below match stock
// org-mode. Edit this file to customise org2csv behaviour.
{
  // Org files exported when none are given on the command line, e.g.
  // ["~/org/tasks.org", "~/org/projects.org"]. Paths starting with ~/ are
  // expanded to the home directory.
  "files": [],

  // Headline keywords treated as open tasks.
  "todo_keywords": ["TODO", "NEXT", "WAITING"],

  // Headline keywords treated as closed tasks.
  "done_keywords": ["DONE", "CANCELLED"]
}
`

// configFilePath returns the path to ~/.org2csv/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".org2csv", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.org2csv/config.json, creating it with annotated defaults on
// first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	defaults := defaultConfig()
	if cfg.Files == nil {
		cfg.Files = defaults.Files
	}
	if len(cfg.TodoKeywords) == 0 {
		cfg.TodoKeywords = defaults.TodoKeywords
	}
	if len(cfg.DoneKeywords) == 0 {
		cfg.DoneKeywords = defaults.DoneKeywords
	}

	// Expand ~/ so configured files resolve regardless of working directory.
	for i, f := range cfg.Files {
		cfg.Files[i] = expandHome(f)
	}

	return cfg, nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
