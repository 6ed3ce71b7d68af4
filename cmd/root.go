package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"org2csv/internal/config"
	"org2csv/internal/org"
)

var rootCmd = &cobra.Command{
	Use:   "org2csv",
	Short: "org2csv – export org-mode tasks to CSV",
	Long: `org2csv flattens the task headlines of org-mode files into CSV rows,
one row per headline carrying a todo keyword, for spreadsheet and
data-analysis tools.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
}

// loadDocuments parses the org files named on the command line, falling back
// to the configured default list. With stdin=true a single document is read
// from standard input instead.
func loadDocuments(args []string, stdin bool) ([]org.Document, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	kw := cfg.Keywords()

	if stdin {
		doc, err := org.Parse(os.Stdin, "stdin", kw)
		if err != nil {
			return nil, err
		}
		return []org.Document{doc}, nil
	}

	files := args
	if len(files) == 0 {
		files = cfg.Files
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no org files given and none configured in ~/.org2csv/config.json")
	}
	return org.ParseFiles(files, kw)
}
