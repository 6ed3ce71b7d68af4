package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"org2csv/internal/csvout"
	"org2csv/internal/extract"
	"org2csv/internal/org"
)

var (
	exportFormat string
	exportOutput string
	exportStdin  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Export org tasks as CSV to stdout",
	Args:  cobra.ArbitraryArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Also write the output to this file")
	exportCmd.Flags().BoolVar(&exportStdin, "stdin", false, "Read a single org document from standard input")
}

func runExport(cmd *cobra.Command, args []string) error {
	docs, err := loadDocuments(args, exportStdin)
	if err != nil {
		return err
	}

	text, err := renderExport(docs, exportFormat)
	if err != nil {
		return err
	}

	fmt.Print(text)

	if exportOutput != "" {
		return csvout.WriteFile(exportOutput, text)
	}
	return nil
}

// renderExport runs the extraction pipeline and renders the records in the
// requested format.
func renderExport(docs []org.Document, format string) (string, error) {
	records := extract.Records(docs)

	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error encoding JSON: %w", err)
		}
		return string(data) + "\n", nil
	default: // csv
		return csvout.Render(records), nil
	}
}
