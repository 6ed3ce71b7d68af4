package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"org2csv/internal/extract"
)

var (
	reportFormat string
	reportStdin  bool
)

var reportCmd = &cobra.Command{
	Use:   "report [files...]",
	Short: "Show task counts per todo keyword",
	Args:  cobra.ArbitraryArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
	reportCmd.Flags().BoolVar(&reportStdin, "stdin", false, "Read a single org document from standard input")
}

func runReport(cmd *cobra.Command, args []string) error {
	docs, err := loadDocuments(args, reportStdin)
	if err != nil {
		return err
	}

	records := extract.Records(docs)

	// Aggregate by keyword.
	totals := map[string]int{}
	var order []string
	var open, done int
	for _, r := range records {
		if _, seen := totals[r.Todo]; !seen {
			order = append(order, r.Todo)
		}
		totals[r.Todo]++
		if r.Status == "done" {
			done++
		} else {
			open++
		}
	}
	sort.Strings(order)

	switch reportFormat {
	case "csv":
		fmt.Println("todo,count")
		for _, k := range order {
			fmt.Printf("%s,%d\n", k, totals[k])
		}
	case "json":
		fmt.Println("{")
		fmt.Println("  \"keywords\": [")
		for i, k := range order {
			comma := ","
			if i == len(order)-1 {
				comma = ""
			}
			fmt.Printf("    {\"todo\": %q, \"count\": %d}%s\n", k, totals[k], comma)
		}
		fmt.Println("  ],")
		fmt.Printf("  \"open\": %d,\n", open)
		fmt.Printf("  \"done\": %d\n", done)
		fmt.Println("}")
	default: // md
		fmt.Println("Tasks by keyword")
		fmt.Println("--------------------------------")
		for _, k := range order {
			fmt.Printf("%-20s%d\n", k, totals[k])
		}
		fmt.Println("--------------------------------")
		fmt.Printf("%-20s%d open, %d done\n", "Total", open, done)
	}

	return nil
}
