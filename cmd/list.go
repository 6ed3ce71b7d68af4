package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"org2csv/internal/extract"
	"org2csv/internal/model"
	"org2csv/internal/org"
)

var listStdin bool

var listCmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List org tasks",
	Args:  cobra.ArbitraryArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listStdin, "stdin", false, "Read a single org document from standard input")
}

func runList(cmd *cobra.Command, args []string) error {
	docs, err := loadDocuments(args, listStdin)
	if err != nil {
		return err
	}

	printTasks(docs)
	return nil
}

// printTasks groups tasks by source and prints them.
func printTasks(docs []org.Document) {
	total := 0
	for _, doc := range docs {
		records := extract.Records([]org.Document{doc})
		if len(records) == 0 {
			continue
		}
		total += len(records)

		fmt.Println(doc.Source)
		for _, r := range records {
			fmt.Printf("  %-10s %s%s\n", r.Todo, r.Task, taskDates(r))
		}
	}
	if total == 0 {
		fmt.Println("No tasks found.")
	}
}

// taskDates renders the most relevant date of a record for the listing.
func taskDates(r model.TaskRecord) string {
	switch {
	case r.Closed != nil:
		return fmt.Sprintf("  (closed %s)", *r.Closed)
	case r.DeadlineStart != nil:
		return fmt.Sprintf("  (due %s)", *r.DeadlineStart)
	case r.ScheduledStart != nil:
		return fmt.Sprintf("  (scheduled %s)", *r.ScheduledStart)
	}
	return ""
}
