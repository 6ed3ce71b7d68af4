// Package extract flattens parsed outline documents into task records.
package extract

import (
	"strings"

	"org2csv/internal/model"
	"org2csv/internal/org"
	"org2csv/internal/timefmt"
)

// Records walks the given documents in order and returns one TaskRecord per
// headline carrying a todo keyword, in document pre-order. Headlines without
// a keyword emit nothing but still serve as parents for their descendants.
func Records(docs []org.Document) []model.TaskRecord {
	var records []model.TaskRecord
	for i := range docs {
		records = append(records, documentRecords(&docs[i])...)
	}
	return records
}

func documentRecords(doc *org.Document) []model.TaskRecord {
	var records []model.TaskRecord
	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		if node.Kind != org.KindHeadline || node.Keyword == "" {
			continue
		}

		rec := model.TaskRecord{
			Task:   node.Title,
			Tags:   strings.Join(node.Tags, ":"),
			Todo:   node.Keyword,
			Status: status(node.Done),
		}

		level := node.Level
		rec.Level = &level
		rec.Priority = node.Priority

		if p := doc.ParentHeadline(i); p >= 0 {
			title := doc.Nodes[p].Title
			rec.Parents = &title
		}

		if ts := node.Scheduled; ts != nil {
			rec.ScheduledStart = timefmt.FormatStart(ts.Start)
			// The reference export renders the start bound into both
			// scheduled columns; the range's true end is never consulted.
			rec.ScheduledEnd = timefmt.FormatEnd(ts.Start)
		}
		if ts := node.Deadline; ts != nil {
			rec.DeadlineStart = timefmt.FormatStart(ts.Start)
			rec.DeadlineEnd = timefmt.FormatEnd(ts.End)
		}
		if ts := node.Closed; ts != nil {
			rec.Closed = timefmt.FormatStart(ts.Start)
		}

		records = append(records, rec)
	}
	return records
}

// status maps the keyword classification to its coarse lowercase form.
func status(done bool) string {
	if done {
		return "done"
	}
	return "todo"
}
