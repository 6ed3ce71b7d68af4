package model

// Datestamp is one bound of an org timestamp. Every component is independently
// optional; a bound without a year carries no usable date at all.
type Datestamp struct {
	Year   *int
	Month  *int
	Day    *int
	Hour   *int
	Minute *int
}

// Timespan is a possibly-ranged timestamp: a plain date has only Start,
// a range ("<a>--<b>" or "10:00-12:00") also has End.
type Timespan struct {
	Start *Datestamp
	End   *Datestamp
}

// TaskRecord is one flattened task headline, ready for CSV serialization.
// Timestamp fields hold canonical strings ("2006-01-02" or
// "2006-01-02 15:04:00") or are nil; they are never partially formatted.
type TaskRecord struct {
	Task           string  `json:"task"`
	Parents        *string `json:"parents"`
	Level          *int    `json:"level"`
	Priority       *int    `json:"priority"`
	Tags           string  `json:"tags"`
	Todo           string  `json:"todo"`
	Status         string  `json:"status"`
	ScheduledStart *string `json:"scheduled_start"`
	ScheduledEnd   *string `json:"scheduled_end"`
	DeadlineStart  *string `json:"deadline_start"`
	DeadlineEnd    *string `json:"deadline_end"`
	Closed         *string `json:"closed"`
}
