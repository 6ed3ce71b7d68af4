// Package timefmt renders timestamp bounds into the canonical CSV form:
// "2006-01-02" for dates, "2006-01-02 15:04:00" for date-times.
package timefmt

import (
	"fmt"

	"org2csv/internal/model"
)

// FormatStart renders the start bound of a timespan, or nil if the bound
// carries no date.
func FormatStart(b *model.Datestamp) *string {
	return render(b)
}

// FormatEnd renders the end bound of a timespan, or nil if the bound carries
// no date.
func FormatEnd(b *model.Datestamp) *string {
	return render(b)
}

func render(b *model.Datestamp) *string {
	if b == nil || b.Year == nil {
		return nil
	}
	if b.Hour != nil {
		if b.Minute == nil {
			// An hour without a minute is malformed bound data; treat it as
			// absent rather than emit a half-padded string.
			return nil
		}
		s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:00",
			*b.Year, orZero(b.Month), orZero(b.Day), *b.Hour, *b.Minute)
		return &s
	}
	s := fmt.Sprintf("%04d-%02d-%02d", *b.Year, orZero(b.Month), orZero(b.Day))
	return &s
}

func orZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
