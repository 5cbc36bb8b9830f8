// Package unixtime converts broken-down date/time fields to a Unix
// timestamp for zonebuild's offline rule-expansion pipeline, without
// depending on time.Location (which would be circular: this package helps
// produce the zone data time.Location is built from).
package unixtime

import (
	"fmt"
	"time"

	"github.com/civiltime/civiltime/civil"
)

// FromDateTime converts year/month/day/hour/minute/second (proleptic
// Gregorian, UTC, leap seconds ignored) to a Unix timestamp, deferring the
// calendar math to civil.LocalDate's epoch-day conversion.
func FromDateTime(year int, month int, day int, hour int, minute int, second int) int64 {
	date, err := civil.NewLocalDate(year, time.Month(month), day)
	if err != nil {
		panic(fmt.Errorf("unixtime: %w", err))
	}
	return date.ToEpochDay()*86400 + int64(hour)*3600 + int64(minute)*60 + int64(second)
}
