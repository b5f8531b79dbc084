package models

import (
	"time"
)

// IST is India Standard Time; operators read every timestamp in it
var IST = time.FixedZone("IST", 5*60*60+30*60)

// MonthLayout is the YYYY-MM form of a dashboard month bucket
const MonthLayout = "2006-01"

// MonthKey buckets t by its calendar month in IST. Nil or zero gives "".
func MonthKey(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(IST).Format(MonthLayout)
}

// LocalTime renders t in IST. Nil or zero gives "".
func LocalTime(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(IST).Format(layout)
}

// Clock abstracts time for caches and validation
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current time in UTC
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
