// Package xtime renders timestamps for the human-facing formatters.
package xtime

import "time"

// Layout is the textual form of a date value: local wall-clock time at
// second precision, no zone designator.
const Layout = "2006-01-02 15:04:05"

// Format renders t in the given location. A nil location means time.Local.
func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(Layout)
}
