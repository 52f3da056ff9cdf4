// Package keepatime converts between Keepa time and Unix time.
//
// Keepa timestamps are minutes with a fixed offset from the Unix epoch:
// Keepa time 0 is 2011-01-01T00:00:00Z. History arrays interleave these
// minute stamps with values, so the conversion sits on every read path.
package keepatime

import "time"

// epochOffsetMinutes is the fixed offset between the Keepa time base and
// the Unix epoch, in minutes.
const epochOffsetMinutes = 21564000

// Unix converts a Keepa minute timestamp to Unix seconds.
func Unix(kt int) int64 {
	return (int64(kt) + epochOffsetMinutes) * 60
}

// FromUnix converts Unix seconds to a Keepa minute timestamp.
func FromUnix(sec int64) int {
	return int(sec/60 - epochOffsetMinutes)
}

// Time converts a Keepa minute timestamp to a UTC time.Time.
func Time(kt int) time.Time {
	return time.Unix(Unix(kt), 0).UTC()
}

// FromTime converts a time.Time to a Keepa minute timestamp.
func FromTime(t time.Time) int {
	return FromUnix(t.Unix())
}

// Date truncates Unix seconds to midnight of the containing UTC day.
func Date(sec int64) time.Time {
	t := time.Unix(sec, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
