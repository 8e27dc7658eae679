package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

// Now returns local wall-clock time. Session dates are calendar days in the
// player's own timezone, so no UTC normalization happens here.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Day truncates t to its calendar date, dropping the time of day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
