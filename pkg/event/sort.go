package event

import "sort"

// Less orders two events within a date bucket: timed events before untimed
// ones, timed events by lexical "HH:mm" (valid because the strings are
// zero-padded), ties and untimed pairs by creation time ascending.
func Less(a, b Event) bool {
	switch {
	case a.Time != nil && b.Time == nil:
		return true
	case a.Time == nil && b.Time != nil:
		return false
	case a.Time != nil && b.Time != nil && *a.Time != *b.Time:
		return *a.Time < *b.Time
	}
	return a.Created.Before(b.Created.Time)
}

// Sort orders a date bucket in place. The sort is stable so equal entries
// keep their insertion order.
func Sort(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return Less(events[i], events[j])
	})
}
