// Package viewport tracks which calendar dates are loaded for the
// virtualized timeline and decides which of them to display.
package viewport

import (
	"sort"
	"time"
)

const layoutISO = "2006-01-02"

const (
	// InitialPastDays and InitialFutureDays define the window loaded on
	// startup: [today-2 .. today+7].
	InitialPastDays   = 2
	InitialFutureDays = 7

	// AlwaysShowPastDays is how far back a past date stays visible even
	// when it is empty (unless hide-empty-days is on).
	AlwaysShowPastDays = 10

	// MaxPastDays is the hard rendering cutoff for past dates. Data older
	// than this is kept in storage but never displayed.
	MaxPastDays = 90

	// AnchorRestoreAttempts is for incremental renderers consuming
	// ExtendPast: prepending dates shifts everything below, and a scrolling
	// front end should retry restoring its anchor row at most this many
	// layout passes before giving up. The CLI repaints whole listings per
	// invocation and never anchors, so nothing here enforces it.
	AnchorRestoreAttempts = 10
)

// Window is the ordered, deduplicated set of loaded date strings backing the
// scroll view. Loaded is not the same as displayed; see Visible.
type Window struct {
	dates []string
}

// Initial returns the startup window around today.
func Initial(today string) *Window {
	w := &Window{}
	w.Reset(today)
	return w
}

// Reset returns the window to the initial range around today. Used when the
// hide-empty-days setting flips off, instead of reconciling a partially
// filtered window.
func (w *Window) Reset(today string) {
	w.dates = w.dates[:0]
	for i := -InitialPastDays; i <= InitialFutureDays; i++ {
		w.dates = append(w.dates, AddDays(today, i))
	}
}

// Dates returns a copy of the loaded window, ascending.
func (w *Window) Dates() []string {
	return append([]string(nil), w.dates...)
}

// First returns the earliest loaded date, or "" for an empty window.
func (w *Window) First() string {
	if len(w.dates) == 0 {
		return ""
	}
	return w.dates[0]
}

// Last returns the latest loaded date, or "" for an empty window.
func (w *Window) Last() string {
	if len(w.dates) == 0 {
		return ""
	}
	return w.dates[len(w.dates)-1]
}

// Contains reports whether the date is loaded.
func (w *Window) Contains(date string) bool {
	i := sort.SearchStrings(w.dates, date)
	return i < len(w.dates) && w.dates[i] == date
}

// ExtendPast loads count consecutive days immediately preceding the earliest
// loaded date and returns them, ascending.
func (w *Window) ExtendPast(count int) []string {
	if len(w.dates) == 0 || count <= 0 {
		return nil
	}
	added := PastDates(w.dates[0], count)
	w.dates = append(added, w.dates...)
	return append([]string(nil), added...)
}

// ExtendFuture loads count consecutive days immediately following the latest
// loaded date and returns them, ascending.
func (w *Window) ExtendFuture(count int) []string {
	if len(w.dates) == 0 || count <= 0 {
		return nil
	}
	last := w.dates[len(w.dates)-1]
	added := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		added = append(added, AddDays(last, i))
	}
	w.dates = append(w.dates, added...)
	return append([]string(nil), added...)
}

// PastDates returns the count dates immediately before the given date,
// ascending: PastDates("2026-01-10", 5) is 2026-01-05 through 2026-01-09.
func PastDates(before string, count int) []string {
	out := make([]string, 0, count)
	for i := count; i >= 1; i-- {
		out = append(out, AddDays(before, -i))
	}
	return out
}

// AddDays shifts an ISO date by n calendar days. Malformed input comes back
// unchanged; the windowing layer only ever feeds it validated keys.
func AddDays(date string, n int) string {
	t, err := time.Parse(layoutISO, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(layoutISO)
}

// Options controls the visibility filter.
type Options struct {
	// HideEmptyDays suppresses dates with no stored or materialized events.
	HideEmptyDays bool

	// FilterActive marks a free-text filter as engaged; only dates the
	// matches callback approves are shown.
	FilterActive bool
}

// Visible applies the display rules to the loaded window and returns the
// dates to render, ascending:
//
//   - with an active filter, only matching dates survive;
//   - today is always shown;
//   - past dates beyond MaxPastDays are never shown;
//   - every other date, past or future, is shown unless hide-empty-days is
//     on and the date has no events. Past dates inside the
//     AlwaysShowPastDays band therefore stay visible while empty as long as
//     hide-empty-days is off.
func (w *Window) Visible(today string, opts Options, hasEvents func(date string) bool, matches func(date string) bool) []string {
	out := make([]string, 0, len(w.dates))
	for _, date := range w.dates {
		if opts.FilterActive {
			if matches != nil && matches(date) {
				out = append(out, date)
			}
			continue
		}
		if date == today {
			out = append(out, date)
			continue
		}
		if date < today && date < AddDays(today, -MaxPastDays) {
			continue
		}
		if opts.HideEmptyDays && (hasEvents == nil || !hasEvents(date)) {
			continue
		}
		out = append(out, date)
	}
	return out
}
