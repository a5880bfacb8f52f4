// Package ics renders the timeline as an iCalendar document, giving the
// data a standards-shaped exit path beyond the JSON backup format.
package ics

import (
	"fmt"
	"io"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
)

const layoutISO = "2006-01-02"

// Write emits one VEVENT per stored event and one rule-carrying VEVENT per
// recurring template.
func Write(w io.Writer, state *store.TimelineState) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	dates := make([]string, 0, len(state.EventsByDate))
	for d := range state.EventsByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, date := range dates {
		for _, e := range state.EventsByDate[date] {
			if err := addEvent(cal, date, e); err != nil {
				return err
			}
		}
	}
	for _, r := range state.RecurringEvents {
		if err := addRecurring(cal, r); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("ics: write calendar: %w", err)
	}
	return nil
}

func addEvent(cal *ical.Calendar, date string, e event.Event) error {
	day, err := time.Parse(layoutISO, date)
	if err != nil {
		return fmt.Errorf("ics: bad date key %q: %w", date, err)
	}

	ve := cal.AddEvent(e.ID)
	ve.SetSummary(e.Title)
	if e.Description != "" {
		ve.SetDescription(e.Description)
	}
	if !e.Created.IsZero() {
		ve.SetCreatedTime(e.Created.Time)
	}

	if e.Time == nil {
		ve.SetAllDayStartAt(day)
		ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		return nil
	}

	start, err := clockOn(day, *e.Time)
	if err != nil {
		return err
	}
	ve.SetStartAt(start)

	endDay := day
	if e.EndDate != nil {
		if endDay, err = time.Parse(layoutISO, *e.EndDate); err != nil {
			return fmt.Errorf("ics: bad end date %q: %w", *e.EndDate, err)
		}
	}
	if e.EndTime != nil {
		end, err := clockOn(endDay, *e.EndTime)
		if err != nil {
			return err
		}
		ve.SetEndAt(end)
	}
	return nil
}

func addRecurring(cal *ical.Calendar, r event.RecurringEvent) error {
	ve := cal.AddEvent(r.ID)
	ve.SetSummary(r.Title)
	if r.Description != "" {
		ve.SetDescription(r.Description)
	}

	// Anchor the series at the first occurrence on or after creation; the
	// template itself carries no start date.
	anchor := firstOccurrence(r)
	if r.Time != nil {
		start, err := clockOn(anchor, *r.Time)
		if err != nil {
			return err
		}
		ve.SetStartAt(start)
		if r.EndTime != nil {
			end, err := clockOn(anchor, *r.EndTime)
			if err != nil {
				return err
			}
			ve.SetEndAt(end)
		}
	} else {
		ve.SetAllDayStartAt(anchor)
	}

	opt := rrule.ROption{Freq: rrule.WEEKLY, Byweekday: rruleDays(r.Days)}
	if r.Until != nil {
		until, err := time.Parse(layoutISO, *r.Until)
		if err != nil {
			return fmt.Errorf("ics: bad until date %q: %w", *r.Until, err)
		}
		// End of the until day keeps the last occurrence inside the rule.
		opt.Until = until.Add(24*time.Hour - time.Second).UTC()
	}
	ve.AddRrule(opt.RRuleString())
	return nil
}

func firstOccurrence(r event.RecurringEvent) time.Time {
	day := r.Created.Time
	if day.IsZero() {
		day = time.Now()
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		if r.OccursOn(day.Format(layoutISO)) {
			return day
		}
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("ics: bad time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

var weekdayToRRule = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

func rruleDays(days []time.Weekday) []rrule.Weekday {
	out := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		if rd, ok := weekdayToRRule[d]; ok {
			out = append(out, rd)
		}
	}
	return out
}
