package event

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const layoutISO = "2006-01-02"

// clockPattern accepts zero-padded 24-hour clock strings, 00:00 through 23:59.
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var (
	ErrTitleRequired = errors.New("event: title required")
	ErrNoWeekdays    = errors.New("event: at least one weekday required")
)

// ValidateDate checks a "YYYY-MM-DD" calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse(layoutISO, s); err != nil {
		return fmt.Errorf("event: invalid date %q", s)
	}
	return nil
}

// ValidateClock checks a zero-padded "HH:mm" time of day.
func ValidateClock(s string) error {
	if !clockPattern.MatchString(s) {
		return fmt.Errorf("event: invalid time %q", s)
	}
	return nil
}

// Weekday returns the day of week for a "YYYY-MM-DD" date.
func Weekday(date string) (time.Weekday, error) {
	t, err := time.Parse(layoutISO, date)
	if err != nil {
		return 0, fmt.Errorf("event: invalid date %q", date)
	}
	return t.Weekday(), nil
}

// Validate checks the event fields against the date bucket it is filed
// under. It runs before any mutation so rejected input never writes.
func (e Event) Validate(date string) error {
	if e.Title == "" {
		return ErrTitleRequired
	}
	if err := ValidateDate(date); err != nil {
		return err
	}
	if e.Time != nil {
		if err := ValidateClock(*e.Time); err != nil {
			return err
		}
	}
	if e.EndTime != nil {
		if err := ValidateClock(*e.EndTime); err != nil {
			return err
		}
	}
	if e.EndDate != nil {
		if err := ValidateDate(*e.EndDate); err != nil {
			return err
		}
		if *e.EndDate < date {
			return fmt.Errorf("event: end date %s before %s", *e.EndDate, date)
		}
	}
	// An end time on the same day must not precede the start time.
	if e.Time != nil && e.EndTime != nil && (e.EndDate == nil || *e.EndDate == date) {
		if *e.EndTime < *e.Time {
			return fmt.Errorf("event: end time %s before start %s", *e.EndTime, *e.Time)
		}
	}
	return nil
}

// Validate checks the recurring event template.
func (r RecurringEvent) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	if len(r.Days) == 0 {
		return ErrNoWeekdays
	}
	for _, d := range r.Days {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("event: invalid weekday %d", d)
		}
	}
	if r.Time != nil {
		if err := ValidateClock(*r.Time); err != nil {
			return err
		}
	}
	if r.EndTime != nil {
		if err := ValidateClock(*r.EndTime); err != nil {
			return err
		}
		if r.Time != nil && *r.EndTime < *r.Time {
			return fmt.Errorf("event: end time %s before start %s", *r.EndTime, *r.Time)
		}
	}
	if r.Until != nil {
		if err := ValidateDate(*r.Until); err != nil {
			return err
		}
	}
	return nil
}
