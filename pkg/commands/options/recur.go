package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// RecurOptions
type RecurOptions struct {
	Days  []string
	Until string
}

func AddRecurArgs(cmd *cobra.Command, o *RecurOptions) {
	cmd.Flags().StringSliceVar(&o.Days, "day", nil,
		`Weekday the event repeats on, example: --day=mon --day=wed. Repeatable.`)
	cmd.Flags().StringVar(&o.Until, "until", "",
		"Last date the event repeats, inclusive.")
}

var weekdayAliases = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// Weekdays parses the day flags into weekday values.
func (o *RecurOptions) Weekdays() ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(o.Days))
	for _, d := range o.Days {
		wd, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(d))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", d)
		}
		out = append(out, wd)
	}
	return out, nil
}

// UntilPtr returns the until date, nil when the series never ends.
func (o *RecurOptions) UntilPtr() *string {
	if o.Until == "" {
		return nil
	}
	u := o.Until
	return &u
}
