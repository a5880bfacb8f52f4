package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/timeutil"
)

// EventOptions
type EventOptions struct {
	Description string
	Time        string
	EndDate     string
	EndTime     string
	Color       string
	Tags        []string
	URLs        []string
	Remind      string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer free text for the event.")
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		`Start time, example: --time="14:30". Untimed when unset.`)
	cmd.Flags().StringVar(&o.EndDate, "end-date", "",
		"End date for multi-day events.")
	cmd.Flags().StringVar(&o.EndTime, "end-time", "",
		"End time.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		"Display color name.")
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Tag ids to attach. Repeatable.")
	cmd.Flags().StringSliceVar(&o.URLs, "url", nil,
		"Links to attach. Repeatable.")
	cmd.Flags().StringVar(&o.Remind, "remind", "",
		`Reminder lead before the start time, example: --remind=15m or --remind=1h.`)
}

// TimePtr returns the start time or nil when the flag was left unset.
func (o *EventOptions) TimePtr() *string { return strPtr(o.Time) }

func (o *EventOptions) EndDatePtr() *string { return strPtr(o.EndDate) }

func (o *EventOptions) EndTimePtr() *string { return strPtr(o.EndTime) }

// RemindPtr parses the lead into minutes, nil when no reminder was asked for.
func (o *EventOptions) RemindPtr() (*int, error) {
	if o.Remind == "" {
		return nil, nil
	}
	m, err := timeutil.ParseLead(o.Remind)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
