package recur

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/timeutil"
)

// Add creates a recurring event template.
type Add struct {
	Title       string
	Description string
	Time        *string
	EndTime     *string
	Color       string
	TagIDs      []string
	Days        []time.Weekday
	Until       *string
	Remind      *int

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add recurring, no service")
	}

	in := event.RecurringEvent{
		Title:           n.Title,
		Description:     n.Description,
		Time:            n.Time,
		EndTime:         n.EndTime,
		Color:           n.Color,
		TagIDs:          n.TagIDs,
		Days:            n.Days,
		Until:           n.Until,
		ReminderMinutes: n.Remind,
	}
	created, err := n.Service.AddRecurring(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("Added recurring %q on %s.\n", created.Title, dayNames(created.Days))
	return nil
}

// Remove deletes a recurring event template.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove recurring, no service")
	}

	removed, err := n.Service.DeleteRecurring(ctx, n.ID)
	if err != nil {
		return err
	}
	if removed == nil {
		return fmt.Errorf("no recurring event %s", n.ID)
	}
	fmt.Printf("Removed recurring %q.\n", removed.Title)
	return nil
}

// List prints all recurring event templates.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list recurring, no service")
	}

	recs, err := n.Service.Recurrings(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "Title", "Days", "Time", "Until", "Remind")
	for _, r := range recs {
		clock := ""
		if r.Time != nil {
			clock = *r.Time
		}
		until := ""
		if r.Until != nil {
			until = *r.Until
		}
		lead := ""
		if r.ReminderMinutes != nil {
			lead = timeutil.FormatLead(*r.ReminderMinutes)
		}
		tbl.AddRow(r.ID, r.Title, dayNames(r.Days), clock, until, lead)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

func dayNames(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}
