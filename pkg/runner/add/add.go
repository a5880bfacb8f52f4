package add

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
)

// Add creates one event on a date and echoes the resulting day agenda.
type Add struct {
	Date        string
	Title       string
	Description string
	Time        *string
	EndDate     *string
	EndTime     *string
	Color       string
	TagIDs      []string
	URLs        []string
	Remind      *int

	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	in := event.Event{
		Title:           n.Title,
		Description:     n.Description,
		Time:            n.Time,
		EndDate:         n.EndDate,
		EndTime:         n.EndTime,
		Color:           n.Color,
		TagIDs:          n.TagIDs,
		URLs:            n.URLs,
		ReminderMinutes: n.Remind,
	}
	if _, err := n.Service.AddEvent(ctx, n.Date, in); err != nil {
		return err
	}

	agenda, err := n.Service.Agenda(ctx, n.Date)
	if err != nil {
		return err
	}
	tags, err := TagCatalog(ctx, n.Service)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.DayHeading(n.Date, "")
	pp.Agenda(agenda, tags)
	return nil
}

// TagCatalog maps tag ids to display names for the printers.
func TagCatalog(ctx context.Context, s *app.Service) (map[string]string, error) {
	tags, err := s.Tags(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(tags))
	for _, t := range tags {
		out[t.ID] = t.Name
	}
	return out, nil
}
