package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/viewport"
)

const layoutISO = "2006-01-02"

// Get renders the timeline: either one date's agenda, or the loaded window
// around today filtered by the display rules.
type Get struct {
	Date   string // single date; empty means the window view
	Past   int    // extra days to load before the initial window
	Future int    // extra days to load after it

	HideEmpty bool
	Filter    string
	Month     bool // month grid instead of day listings

	ShowID  bool
	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	tags, err := tagCatalog(ctx, n.Service)
	if err != nil {
		return err
	}

	today := time.Now().Format(layoutISO)

	if n.Month {
		return n.month(ctx, &pp)
	}

	if n.Date != "" {
		agenda, err := n.Service.Agenda(ctx, n.Date)
		if err != nil {
			return err
		}
		fmt.Println("")
		pp.DayHeading(n.Date, today)
		pp.Agenda(agenda, tags)
		return nil
	}

	w := viewport.Initial(today)
	if n.Past > 0 {
		w.ExtendPast(n.Past)
	}
	if n.Future > 0 {
		w.ExtendFuture(n.Future)
	}

	hasEvents := func(date string) bool {
		has, err := n.Service.HasEvents(ctx, date)
		return err == nil && has
	}

	opts := viewport.Options{HideEmptyDays: n.HideEmpty}
	var matches func(string) bool
	if n.Filter != "" {
		opts.FilterActive = true
		matchDates, err := n.filterDates(ctx)
		if err != nil {
			return err
		}
		matches = func(date string) bool { return matchDates[date] }
	}

	fmt.Println("")
	for _, date := range w.Visible(today, opts, hasEvents, matches) {
		agenda, err := n.Service.Agenda(ctx, date)
		if err != nil {
			return err
		}
		pp.DayHeading(date, today)
		pp.Agenda(agenda, tags)
	}
	return nil
}

// filterDates collects the dates with at least one text match.
func (n *Get) filterDates(ctx context.Context) (map[string]bool, error) {
	hits, err := n.Service.Search(ctx, n.Filter)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(hits))
	for _, h := range hits {
		out[h.Date] = true
	}
	return out, nil
}

func (n *Get) month(ctx context.Context, pp *printers.PrettyPrint) error {
	fmt.Println("")
	for _, first := range monthsInView(time.Now(), n.Future) {
		counts := make(map[int]int)
		for i := 1; i <= printers.DaysIn(first); i++ {
			date := time.Date(first.Year(), first.Month(), i, 0, 0, 0, 0, time.Local).Format(layoutISO)
			agenda, err := n.Service.Agenda(ctx, date)
			if err != nil {
				return err
			}
			counts[i] = len(agenda.Events) + len(agenda.Recurring)
		}
		pp.Month(first, counts)
	}
	return nil
}

// monthsInView returns the first day of each month the loaded window
// reaches: always the current month, plus every later month the future
// horizon (initial window end plus --future days) crosses into.
func monthsInView(now time.Time, futureDays int) []time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	months := []time.Time{first}

	horizon := now.AddDate(0, 0, viewport.InitialFutureDays+futureDays)
	for next := printers.NextMonth(first); !next.After(horizon); next = printers.NextMonth(next) {
		months = append(months, next)
	}
	return months
}

func tagCatalog(ctx context.Context, s *app.Service) (map[string]string, error) {
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
