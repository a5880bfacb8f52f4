package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/glyph"
	"tableflip.dev/agenda/pkg/todo"
)

const layoutISO = "2006-01-02"

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// DayHeading prints a date with its weekday name, marking today.
func (pp *PrettyPrint) DayHeading(date, today string) {
	label := date
	if t, err := time.Parse(layoutISO, date); err == nil {
		label = fmt.Sprintf("%s  %s", date, t.Weekday())
	}
	if date == today {
		label += "  (today)"
	}
	pp.Title(label)
}

// Agenda prints a day's stored events followed by its recurring
// occurrences. Tag names are resolved through the given catalog.
func (pp *PrettyPrint) Agenda(a *app.DayAgenda, tags map[string]string) {
	if len(a.Events) == 0 && len(a.Recurring) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	for _, e := range a.Events {
		pp.eventRow(e, tags)
	}
	for _, r := range a.Recurring {
		pp.recurringRow(r, tags)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) eventRow(e event.Event, tags map[string]string) {
	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	if pp.ShowID {
		_, _ = y.Print(e.ID)
		if pad := len(spacing) - len(e.ID); pad > 0 {
			_, _ = y.Print(strings.Repeat(" ", pad))
		}
	}
	_, _ = t.Printf("%s  %s", clockColumn(e.Time), e.Title)
	if names := tagNames(e.TagIDs, tags); names != "" {
		_, _ = f.Printf("  [%s]", names)
	}
	if e.Description != "" {
		_, _ = f.Printf("  %s", e.Description)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) recurringRow(r event.RecurringEvent, tags map[string]string) {
	t := color.New(color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	if pp.ShowID {
		_, _ = y.Print(r.ID)
		if pad := len(spacing) - len(r.ID); pad > 0 {
			_, _ = y.Print(strings.Repeat(" ", pad))
		}
	}
	_, _ = t.Printf("%s  %s %s", clockColumn(r.Time), r.Title, glyph.Recurring)
	if names := tagNames(r.TagIDs, tags); names != "" {
		_, _ = f.Printf("  [%s]", names)
	}
	fmt.Println("")
}

// SearchHits prints query results grouped by date, newest first.
func (pp *PrettyPrint) SearchHits(hits []app.SearchHit, tags map[string]string) {
	if len(hits) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no matches")
		return
	}

	current := ""
	for _, h := range hits {
		if h.Date != current {
			if current != "" {
				fmt.Println("")
			}
			current = h.Date
			pp.Title(h.Date)
		}
		pp.eventRow(h.Event, tags)
	}
	fmt.Println("")
}

// Todos prints the checklist as a table.
func (pp *PrettyPrint) Todos(todos []todo.Todo) {
	if len(todos) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold("ID"), bold(""), bold("Todo"))
	} else {
		tbl.AddRow(bold(""), bold("Todo"))
	}
	for _, t := range todos {
		mark := glyph.TodoOpen
		title := t.Title
		if t.Done {
			mark = glyph.TodoDone
		}
		if pp.ShowID {
			tbl.AddRow(t.ID, mark, title)
		} else {
			tbl.AddRow(mark, title)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tags prints the tag catalog as a table.
func (pp *PrettyPrint) Tags(tags []event.EventTag) {
	if len(tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Name"), bold("Color"))
	for _, t := range tags {
		tbl.AddRow(t.ID, t.Name, t.Color)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func clockColumn(clock *string) string {
	if clock == nil {
		return "     "
	}
	return *clock
}

func tagNames(ids []string, tags map[string]string) string {
	if len(ids) == 0 {
		return ""
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := tags[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
