// Package glyph is the symbol catalog for timeline listings.
package glyph

// The symbols the printers mark rows with.
const (
	Recurring = "↻"
	TodoOpen  = "○"
	TodoDone  = "✘"
)

type Glyph struct {
	Symbol  string
	Meaning string
}

// Default returns the legend in display order.
func Default() []Glyph {
	return []Glyph{
		{Symbol: Recurring, Meaning: "repeats weekly"},
		{Symbol: TodoOpen, Meaning: "todo, not done"},
		{Symbol: TodoDone, Meaning: "todo, done"},
	}
}
