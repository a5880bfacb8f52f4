package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/glyph"
)

// Key prints the symbol legend used in timeline listings.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	b := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Symbol"), b.Sprint("Meaning"))
	for _, g := range glyph.Default() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
