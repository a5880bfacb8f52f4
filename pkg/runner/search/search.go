package search

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
)

// Search runs a free-text query and prints the hits grouped by date.
type Search struct {
	Query string

	ShowID  bool
	Service *app.Service
}

func (n *Search) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no service")
	}

	hits, err := n.Service.Search(ctx, n.Query)
	if err != nil {
		return err
	}
	tags, err := n.Service.Tags(ctx)
	if err != nil {
		return err
	}
	catalog := make(map[string]string, len(tags))
	for _, t := range tags {
		catalog[t.ID] = t.Name
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.SearchHits(hits, catalog)
	return nil
}
