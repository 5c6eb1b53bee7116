package main

import (
	"fmt"

	"github.com/fwojciec/sitelens"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	rec, err := deps.Pipeline.Scrape(deps.Ctx, sitelens.ScrapeRequest{URL: c.URL, OwnerID: deps.Owner})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, rec)
	}

	fmt.Fprintln(deps.Stdout, sitelens.FormatProfile(&rec.Profile))
	fmt.Fprintf(deps.Stdout, "%-12s %s\n", "ID:", rec.ID)
	return nil
}
