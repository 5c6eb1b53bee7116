package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/sitelens"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := sitelens.ProfileFilter{OwnerID: &deps.Owner, Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	recs, err := deps.Profiles.FindProfiles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, recs)
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No profiles found. Use 'sitelens scrape' to create one.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Profile.PageContentType, r.Profile.URL)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
