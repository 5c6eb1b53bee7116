package main

import (
	"fmt"

	"github.com/fwojciec/sitelens"
)

// Run executes the prompts command.
func (c *PromptsCmd) Run(deps *Dependencies) error {
	filter := sitelens.PromptLogFilter{OwnerID: &deps.Owner, Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	logs, err := deps.PromptLogs.FindPromptLogs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, logs)
	}

	if len(logs) == 0 {
		fmt.Fprintln(deps.Stdout, "No answers found. Use 'sitelens ask' to create one.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, sitelens.FormatPromptLogs(logs))
	return nil
}
