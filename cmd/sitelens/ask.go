package main

import (
	"fmt"

	"github.com/fwojciec/sitelens"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Pipeline.Answer(deps.Ctx, sitelens.AnswerRequest{
		URL:     c.URL,
		Prompt:  c.Prompt,
		OwnerID: deps.Owner,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitelens.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, answer)
	}

	fmt.Fprintln(deps.Stdout, answer.Response)
	fmt.Fprintf(deps.Stderr, "(%d in / %d out tokens)\n", answer.InputTokens, answer.OutputTokens)
	return nil
}
