package sitelens

import (
	"context"
	"time"
)

// PromptLog is a stored answer to a question about a page.
type PromptLog struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	URL          string    `json:"url"`
	Prompt       string    `json:"prompt"`
	Response     string    `json:"response"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the prompt log contains invalid fields.
func (l *PromptLog) Validate() error {
	if l.OwnerID == "" {
		return Errorf(EINVALID, "prompt log owner ID required")
	}
	if l.Prompt == "" {
		return Errorf(EINVALID, "prompt log prompt required")
	}
	if l.InputTokens < 0 || l.OutputTokens < 0 {
		return Errorf(EINVALID, "prompt log token counts must not be negative")
	}
	return nil
}

// PromptLogService represents a service for managing stored answers.
type PromptLogService interface {
	// CreatePromptLog stores a prompt log and assigns its ID.
	// A failed create leaves no partial record behind.
	CreatePromptLog(ctx context.Context, log *PromptLog) error

	// FindPromptLogs retrieves prompt logs matching the filter, most recent first.
	FindPromptLogs(ctx context.Context, filter PromptLogFilter) ([]*PromptLog, error)
}

// PromptLogFilter represents a filter for FindPromptLogs.
type PromptLogFilter struct {
	OwnerID *string `json:"ownerId"`
	URL     *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
