package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/sitelens"
	"github.com/google/uuid"
)

var _ sitelens.PromptLogService = (*PromptLogService)(nil)

// PromptLogService implements sitelens.PromptLogService using SQLite.
type PromptLogService struct {
	db *DB
}

// NewPromptLogService creates a new PromptLogService.
func NewPromptLogService(db *DB) *PromptLogService {
	return &PromptLogService{db: db}
}

// CreatePromptLog stores log inside a transaction, assigning ID and
// CreatedAt. On failure log is left unchanged.
func (s *PromptLogService) CreatePromptLog(ctx context.Context, log *sitelens.PromptLog) error {
	if err := log.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO prompt_logs (id, owner_id, url, prompt, response, input_tokens, output_tokens, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, log.OwnerID, log.URL, log.Prompt, log.Response, log.InputTokens, log.OutputTokens,
		formatTime(createdAt)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.ID = id
	log.CreatedAt = createdAt
	return nil
}

// FindPromptLogs retrieves prompt logs matching the filter, newest first.
func (s *PromptLogService) FindPromptLogs(ctx context.Context, filter sitelens.PromptLogFilter) ([]*sitelens.PromptLog, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, owner_id, url, prompt, response, input_tokens, output_tokens, created_at FROM prompt_logs WHERE 1=1`)
	appendOwnerURL(&query, &args, filter.OwnerID, filter.URL)
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []*sitelens.PromptLog{}
	for rows.Next() {
		var log sitelens.PromptLog
		var createdAt string
		if err := rows.Scan(&log.ID, &log.OwnerID, &log.URL, &log.Prompt, &log.Response,
			&log.InputTokens, &log.OutputTokens, &createdAt); err != nil {
			return nil, err
		}
		if log.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		logs = append(logs, &log)
	}
	return logs, rows.Err()
}
