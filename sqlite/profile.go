package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/sitelens"
	"github.com/google/uuid"
)

var _ sitelens.ProfileService = (*ProfileService)(nil)

// ProfileService implements sitelens.ProfileService using SQLite.
type ProfileService struct {
	db *DB
}

// NewProfileService creates a new ProfileService.
func NewProfileService(db *DB) *ProfileService {
	return &ProfileService{db: db}
}

const profileColumns = `id, owner_id, url, name, about, source_type, industry, page_content_type,
	contact, email, title, description, raw_content, language, content_hash, created_at`

// CreateProfile stores rec inside a transaction, assigning ID and CreatedAt.
// On failure rec is left unchanged.
func (s *ProfileService) CreateProfile(ctx context.Context, rec *sitelens.ProfileRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	createdAt := time.Now().UTC()
	p := rec.Profile

	var email sql.NullString
	if p.Email != nil {
		email = sql.NullString{String: *p.Email, Valid: true}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, rec.OwnerID, p.URL, p.Name, p.About, p.SourceType, p.Industry, p.PageContentType,
		p.Contact, email, p.Title, p.Description, p.RawContent, p.Language, rec.ContentHash,
		formatTime(createdAt)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	rec.ID = id
	rec.CreatedAt = createdAt
	return nil
}

// FindProfileByID retrieves a profile record by ID.
func (s *ProfileService) FindProfileByID(ctx context.Context, id string) (*sitelens.ProfileRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	rec, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitelens.Errorf(sitelens.ENOTFOUND, "profile not found")
	}
	return rec, err
}

// FindProfiles retrieves profile records matching the filter, newest first.
func (s *ProfileService) FindProfiles(ctx context.Context, filter sitelens.ProfileFilter) ([]*sitelens.ProfileRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + profileColumns + ` FROM profiles WHERE 1=1`)
	appendOwnerURL(&query, &args, filter.OwnerID, filter.URL)
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []*sitelens.ProfileRecord{}
	for rows.Next() {
		rec, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*sitelens.ProfileRecord, error) {
	var rec sitelens.ProfileRecord
	var email sql.NullString
	var createdAt string
	p := &rec.Profile

	if err := row.Scan(&rec.ID, &rec.OwnerID, &p.URL, &p.Name, &p.About, &p.SourceType, &p.Industry,
		&p.PageContentType, &p.Contact, &email, &p.Title, &p.Description, &p.RawContent, &p.Language,
		&rec.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	if email.Valid {
		p.Email = &email.String
	}

	var err error
	rec.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
