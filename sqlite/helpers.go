package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, naming the column on failure.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendOwnerURL appends the filter conditions shared by profiles and prompt
// logs.
func appendOwnerURL(query *strings.Builder, args *[]any, ownerID, url *string) {
	if ownerID != nil {
		query.WriteString(" AND owner_id = ?")
		*args = append(*args, *ownerID)
	}
	if url != nil {
		query.WriteString(" AND url = ?")
		*args = append(*args, *url)
	}
}

// appendPagination appends LIMIT and OFFSET clauses if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
