package sitelens

import (
	"context"
	"time"
)

// Profile is the structured description of a page derived by an Extractor.
// A Profile is immutable once produced.
type Profile struct {
	URL             string  `json:"url"`
	Name            string  `json:"name"`
	About           string  `json:"about"`
	SourceType      string  `json:"sourceType"`
	Industry        string  `json:"industry"`
	PageContentType string  `json:"pageContentType"`
	Contact         string  `json:"contact"`
	Email           *string `json:"email"` // nil when the page contains no address
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	RawContent      string  `json:"rawContent"`
	Language        string  `json:"language,omitempty"`
}

// Extractor derives a Profile from a rendered page.
type Extractor interface {
	// Extract applies the extraction rules to page. The returned profile's
	// URL is url verbatim. Individual rules degrade to empty values; only a
	// markup parsing failure returns an error (EEXTRACT).
	Extract(page *Page, url string) (*Profile, error)
}

// LanguageDetector names the natural language of a text.
type LanguageDetector interface {
	// DetectLanguage returns the language name, or "" when undetermined.
	DetectLanguage(text string) string
}

// ProfileRecord is a stored Profile.
type ProfileRecord struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Profile     Profile   `json:"profile"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ProfileRecord) Validate() error {
	if r.OwnerID == "" {
		return Errorf(EINVALID, "profile owner ID required")
	}
	if r.Profile.URL == "" {
		return Errorf(EINVALID, "profile URL required")
	}
	return nil
}

// ProfileService represents a service for managing stored profiles.
type ProfileService interface {
	// CreateProfile stores a profile record and assigns its ID.
	// A failed create leaves no partial record behind.
	CreateProfile(ctx context.Context, rec *ProfileRecord) error

	// FindProfileByID retrieves a profile record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindProfileByID(ctx context.Context, id string) (*ProfileRecord, error)

	// FindProfiles retrieves profile records matching the filter,
	// most recent first.
	FindProfiles(ctx context.Context, filter ProfileFilter) ([]*ProfileRecord, error)
}

// ProfileFilter represents a filter for FindProfiles.
type ProfileFilter struct {
	OwnerID *string `json:"ownerId"`
	URL     *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
