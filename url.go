package sitelens

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateURL returns EINVALID for an empty URL and EINVALIDURL if rawURL
// is not an absolute http or https URL.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return Errorf(EINVALID, "url required")
	}
	if err := validate.Var(rawURL, "http_url"); err != nil {
		return Errorf(EINVALIDURL, "invalid url %q", rawURL)
	}
	return nil
}
