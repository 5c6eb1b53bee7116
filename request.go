package sitelens

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ScrapeRequest asks for the profile of a page.
type ScrapeRequest struct {
	URL     string `json:"url" validate:"required"`
	OwnerID string `json:"ownerId" validate:"required"`
}

// Validate returns EINVALID if a required field is missing.
func (r *ScrapeRequest) Validate() error {
	return validateRequest(r)
}

// AnswerRequest asks a question about a page.
type AnswerRequest struct {
	URL     string `json:"url" validate:"required"`
	Prompt  string `json:"prompt" validate:"required"`
	OwnerID string `json:"ownerId" validate:"required"`
}

// Validate returns EINVALID if a required field is missing.
func (r *AnswerRequest) Validate() error {
	return validateRequest(r)
}

func validateRequest(r any) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return Errorf(EINVALID, "%s required", fieldName(verrs[0].Field()))
	}
	return WrapError(EINVALID, err, "invalid request")
}

func fieldName(field string) string {
	switch field {
	case "URL":
		return "url"
	case "Prompt":
		return "prompt"
	case "OwnerID":
		return "owner ID"
	}
	return field
}
