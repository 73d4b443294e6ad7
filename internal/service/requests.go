package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"text-summarizer/internal/apperr"
)

// Validator is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var Validator = validator.New(validator.WithRequiredStructEnabled())

// SummarizeRequest is the body of POST /api/summarize.
type SummarizeRequest struct {
	Text      string `json:"text" validate:"required"`
	MaxLength *int   `json:"max_length" validate:"omitempty,min=1"`
	MinLength *int   `json:"min_length" validate:"omitempty,min=1"`
}

// SummarizeURLRequest is the body of POST /api/summarize-url.
type SummarizeURLRequest struct {
	URL string `json:"url" validate:"required"`
}

// KeywordRequest is the body of POST /api/extract-keywords.
type KeywordRequest struct {
	Text string `json:"text" validate:"required"`
}

// SummarizePDFRequest carries an uploaded document.
type SummarizePDFRequest struct {
	Filename string
	Content  []byte `validate:"min=1"`
}

// validationMessages maps "<Struct>.<Field>.<tag>" to the message callers see.
var validationMessages = map[string]string{
	"SummarizeRequest.Text.required":   "No text provided",
	"SummarizeRequest.MaxLength.min":   "max_length must be a positive integer",
	"SummarizeRequest.MinLength.min":   "min_length must be a positive integer",
	"SummarizeURLRequest.URL.required": "No URL provided",
	"KeywordRequest.Text.required":     "No text provided",
	"SummarizePDFRequest.Content.min":  "No file provided",
}

// validate runs struct validation and reports the first failing field as a
// KindValidation error. Fields are checked in declaration order.
func validate(req any) *apperr.Error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Internal(err)
	}
	fe := fieldErrs[0]
	if msg, ok := validationMessages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return apperr.Validation(msg)
	}
	return apperr.Validation(fe.Error())
}
