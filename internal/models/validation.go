package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

const (
	ReasonTitleTooLong       = "TitleTooLong"
	ReasonDescriptionTooLong = "DescriptionTooLong"
	ReasonInvalidCategory    = "InvalidCategory"
)

// ErrValidation matches any *ValidationError with errors.Is.
var ErrValidation = errors.New("validation error")

// ValidationError reports which field failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidateTitle fails when title is longer than MaxTitleLength characters.
func ValidateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return &ValidationError{Field: "title", Reason: ReasonTitleTooLong}
	}
	return nil
}

// ValidateDescription fails when description is longer than
// MaxDescriptionLength characters.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Reason: ReasonDescriptionTooLong}
	}
	return nil
}

func ValidateCategory(c Category) error {
	if !c.Valid() {
		return &ValidationError{Field: "category", Reason: ReasonInvalidCategory}
	}
	return nil
}

// ValidateDraft checks title, description and category in that order and
// returns the first failure.
func ValidateDraft(d Draft) error {
	if err := ValidateTitle(d.Title); err != nil {
		return err
	}
	if err := ValidateDescription(d.Description); err != nil {
		return err
	}
	return ValidateCategory(d.Category)
}

// ValidateNote is ValidateDraft for an already built note.
func ValidateNote(n Note) error {
	return ValidateDraft(DraftOf(n))
}
