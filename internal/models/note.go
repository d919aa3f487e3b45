// Package models holds the note domain types shared by the client and the
// reference server: Note, Category, Filter and the editable Draft.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of a fixed set of note categories.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryWork     Category = "Work"
	CategoryOther    Category = "Other"
)

// DefaultCategory is preselected for a fresh draft.
const DefaultCategory = CategoryPersonal

// Categories lists every valid category in presentation order.
var Categories = []Category{CategoryPersonal, CategoryWork, CategoryOther}

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidFilter   = errors.New("invalid filter")
)

// Valid reports whether c is a member of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the known categories, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Note is the single persisted entity. ID is empty until the remote resource
// assigns one on creation.
type Note struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Filter selects which notes a list view shows: FilterAll or a single category.
type Filter string

const FilterAll Filter = "All"

// ParseFilter accepts "All" or any category name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(FilterAll)) {
		return FilterAll, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, strings.TrimSpace(s))
	}
	return Filter(c), nil
}

// Match reports whether n is visible under f.
func (f Filter) Match(n Note) bool {
	return f == FilterAll || Category(f) == n.Category
}

// Draft is the form state a caller edits before submitting.
type Draft struct {
	Title       string
	Description string
	Category    Category
}

// NewDraft returns an empty draft with the default category.
func NewDraft() Draft {
	return Draft{Category: DefaultCategory}
}

// DraftOf stages the fields of n for editing.
func DraftOf(n Note) Draft {
	return Draft{Title: n.Title, Description: n.Description, Category: n.Category}
}

// Cleared empties the text fields and keeps the category, which is how the
// form is reset after a successful save.
func (d Draft) Cleared() Draft {
	return Draft{Category: d.Category}
}

// ApplyTo merges the draft onto n, keeping n's ID.
func (d Draft) ApplyTo(n Note) Note {
	n.Title = d.Title
	n.Description = d.Description
	n.Category = d.Category
	return n
}

// Note converts the draft into a note without an ID, ready for creation.
func (d Draft) Note() Note {
	return d.ApplyTo(Note{})
}
