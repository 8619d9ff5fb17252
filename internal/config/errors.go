package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required entry field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidType is returned when the source holds a value of the wrong shape.
	ErrInvalidType = errors.New("invalid type")

	// ErrAmbiguousKey is returned when several keys differ only in case and
	// none matches exactly.
	ErrAmbiguousKey = errors.New("ambiguous key")
)

// BindingError reports a failure to populate the options record from its
// configuration source. Index is -1 when the failure is not tied to a single
// entry.
type BindingError struct {
	Section string
	Index   int
	Slug    string
	Field   string
	Err     error
}

func (e *BindingError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := fmt.Sprintf("config: bind section %q", e.Section)
	if e.Index >= 0 {
		msg += fmt.Sprintf(": Resources[%d]", e.Index)
		if e.Slug != "" {
			msg += fmt.Sprintf(" (slug %q)", e.Slug)
		}
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %q", e.Field)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *BindingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func sectionError(field string, err error) *BindingError {
	return &BindingError{Section: Section, Index: -1, Field: field, Err: err}
}

func entryError(index int, slug, field string, err error) *BindingError {
	return &BindingError{Section: Section, Index: index, Slug: slug, Field: field, Err: err}
}
