package pokeapi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLookupFailed matches every error returned by Client.Fetch, so callers that
// do not need to tell the failure classes apart can test for it alone.
var ErrLookupFailed = errors.New("pokemon lookup failed")

// ErrNoArtwork is wrapped by FetchImage when the record carries no image URL.
var ErrNoArtwork = errors.New("no artwork url")

// NotFoundError reports that the API does not know the requested species.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pokemon %q not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrLookupFailed
}

// LookupError covers transport failures and unexpected HTTP statuses.
// Status is zero when no response was received.
type LookupError struct {
	Name   string
	URL    string
	Status int
	Err    error
}

func (e *LookupError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("lookup %q: unexpected status %d from %s", e.Name, e.Status, e.URL)
	}
	return fmt.Sprintf("lookup %q: %v", e.Name, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool {
	return target == ErrLookupFailed
}

// ParseError reports a response body that is not JSON or lacks required
// fields. Fields lists every offending field path found during validation.
type ParseError struct {
	Name   string
	Fields []string
	Err    error
}

func (e *ParseError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("parse %q response: missing or invalid fields: %s", e.Name, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("parse %q response: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	return target == ErrLookupFailed
}
