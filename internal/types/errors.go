package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrNoResponse     = errors.New("no response")
	ErrMissingTitle   = errors.New("no title under any selector")
	ErrMissingDate    = errors.New("no date text under any selector")
	ErrMissingContent = errors.New("no content under any selector")
	ErrUnknownSource  = errors.New("unknown source")
)

// FetchError wraps errors that occur during fetching. A FetchError is the
// "no response" signal: callers skip the page or article rather than abort
// the crawl.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractError wraps structural extraction failures: a required selector
// matched nothing, or the sanitizer produced empty output. The failure is
// local to one article or one results page.
type ExtractError struct {
	URL   string
	Field string
	Err   error
}

func (e *ExtractError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("extract error for %s (field=%q): %v", e.URL, e.Field, e.Err)
	}
	return fmt.Sprintf("extract error for %s: %v", e.URL, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// DateParseError marks date text that matched no recognized pattern. It is
// logged at error level and the article is dropped; a default date is never
// substituted.
type DateParseError struct {
	Text string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unrecognized date text %q", e.Text)
}

// StorageError wraps errors from export backends.
type StorageError struct {
	Backend string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error (%s): %v", e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
