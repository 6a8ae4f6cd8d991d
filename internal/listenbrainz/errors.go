package listenbrainz

import (
	"encoding/json"
	"errors"
	"fmt"

	lbhttp "github.com/handiism/fresh-releases/internal/http"
	"github.com/handiism/fresh-releases/internal/listenbrainz/dto"
)

// FetchError is returned when fresh releases could not be fetched.
type FetchError struct {
	// Op names the failed operation, e.g. "fetch sitewide releases".
	Op string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	// Message is the API error message, if the server sent one.
	Message string

	// Err is the underlying error.
	Err error
}

func (e *FetchError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": failed"
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// newFetchError wraps err, extracting the status code and API error
// message from HTTP status errors.
func newFetchError(op string, err error) *FetchError {
	fe := &FetchError{Op: op, Err: err}

	var se *lbhttp.StatusError
	if errors.As(err, &se) {
		fe.StatusCode = se.StatusCode
		var apiErr dto.ErrorResponse
		if json.Unmarshal(se.Body, &apiErr) == nil && apiErr.Error != "" {
			fe.Message = apiErr.Error
		}
	}

	return fe
}
