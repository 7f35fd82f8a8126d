package opentdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for the non-success response codes embedded in JSON bodies.
// Match with errors.Is; the concrete error in the chain is a *ResponseError
// carrying the numeric code.
var (
	// ErrNoResults is response code 1: the API has fewer questions than the
	// query asked for.
	ErrNoResults = errors.New("no results for this query")

	// ErrInvalidParameter is response code 2: a query parameter was not valid.
	ErrInvalidParameter = errors.New("invalid request parameter")

	// ErrTokenNotFound is response code 3: the session token does not exist
	// server-side (tokens expire after 6 hours of inactivity).
	ErrTokenNotFound = errors.New("session token not found")

	// ErrTokenEmpty is response code 4: the token has handed out every
	// question matching the query. Callers should reset the token.
	ErrTokenEmpty = errors.New("session token exhausted")

	// ErrRateLimited is response code 5: more than one request within the
	// remote's 5-second-per-IP window.
	ErrRateLimited = errors.New("rate limited")
)

// ErrInvalidRequest wraps every caller-input validation failure. It is
// raised before any network activity.
var ErrInvalidRequest = errors.New("invalid request")

// ErrTokenNeverSet is returned by ResetToken when no token was ever
// requested on this client.
var ErrTokenNeverSet = errors.New("cannot reset a token that was never set")

// ResponseError is a non-zero response_code translated to an error. Unwrap
// yields the matching sentinel so callers can branch with errors.Is without
// inspecting strings.
type ResponseError struct {
	Code int
}

func (e *ResponseError) Error() string {
	if s := e.Unwrap(); s != nil {
		return fmt.Sprintf("opentdb: response code %d: %s", e.Code, s)
	}
	return fmt.Sprintf("opentdb: unknown response code %d", e.Code)
}

func (e *ResponseError) Unwrap() error {
	switch e.Code {
	case 1:
		return ErrNoResults
	case 2:
		return ErrInvalidParameter
	case 3:
		return ErrTokenNotFound
	case 4:
		return ErrTokenEmpty
	case 5:
		return ErrRateLimited
	default:
		return nil
	}
}

// responseError maps a decoded response_code to an error; code 0 is success.
func responseError(code int) error {
	if code == 0 {
		return nil
	}
	return &ResponseError{Code: code}
}
