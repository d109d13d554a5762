package quietgh

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Error codes used by this package. Most are aliases of the shared errors
// library; ErrCodeNotModified is specific to GitHub's 304 responses.
const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeAuthenticationFailed indicates authentication failure.
	ErrCodeAuthenticationFailed = errors.CodeUnauthorized

	// ErrCodePermissionDenied indicates insufficient permissions.
	ErrCodePermissionDenied = errors.CodeForbidden

	// ErrCodeRateLimited indicates rate limit exceeded.
	ErrCodeRateLimited = errors.CodeRateLimit

	// ErrCodeInvalidInput indicates invalid parameters or malformed data.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeNetwork indicates network-related errors.
	ErrCodeNetwork = errors.CodeNetwork

	// ErrCodeInternal indicates internal errors.
	ErrCodeInternal = errors.CodeInternal

	// ErrCodeNotModified indicates the request was a no-op because the
	// resource was already in the requested state.
	ErrCodeNotModified errors.ErrorCode = "NOT_MODIFIED"
)

// graphQLNotFound is the prefix GitHub uses for unresolvable nodes.
const graphQLNotFound = "Could not resolve to"

// WrapHTTPError wraps an error based on HTTP status code from GitHub API.
func WrapHTTPError(err error, statusCode int, message string) error {
	if err == nil {
		return nil
	}

	var code errors.ErrorCode
	switch statusCode {
	case http.StatusNotModified:
		code = ErrCodeNotModified
	case http.StatusNotFound, http.StatusGone:
		code = errors.CodeNotFound
	case http.StatusUnauthorized:
		code = errors.CodeUnauthorized
	case http.StatusForbidden:
		code = errors.CodeForbidden
	case http.StatusConflict:
		code = errors.CodeConflict
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		code = errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		code = errors.CodeRateLimit
	default:
		if statusCode >= 500 {
			code = errors.CodeNetwork
		} else {
			code = errors.CodeInternal
		}
	}

	wrapped := errors.Wrap(err, code, message)
	if statusCode != 0 {
		wrapped = errors.WithContext(wrapped, "status_code", statusCode)
	}
	return wrapped
}

// WrapGraphQLError wraps an error returned by the GraphQL endpoint.
// Unresolvable nodes map to not found, everything else to network.
func WrapGraphQLError(err error, message string) error {
	if err == nil {
		return nil
	}

	code := errors.CodeNetwork
	if strings.Contains(err.Error(), graphQLNotFound) {
		code = errors.CodeNotFound
	}
	return errors.Wrap(err, code, message)
}

// IsNotModified reports whether err signals a not-modified response.
func IsNotModified(err error) bool {
	return err != nil && errors.GetCode(err) == ErrCodeNotModified
}

// wrapProviderError wraps an error returned by a Provider, keeping its code.
func wrapProviderError(err error, message string) error {
	if err == nil {
		return nil
	}

	code := errors.GetCode(err)
	if code == errors.CodeUnknown {
		code = errors.CodeInternal
	}
	return errors.Wrap(err, code, message)
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	err = errors.WithContext(err, "reason", reason)
	return err
}
