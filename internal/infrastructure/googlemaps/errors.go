package googlemaps

import "errors"

// Failure causes of a Google Maps call. Callers outside this package only
// care that a call failed; the causes exist for logs, metrics and tests.
var (
	ErrEmptyPlace       = errors.New("place is empty")
	ErrTransport        = errors.New("request failed")
	ErrUpstreamStatus   = errors.New("unexpected status code")
	ErrNoResults        = errors.New("no results")
	ErrMalformedPayload = errors.New("malformed payload")
)

// FailureKind maps err to a short label used for the outcome metric.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrEmptyPlace):
		return "empty_place"
	case errors.Is(err, ErrTransport):
		return "transport_error"
	case errors.Is(err, ErrUpstreamStatus):
		return "bad_status"
	case errors.Is(err, ErrNoResults):
		return "no_results"
	case errors.Is(err, ErrMalformedPayload):
		return "malformed"
	default:
		return "unknown"
	}
}
