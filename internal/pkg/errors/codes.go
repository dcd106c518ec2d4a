package errors

import "net/http"

const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

var (
	// ErrInvalidInput is the single generic warning shown for a bad arrival
	// time, empty place lists or a missing credential.
	ErrInvalidInput = New(
		CodeInvalidInput,
		"Please make sure the start and destination places are valid and the arrival time uses the DD.MM.YYYY-HH:MM format.",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
