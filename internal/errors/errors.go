package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services wrap these with fmt.Errorf("%w") and the API layer uses errors.Is()
// to map them to HTTP responses, so business code never deals in status codes.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation cannot run in the current state
	// of the session, e.g. submitting a question with no active conversation.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrDocumentMissing signifies that a question was asked before any
	// document was loaded. The session controller recovers from it and shows
	// an advisory instead of an answer.
	ErrDocumentMissing = errors.New("no document loaded")

	// ErrExtraction signifies that uploaded bytes could not be parsed as a PDF.
	// This is typically mapped to a 422 Unprocessable Entity HTTP status.
	ErrExtraction = errors.New("document extraction failed")

	// ErrRemoteCall signifies that the completion API could not be reached,
	// answered with a non-2xx status, or returned an unusable body.
	// This is typically mapped to a 502 Bad Gateway HTTP status.
	ErrRemoteCall = errors.New("completion API call failed")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
