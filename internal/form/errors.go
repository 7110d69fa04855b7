package form

import "errors"

// Sentinel errors returned by the body decoders. Callers match against them
// with [errors.Is]; all of them translate to a 400 at the HTTP layer.
var (
	// ErrInvalidJSON is returned when a JSON body is not a syntactically
	// valid single JSON object.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrMissingBoundary is returned when a multipart content type carries
	// no boundary parameter.
	ErrMissingBoundary = errors.New("missing multipart boundary")

	// ErrNoFileUploaded is returned when a multipart body contains no file
	// part at all. Multipart requests exist solely to carry an upload, so
	// the absence of a file is a hard failure, not a partial success.
	ErrNoFileUploaded = errors.New("no file uploaded")
)
