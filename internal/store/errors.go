package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against them.
var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrArtworkNotFound is returned when an artwork id matches no record.
	ErrArtworkNotFound = errors.New("artwork not found")

	// ErrExhibitionNotFound is returned when an exhibition id matches no
	// record.
	ErrExhibitionNotFound = errors.New("exhibition not found")

	// ErrMessageNotFound is returned when a contact message id matches no
	// record.
	ErrMessageNotFound = errors.New("message not found")
)
