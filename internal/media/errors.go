package media

import "errors"

// Sentinel errors for media resolution. None of them abort an export; they
// select the fallback for a single reference.
var (
	ErrUnexpectedStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge           = errors.New("media exceeds size limit")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrNoSessionStore     = errors.New("no session store configured")
	ErrSessionUnavailable = errors.New("session handle unavailable")
	ErrInvalidHandle      = errors.New("invalid session handle")
	ErrNoBaseDir          = errors.New("no base directory configured")
)
