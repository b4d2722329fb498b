// Package media turns content-model media references into embeddable sources.
//
// A reference is one of four kinds. Inline payloads pass through untouched.
// Remote locators are fetched and inlined, and fall back to the original
// locator when that fails. Session handles are only meaningful inside the
// authoring session: they are opened through a SessionStore, and when that
// fails the result is empty. File paths are read relative to a base
// directory and fall back to the original path.
package media

import "strings"

// Kind classifies a media source string.
type Kind int

// Source kinds.
const (
	KindNone Kind = iota
	KindInline
	KindRemote
	KindSession
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindRemote:
		return "remote"
	case KindSession:
		return "session"
	case KindFile:
		return "file"
	default:
		return "none"
	}
}

// Session handle prefixes.
const (
	blobPrefix    = "blob:"
	sessionPrefix = "session:"
)

// Classify reports the kind of src. Blank input is KindNone.
func Classify(src string) Kind {
	s := strings.TrimSpace(src)
	lower := strings.ToLower(s)
	switch {
	case s == "":
		return KindNone
	case strings.HasPrefix(lower, "data:"):
		return KindInline
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return KindRemote
	case strings.HasPrefix(lower, blobPrefix), strings.HasPrefix(lower, sessionPrefix):
		return KindSession
	default:
		return KindFile
	}
}

// SessionHandle is a reference valid only inside the authoring session.
// It is consumed once by a SessionStore and never retained afterwards.
type SessionHandle struct {
	raw string
	id  string
}

// ParseSessionHandle extracts a handle from src. The id of "session:abc" is
// "abc"; the id of "blob:https://host/uuid" is "uuid".
func ParseSessionHandle(src string) (SessionHandle, bool) {
	s := strings.TrimSpace(src)
	lower := strings.ToLower(s)

	var rest string
	switch {
	case strings.HasPrefix(lower, sessionPrefix):
		rest = s[len(sessionPrefix):]
	case strings.HasPrefix(lower, blobPrefix):
		rest = s[len(blobPrefix):]
		if i := strings.LastIndex(rest, "/"); i >= 0 {
			rest = rest[i+1:]
		}
	default:
		return SessionHandle{}, false
	}

	if rest == "" {
		return SessionHandle{}, false
	}
	return SessionHandle{raw: s, id: rest}, true
}

// ID returns the store lookup key.
func (h SessionHandle) ID() string { return h.id }

// String returns the handle as written in the content model.
func (h SessionHandle) String() string { return h.raw }
