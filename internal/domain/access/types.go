package access

import "errors"

// ErrForbidden is returned when the policy denies an action for the
// acting principal. Handlers should translate this into an HTTP 403.
var ErrForbidden = errors.New("forbidden")

// Principal is the acting identity extracted from a verified token.
// The zero value is the anonymous principal. Claims are trusted as-is
// after signature and expiry checks; the role is not re-read from the
// store per request, so a demotion takes effect at token expiry.
type Principal struct {
	ID   uint
	Role string
}

func Anonymous() Principal { return Principal{} }

func (p Principal) IsAnonymous() bool { return p.ID == 0 }

func (p Principal) IsAdmin() bool { return p.Role == "admin" }
