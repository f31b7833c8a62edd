// Package guard holds the navigation gates for protected views. Guards are
// pure predicates over a session snapshot; the only side effect is opening
// the auth modal for anonymous visitors.
package guard

import "github.com/aayish123/Final-aayishFoods/authmodal"

// Session is the resolved (or still resolving) auth state a guard consults.
type Session struct {
	UserID  string
	Role    string
	Loading bool // true until the initial session check resolves
}

// Decision is a tagged result: the caller decides presentation.
type Decision int

const (
	// Suspend: session still resolving, render nothing either way.
	Suspend Decision = iota
	// Authorized: render the protected view.
	Authorized
	// RequiresAuth: no user; the auth modal was opened, stay on the
	// current URL and render nothing.
	RequiresAuth
	// RequiresRole: signed in but lacking the required role; redirect home.
	RequiresRole
)

const RoleAdmin = "admin"

// RequireAuth gates views that need any signed-in user.
func RequireAuth(s Session, modal *authmodal.Controller) Decision {
	if s.Loading {
		return Suspend
	}
	if s.UserID == "" {
		modal.Open()
		return RequiresAuth
	}
	return Authorized
}

// RequireAdmin gates the admin console. A signed-in non-admin is redirected
// home without the modal opening.
func RequireAdmin(s Session, modal *authmodal.Controller) Decision {
	if s.Loading {
		return Suspend
	}
	if s.UserID == "" {
		modal.Open()
		return RequiresAuth
	}
	if s.Role != RoleAdmin {
		return RequiresRole
	}
	return Authorized
}
