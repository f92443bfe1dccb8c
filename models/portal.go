package models

import "time"

// LinkUsability is the outcome of checking a link for anonymous use.
// Label and PasswordRequired are only filled when Status is [LinkActive].
type LinkUsability struct {
	Status           LinkStatus `json:"status"`
	Label            string     `json:"label,omitempty"`
	PasswordRequired bool       `json:"password_required,omitempty"`
}

// SessionToken is a signed, self-contained credential proving the holder
// supplied the correct password for LinkID. It is never persisted.
type SessionToken struct {
	LinkID    string    `json:"-"`
	Value     string    `json:"session_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordVerification is the result of a password submission. Exactly one
// of the three outcomes applies: a session was issued, the password was wrong
// and RemainingAttempts are left, or the link is (now) locked.
type PasswordVerification struct {
	Session           *SessionToken `json:"session,omitempty"`
	RemainingAttempts int           `json:"remaining_attempts"`
	Locked            bool          `json:"locked"`
}

// Granted reports whether the verification produced a session token.
func (p PasswordVerification) Granted() bool {
	return p.Session != nil
}

// VerifyPasswordRequest is the body of a password submission.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// SetActiveRequest is the body of the owner's activation toggle.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// RotatedPassword is returned to the owner after a password rotation.
type RotatedPassword struct {
	LinkID   string `json:"link_id"`
	Password string `json:"password"`
}

// PortalFile describes a file stored under a portal link.
type PortalFile struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
