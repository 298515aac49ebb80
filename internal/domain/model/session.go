package model

import "strings"

// NoSession is the SID the controller returns while the caller is not
// authenticated.
const NoSession = "0000000000000000"

type SessionState int

const (
	SessionClosed SessionState = iota
	SessionOpen
)

// Session is the authentication context of one client instance. It is
// treated as a value: the client replaces it wholesale on open and close
// instead of mutating individual fields.
type Session struct {
	State      SessionState
	SID        string
	LoginURL   string
	CommandURL string
}

// NewSession derives the two controller endpoints from the configured root
// address. The session starts closed, without a SID.
func NewSession(rootURL string) Session {
	root := strings.TrimSuffix(rootURL, "/")
	return Session{
		LoginURL:   root + "/login_sid.lua",
		CommandURL: root + "/webservices/homeautoswitch.lua",
	}
}
