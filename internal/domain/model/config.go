package model

// Config is the persisted connection profile. The password is deliberately
// not part of it; it is supplied per session open, usually from the
// environment.
type Config struct {
	RootURL  string `json:"root_url"`
	Username string `json:"username"`
}
