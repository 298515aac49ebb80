package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/text/encoding/unicode"

	"fritz-home-client/internal/domain/model"
)

const (
	defaultUsername = "admin"
	defaultRootURL  = "http://fritz.box"
)

// OpenSession establishes an authenticated session. The login endpoint is
// asked for a SID first; if it answers with the sentinel, the challenge it
// returned is answered with the hashed password. A session that was already
// open is replaced without logging out; the controller expires the old SID
// on its own.
func (c *HomeClient) OpenSession(ctx context.Context, password, username, rootURL string) error {
	if username == "" {
		username = defaultUsername
	}
	if rootURL == "" {
		rootURL = defaultRootURL
	}

	c.mu.RLock()
	wasOpen := c.session.State == model.SessionOpen
	c.mu.RUnlock()
	if wasOpen {
		c.log.Warn().Msg("session was already opened, but new session will be created anyway")
	}

	session := model.NewSession(rootURL)
	info, err := c.fetchSessionInfo(ctx, session.LoginURL, nil)
	if err != nil {
		return err
	}

	sid := info.SID
	if sid == model.NoSession {
		sid, err = c.answerChallenge(ctx, session.LoginURL, info.Challenge, password, username)
		if err != nil {
			return err
		}
	}
	if sid == model.NoSession {
		return model.AuthError{}
	}

	session.SID = sid
	session.State = model.SessionOpen

	c.mu.Lock()
	c.session = session
	c.devices = nil
	c.mu.Unlock()

	return c.RefreshDevices(ctx)
}

// CloseSession discards the session and the device snapshot. No request is
// sent to the controller.
func (c *HomeClient) CloseSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.State != model.SessionOpen {
		c.log.Warn().Msg("there was no open session to close")
	}
	c.session = model.Session{}
	c.devices = nil
}

// SessionID returns the current SID, or the empty string while closed.
func (c *HomeClient) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.SID
}

func (c *HomeClient) answerChallenge(ctx context.Context, loginURL, challenge, password, username string) (string, error) {
	response, err := challengeResponse(challenge, password)
	if err != nil {
		return "", err
	}
	info, err := c.fetchSessionInfo(ctx, loginURL, url.Values{
		"username": {username},
		"response": {response},
	})
	if err != nil {
		return "", err
	}
	return info.SID, nil
}

// challengeResponse computes the string proving knowledge of the password:
// the challenge, a dash, and the hex MD5 of "<challenge>-<password>" encoded
// as UTF-16LE. The encoding is a controller quirk inherited from its web UI.
func challengeResponse(challenge, password string) (string, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	encoded, err := enc.Bytes([]byte(challenge + "-" + password))
	if err != nil {
		return "", fmt.Errorf("encoding challenge response: %w", err)
	}
	return fmt.Sprintf("%s-%x", challenge, md5.Sum(encoded)), nil
}

func (c *HomeClient) fetchSessionInfo(ctx context.Context, loginURL string, query url.Values) (*model.SessionInfo, error) {
	status, body, err := c.transport.Get(ctx, loginURL, query)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("login endpoint returned status %d", status)
	}
	return model.ParseSessionInfo(body)
}
