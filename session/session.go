package session

// Package session holds the signed-in user and token as explicit state with
// load, set and clear operations, instead of an ambient singleton. The fx
// graph injects one *Session per invocation; commands that mutate it go
// through the Store so the change survives to the next invocation.

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/amparo-care/amparo/users"
)

type Session struct {
	User  users.User `json:"usuario"`
	Token string     `json:"token"`
}

// SessionToken implements client.TokenSource. Nil sessions read as signed out.
func (s *Session) SessionToken() string {
	if s == nil {
		return ""
	}
	return s.Token
}

func (s *Session) SignedIn() bool {
	return s != nil && s.Token != ""
}

// Expired inspects the token's exp claim without verifying the signature;
// verification is the backend's job, this only decides whether to ask the
// user to sign in again before a request is bound to fail with 401.
func (s *Session) Expired(now time.Time) bool {
	if !s.SignedIn() {
		return false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}

// Current loads the persisted session, or an empty signed-out one when there
// is nothing usable on disk.
func Current(store Store, logger *zap.SugaredLogger) *Session {
	loaded, err := store.Load()
	if err != nil {
		logger.Warnw("unable to load session, continuing signed out", "error", err)
		return &Session{}
	}
	if loaded == nil {
		return &Session{}
	}
	if loaded.Expired(time.Now()) {
		logger.Debugw("persisted session is expired", "userId", loaded.User.ID)
	}
	return loaded
}
