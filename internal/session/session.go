package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/gudangku/cli/internal/api"
)

// DefaultEndpoints are the candidate validation endpoints, tried in order.
// The backend has shipped this route under different names across
// versions, so the console probes all of them.
var DefaultEndpoints = []string{"/auth/me", "/auth/verify", "/users/me"}

// timeNow is swapped out in tests.
var timeNow = time.Now

// Session is the bootstrap outcome every protected command gates on.
type Session struct {
	Authenticated bool
	User          *api.User
}

// Bootstrapper validates the stored token once at startup.
//
// The fallback path deliberately trusts the token payload without
// signature verification: when no validation endpoint is reachable, the
// console prefers staying signed in on unverified claims over hard-failing
// on a flaky backend. Claims are only ever used for display and gating
// here; the server re-checks the signature on every real request.
type Bootstrapper struct {
	Client    *api.Client
	Log       *zap.SugaredLogger
	Endpoints []string

	// ClearToken is invoked when the token is conclusively rejected
	// (fallback decode failed or the token is expired).
	ClearToken func()
}

// Run validates the client's token and returns the resulting session.
//
//  1. No token: unauthenticated.
//  2. First candidate endpoint that answers 2xx wins; the profile is
//     resolved from body.user, then body.data, then the body itself.
//  3. All candidates failing: unverified decode of the token payload; a
//     future exp claim yields a synthesized profile.
//  4. Otherwise the token is cleared and the session is unauthenticated.
func (b *Bootstrapper) Run() *Session {
	if b.Client.Token == "" {
		return &Session{}
	}

	endpoints := b.Endpoints
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}

	for _, endpoint := range endpoints {
		data, err := b.Client.Get(endpoint, nil)
		if err != nil {
			// Per-endpoint failures never abort the loop.
			b.Log.Debugw("token validation endpoint failed", "endpoint", endpoint, "error", err)
			continue
		}
		if user := resolveUser(data); user != nil {
			return &Session{Authenticated: true, User: user}
		}
		b.Log.Debugw("token validation response unusable", "endpoint", endpoint)
	}

	if user := decodeFallback(b.Client.Token); user != nil {
		b.Log.Infow("validated session from token claims", "user", user.Username)
		return &Session{Authenticated: true, User: user}
	}

	b.Log.Infow("stored token rejected, clearing")
	if b.ClearToken != nil {
		b.ClearToken()
	}
	return &Session{}
}

// resolveUser tries the tolerant shape-resolution order: body.user,
// body.data, then the body itself. A profile with neither id nor username
// doesn't count.
func resolveUser(data []byte) *api.User {
	var envelope struct {
		User *api.User `json:"user"`
		Data *api.User `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if usable(envelope.User) {
			return envelope.User
		}
		if usable(envelope.Data) {
			return envelope.Data
		}
	}
	var user api.User
	if err := json.Unmarshal(data, &user); err == nil && usable(&user) {
		return &user
	}
	return nil
}

func usable(u *api.User) bool {
	return u != nil && (u.ID != "" || u.Username != "")
}

// decodeFallback extracts claims from the token without verifying the
// signature. Returns nil when the token is malformed or its exp claim is
// absent or in the past.
func decodeFallback(token string) *api.User {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.Time.After(timeNow()) {
		return nil
	}

	user := &api.User{
		ID:       claimString(claims, "id", "sub"),
		Username: claimString(claims, "username", "name"),
		Email:    claimString(claims, "email"),
		Role:     claimString(claims, "role"),
	}
	if user.ID == "" && user.Username == "" {
		return nil
	}
	return user
}

func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
