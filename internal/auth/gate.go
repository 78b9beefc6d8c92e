// Package auth establishes an authenticated session with the tenant before
// a command runs, subject to the command's deployment-type restriction.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/marmos91/idmctl/internal/logger"
	"github.com/marmos91/idmctl/internal/session"
	"github.com/marmos91/idmctl/pkg/apiclient"
)

// DefaultSessionTTL is assumed for tokens that carry no expiry.
const DefaultSessionTTL = 2 * time.Hour

var (
	// ErrDeploymentTypeDenied is returned when the command is restricted to
	// deployment types the session does not have.
	ErrDeploymentTypeDenied = errors.New("command not available for this deployment type")
	// ErrAuthenticationFailed wraps any failure to obtain a session token.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Authenticator performs the credential exchange.
type Authenticator interface {
	Authenticate(ctx context.Context, realm, username, password string) (*apiclient.TokenResponse, error)
}

// TokenCache persists session tokens between invocations.
type TokenCache interface {
	Token(host, username string) (string, bool)
	UpdateToken(host, username, token string, expiresAt time.Time) error
}

// Tokens is the proof of authentication handed to operations.
type Tokens struct {
	SessionToken string
	ExpiresAt    time.Time
	Cached       bool
}

// Gate authenticates sessions.
type Gate struct {
	authn Authenticator
	cache TokenCache
	ttl   time.Duration
	now   func() time.Time
}

// Option configures a Gate.
type Option func(*Gate)

// WithCache enables token reuse through c.
func WithCache(c TokenCache) Option {
	return func(g *Gate) { g.cache = c }
}

// WithSessionTTL sets the lifetime assumed for tokens without an exp claim.
func WithSessionTTL(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.ttl = d
		}
	}
}

// NewGate creates a Gate using authn for the credential exchange.
func NewGate(authn Authenticator, opts ...Option) *Gate {
	g := &Gate{authn: authn, ttl: DefaultSessionTTL, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Permits reports whether the session's resolved deployment type is in
// allowed. An empty allowed list permits every session; an unspecified
// type never satisfies a restriction.
func Permits(sess *session.Context, allowed ...session.DeploymentType) bool {
	if len(allowed) == 0 {
		return true
	}
	return mapset.NewSet(allowed...).Contains(sess.ResolvedDeploymentType())
}

// AcquireTokens checks the deployment-type restriction, then reuses a
// cached token or authenticates exactly once. Denials never touch the
// network. Nothing is retried.
func (g *Gate) AcquireTokens(ctx context.Context, sess *session.Context, allowed ...session.DeploymentType) (*Tokens, error) {
	if !Permits(sess, allowed...) {
		names := make([]string, len(allowed))
		for i, t := range allowed {
			names[i] = t.String()
		}
		return nil, fmt.Errorf("%w: requires %s, session is %s (set the deployment type with --type %s)",
			ErrDeploymentTypeDenied, strings.Join(names, " or "), sess.ResolvedDeploymentType(), strings.Join(names, "|"))
	}

	if g.cache != nil {
		if token, ok := g.cache.Token(sess.Host(), sess.Username()); ok {
			logger.DebugCtx(ctx, "reusing cached session token", logger.Host(sess.Host()), logger.Cached(true))
			return &Tokens{SessionToken: token, ExpiresAt: tokenExpiry(token, g.now(), g.ttl), Cached: true}, nil
		}
	}

	if sess.Username() == "" || sess.Password() == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrAuthenticationFailed)
	}

	resp, err := g.authn.Authenticate(ctx, session.RootRealm, sess.Username(), sess.Password())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	tokens := &Tokens{SessionToken: resp.TokenID, ExpiresAt: tokenExpiry(resp.TokenID, g.now(), g.ttl)}
	logger.DebugCtx(ctx, "authenticated", logger.Host(sess.Host()), logger.Username(sess.Username()), logger.Cached(false))

	if g.cache != nil {
		if err := g.cache.UpdateToken(sess.Host(), sess.Username(), tokens.SessionToken, tokens.ExpiresAt); err != nil {
			logger.WarnCtx(ctx, "could not cache session token", logger.Err(err))
		}
	}
	return tokens, nil
}

// tokenExpiry returns the exp claim when token is a JWT, else now+ttl.
// The signature is not verified; the tenant does that on every call.
func tokenExpiry(token string, now time.Time, ttl time.Duration) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return now.Add(ttl)
}
