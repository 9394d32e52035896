package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"publish-blog/app/server/auth"
	"publish-blog/app/server/constants"
	"publish-blog/app/server/jwt"
)

// establishSession signs a token for the identity and binds it to the session
// cookie. It is consulted on every request until logout or expiry.
func (a *App) establishSession(c echo.Context, identity *auth.Identity) error {
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:      identity.ID,
		Expires: expires.Unix(),
	})
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
	})

	return nil
}

// clearSession expires the cookie and denylists the token until its natural
// expiry, so a replayed cookie stays dead.
func (a *App) clearSession(c echo.Context) {
	rctx := c.Request().Context()

	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		if user, err := a.jwt.ParseUser(cookie.Value); err == nil && a.rdb != nil {
			ttl := time.Until(time.Unix(user.Expires, 0))
			if ttl > 0 {
				key := fmt.Sprintf(constants.CacheKeySessionRevoked, cookie.Value)
				if err := a.rdb.Set(rctx, key, 1, ttl).Err(); err != nil {
					a.l.Error("failed to denylist session", zap.Error(err))
				}
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// currentIdentity resolves the session cookie to an identity, nil for
// anonymous. Invalid, expired, revoked, or orphaned tokens all resolve to
// anonymous rather than failing the request.
func (a *App) currentIdentity(c echo.Context) *auth.Identity {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	user, err := a.jwt.ParseUser(cookie.Value)
	if err != nil {
		return nil
	}

	rctx := c.Request().Context()

	if a.rdb != nil {
		key := fmt.Sprintf(constants.CacheKeySessionRevoked, cookie.Value)
		if _, err := a.rdb.Get(rctx, key).Result(); err == nil {
			return nil // revoked
		} else if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query session revocation list", zap.Error(err))
		}
	}

	identity, err := a.auth.Lookup(rctx, user.ID)
	if err != nil {
		a.l.Error("failed to look up session user", zap.Uint("id", user.ID), zap.Error(err))
		return nil
	}

	return identity
}

// requireAdmin is the guard run at the top of each gated handler. Anonymous
// and non-admin callers both get 403, without revealing whether the resource
// exists.
func (a *App) requireAdmin(c echo.Context) (*auth.Identity, error, int) {
	identity := a.currentIdentity(c)
	if !a.auth.IsAdmin(identity) {
		return nil, fmt.Errorf("requires admin role"), http.StatusForbidden
	}

	return identity, nil, http.StatusOK
}

// setFlash stores a one-shot message surfaced by the next rendered page.
func (a *App) setFlash(c echo.Context, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     constants.FlashCookieName,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
	})
}

// takeFlash reads and clears the pending flash message.
func (a *App) takeFlash(c echo.Context) string {
	cookie, err := c.Cookie(constants.FlashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}

	return msg
}
