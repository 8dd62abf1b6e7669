package security

import (
	"net/http"

	"homecoming/alumni-api/config"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the single cookie key the whole portal uses for
// carrying the session token.
const SessionCookie = "token"

// SetSessionCookie attaches the session token to the response. The
// cookie lives as long as the token it carries: 24 hours, or 30 days
// when the user asked to be remembered.
func SetSessionCookie(c *gin.Context, token string, remember bool) {
	maxAge := int(SessionTTL.Seconds())
	if remember {
		maxAge = int(SessionTTLRemember.Seconds())
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", config.IsProduction(), true)
}

// ClearSessionCookie expires the session cookie client-side. Tokens are
// not revocable server-side, so this is all logout does.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", config.IsProduction(), true)
}

// ReadSessionCookie returns the session token carried by the request,
// or "" if the cookie is absent.
func ReadSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}

	return cookie.Value
}
