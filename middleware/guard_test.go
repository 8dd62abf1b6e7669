package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"homecoming/alumni-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(tokens *security.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(NewRouteGuard(tokens, []string{"/dashboard", "/profile"}, "/login"))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/dashboard", ok)
	r.GET("/dashboard/settings", ok)
	r.GET("/about", ok)

	return r
}

func requestWithCookie(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: security.SessionCookie, Value: token})
	}
	return req
}

func assertLoginRedirect(t *testing.T, w *httptest.ResponseRecorder, from string) {
	t.Helper()

	require.Equal(t, http.StatusFound, w.Code)

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/login", loc.Path)
	assert.Equal(t, from, loc.Query().Get("from"))
}

func TestGuardUnprotectedPathPasses(t *testing.T) {
	r := newGuardedRouter(security.NewTokenIssuer("guard-secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithCookie("/about", ""))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardNoCookieRedirects(t *testing.T) {
	r := newGuardedRouter(security.NewTokenIssuer("guard-secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithCookie("/dashboard", ""))

	assertLoginRedirect(t, w, "/dashboard")
}

func TestGuardSubPathRedirectKeepsFrom(t *testing.T) {
	r := newGuardedRouter(security.NewTokenIssuer("guard-secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithCookie("/dashboard/settings", ""))

	assertLoginRedirect(t, w, "/dashboard/settings")
}

func TestGuardValidTokenPasses(t *testing.T) {
	tokens := security.NewTokenIssuer("guard-secret")
	r := newGuardedRouter(tokens)

	token, err := tokens.Issue(security.Claims{UserID: "usr123"}, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithCookie("/dashboard", token))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardExpiredTokenRedirects(t *testing.T) {
	tokens := security.NewTokenIssuer("guard-secret")
	r := newGuardedRouter(tokens)

	token, err := tokens.Issue(security.Claims{UserID: "usr123"}, -time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithCookie("/dashboard", token))

	assertLoginRedirect(t, w, "/dashboard")
}

func TestGuardTamperedTokenRedirects(t *testing.T) {
	tokens := security.NewTokenIssuer("guard-secret")
	r := newGuardedRouter(tokens)

	token, err := tokens.Issue(security.Claims{UserID: "usr123"}, time.Hour)
	require.NoError(t, err)

	// Chop off part of the signature, the redirect must be identical
	// to the no-cookie and expired cases
	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithCookie("/dashboard", token[:len(token)-2]))

	assertLoginRedirect(t, w, "/dashboard")
}

func TestGuardPrefixDoesNotMatchSiblings(t *testing.T) {
	r := newGuardedRouter(security.NewTokenIssuer("guard-secret"))
	r.GET("/dashboardish", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithCookie("/dashboardish", ""))

	assert.Equal(t, http.StatusOK, w.Code)
}
