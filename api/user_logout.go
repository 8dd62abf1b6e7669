package api

import (
	"net/http"

	"homecoming/alumni-api/pkg/security"

	"github.com/gin-gonic/gin"
)

// UserLogout drops the session cookie. The token itself stays valid
// until it expires since there is no server-side revocation.
func (a *API) UserLogout(c *gin.Context) {
	security.ClearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
