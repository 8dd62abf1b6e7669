package api

import (
	"net/http"

	"homecoming/alumni-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch returns the profile of the currently logged in user. The
// record is reloaded from the store so the response reflects current
// state rather than whatever the token claims were at login time.
func (a *API) UserFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	tokenStr := security.ReadSessionCookie(c.Request)
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Unauthorized",
			"requestID": requestID,
		})
		return
	}

	claims, err := a.Tokens.Verify(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Unauthorized",
			"requestID": requestID,
		})
		return
	}

	user, err := a.Users.FindByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "User not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}
