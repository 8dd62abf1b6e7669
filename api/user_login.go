package api

import (
	"net/http"
	"strings"

	"homecoming/alumni-api/model"
	"homecoming/alumni-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginBody struct {
	LoginType string `json:"loginType"`
	Email     string `json:"email"`
	AlumniID  string `json:"alumniId"`
	Password  string `json:"password"`
	Remember  bool   `json:"remember"`
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if (data.Email == "" && data.AlumniID == "") || data.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Missing required fields",
			"requestID": requestID,
		})
		return
	}

	var (
		user *model.User
		err  error
	)

	// The portal's login form offers two identifiers. The record field
	// behind an alumni ID is the student ID entered at registration
	if data.LoginType == "email" {
		user, err = a.Users.FindByEmail(strings.ToLower(data.Email))
	} else {
		user, err = a.Users.FindByStudentID(data.AlumniID)
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if user == nil {
		msg := "No account found with this Alumni ID"
		if data.LoginType == "email" {
			msg = "No account found with this email address"
		}

		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     msg,
			"requestID": requestID,
		})
		return
	}

	if !a.Hasher.Verify(data.Password, user.Password) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid password",
			"requestID": requestID,
		})
		return
	}

	ttl := security.SessionTTL
	if data.Remember {
		ttl = security.SessionTTLRemember
	}

	token, err := a.Tokens.Issue(security.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, ttl)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to sign session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	security.SetSessionCookie(c, token, data.Remember)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}
