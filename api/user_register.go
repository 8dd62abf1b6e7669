package api

import (
	"net/http"
	"strings"

	"homecoming/alumni-api/model"
	"homecoming/alumni-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type registerBody struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	GraduationYear string `json:"graduationYear"`
	Degree         string `json:"degree"`
	StudentID      string `json:"studentId"`
	AgreeTerms     bool   `json:"agreeTerms"`
}

func (a *API) UserRegister(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.FirstName == "" || data.LastName == "" || data.Email == "" || data.Password == "" ||
		data.GraduationYear == "" || data.Degree == "" || !data.AgreeTerms {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Missing required fields",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		zap.L().Debug("Invalid email", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		zap.L().Debug("Invalid password", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	email := strings.ToLower(data.Email)

	// Check-then-insert, not atomic. Two racing registrations may both
	// pass this check; the unique index on email catches the loser.
	existing, err := a.Users.FindByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if user is registered", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "User with this email already exists",
			"requestID": requestID,
		})
		return
	}

	hash, err := a.Hasher.Hash(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	userID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate user ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user := model.User{
		ID:                 userID,
		Email:              email,
		StudentID:          data.StudentID,
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		Password:           hash,
		GraduationYear:     data.GraduationYear,
		Degree:             data.Degree,
		AgreeTerms:         data.AgreeTerms,
		VerificationStatus: model.VerificationPending,
	}

	if err := a.Users.Insert(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Registration never logs the user in, they get a session by
	// logging in explicitly. The password hash stays out of the
	// response through the model's json tags
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"id":      user.ID,
	})
}
