// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"homecoming/alumni-api/db"
	"homecoming/alumni-api/middleware"
	"homecoming/alumni-api/pkg/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

type API struct {
	DB     *gorm.DB
	Users  *db.UserStore
	Router *gin.Engine
	Hasher *security.PasswordHasher
	Tokens *security.TokenIssuer
}

func NewRouter() (*API, error) {
	a := &API{
		Hasher: security.NewHasher(),
		Tokens: security.NewTokenIssuer(viper.GetString("jwt.secret")),
	}

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = conn
	a.Users = db.NewUserStore(conn)

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("cors.origins"),
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
		middleware.NewRouteGuard(
			a.Tokens,
			viper.GetStringSlice("auth.protected_paths"),
			viper.GetString("auth.login_path"),
		),
	)

	router.HandleMethodNotAllowed = true

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// POST /api/register 		-> Registers a new alumni account
		main.POST("/register", middleware.BodySizeLimiter(1<<20), a.UserRegister)

		// POST /api/login 		-> Logs in a user and sets the session cookie
		main.POST("/login", middleware.BodySizeLimiter(1<<20), a.UserLogin)

		// POST /api/logout 		-> Clears the session cookie
		main.POST("/logout", a.UserLogout)

		// GET /api/user 		-> Returns the logged in user's profile
		main.GET("/user", a.UserFetch)
	}

	return a, nil
}
