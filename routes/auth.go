package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aayish123/Final-aayishFoods/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignUpHandler(d.DB))
		authGroup.POST("/signin", auth.SignInHandler(d.DB))
		authGroup.POST("/google", auth.GoogleSignInHandler(d.DB))
		authGroup.GET("/confirm/:token", auth.ConfirmEmailHandler(d.DB))
		authGroup.POST("/reset-request", auth.RequestPasswordResetHandler(d.DB))
		authGroup.POST("/reset", auth.ResetPasswordHandler(d.DB))
		authGroup.GET("/session", auth.SessionHandler(d.DB))
	}
}
