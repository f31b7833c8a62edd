package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/auth"
	"github.com/aayish123/Final-aayishFoods/authmodal"
	"github.com/aayish123/Final-aayishFoods/guard"
)

// sessionFromRequest resolves the request's auth state. The role in the
// token can lag behind a fresh role grant, so it is re-read from the store.
func sessionFromRequest(c *gin.Context, db *gorm.DB) guard.Session {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return guard.Session{}
	}
	claims, err := auth.ParseJWT(tokenString)
	if err != nil {
		return guard.Session{}
	}
	return guard.Session{
		UserID: claims.UserID,
		Role:   auth.LookupRole(db, claims.UserID),
	}
}

// RequireAuth gates customer routes: anonymous visitors get a 401 telling the
// client to open the auth modal and stay on the current URL.
func RequireAuth(db *gorm.DB, modal *authmodal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessionFromRequest(c, db)
		switch guard.RequireAuth(s, modal) {
		case guard.Authorized:
			c.Set(CtxUserID, s.UserID)
			c.Set(CtxRole, s.Role)
			c.Next()
		default:
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":  "Sign in required",
				"action": "open_auth_modal",
			})
			c.Abort()
		}
	}
}

// RequireAdmin gates the admin console: anonymous visitors open the modal,
// signed-in non-admins are sent home.
func RequireAdmin(db *gorm.DB, modal *authmodal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessionFromRequest(c, db)
		switch guard.RequireAdmin(s, modal) {
		case guard.Authorized:
			c.Set(CtxUserID, s.UserID)
			c.Set(CtxRole, s.Role)
			c.Next()
		case guard.RequiresRole:
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
		default:
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":  "Sign in required",
				"action": "open_auth_modal",
			})
			c.Abort()
		}
	}
}
