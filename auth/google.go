package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"sync"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/models"
)

var (
	firebaseOnce sync.Once
	firebaseAuth *fbauth.Client
	firebaseErr  error
	projectID    string
)

// initFirebase wires the ID-token verifier from env credentials. Lazy so the
// rest of the API works without Google sign-in configured.
func initFirebase() {
	firebaseOnce.Do(func() {
		credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		projectID = os.Getenv("FIREBASE_PROJECT_ID")
		if credsJSON == "" || projectID == "" {
			firebaseErr = errors.New("firebase credentials not configured")
			return
		}

		ctx := context.Background()
		opt := option.WithCredentialsJSON([]byte(credsJSON))
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
		if err != nil {
			firebaseErr = err
			return
		}
		firebaseAuth, firebaseErr = app.Auth(ctx)
	})
}

// POST /auth/google — federated sign-in. Verifies the Google ID token,
// creates or refreshes the account, resolves the role, and issues a session.
func GoogleSignInHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"id_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		initFirebase()
		if firebaseErr != nil {
			log.Printf("❌ Google sign-in unavailable: %v", firebaseErr)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not available"})
			return
		}

		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}
		if token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, ok := token.Claims["email"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)

		var user models.User
		err = db.Where("id = ?", token.UID).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				ID:             token.UID,
				Email:          email,
				Name:           name,
				Picture:        picture,
				Provider:       "google",
				EmailConfirmed: true, // Google verified the address
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			touchUser(db, &user, name, picture)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		role := LookupRole(db, user.ID)
		jwtToken, err := IssueJWT(Claims{
			UserID:  user.ID,
			Email:   user.Email,
			Role:    role,
			Name:    user.Name,
			Picture: user.Picture,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, sessionResponse(jwtToken, &user, role))
	}
}
