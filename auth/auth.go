// Package auth owns accounts and sessions: email/password sign-up and
// sign-in, Google federated sign-in, password reset, and role resolution.
// Roles live in their own table, so a fresh sign-in may report a session
// whose role is still unresolved; callers wait for both before routing.
//
// There is no sign-out endpoint: sessions are stateless JWTs, clients discard
// the token and drop any cached role with it.
package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/models"
)

// Failure taxonomy surfaced to callers. Anything else passes through as a
// generic failure; nothing is retried.
var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrAlreadyRegistered  = errors.New("user already registered")
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUpUser creates an unconfirmed email/password account.
func SignUpUser(db *gorm.DB, email, password, fullName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         fullName,
		Provider:     "email",
		PasswordHash: string(hash),
		ConfirmToken: uuid.NewString(),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	// A real mailer would deliver this link; the token is logged so local
	// setups can confirm without SMTP.
	log.Printf("📧 Confirmation token for %s: %s", user.Email, user.ConfirmToken)
	return &user, nil
}

// SignInUser checks credentials and resolves the user's role. The role is ""
// when no user_roles row exists yet.
func SignInUser(db *gorm.DB, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if user.PasswordHash == "" {
		// Federated account without a password.
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.EmailConfirmed {
		return nil, "", ErrEmailNotConfirmed
	}

	role := LookupRole(db, user.ID)
	return &user, role, nil
}

// LookupRole fetches the role record for a user; "" means plain customer or
// still unresolved.
func LookupRole(db *gorm.DB, userID string) string {
	var role models.UserRole
	if err := db.Where("user_id = ?", userID).First(&role).Error; err != nil {
		return ""
	}
	return role.Role
}

// redirectFor picks the landing route once both user and role are known.
func redirectFor(role string) string {
	if role == "admin" {
		return "/admin"
	}
	return "/dashboard"
}

// sessionResponse is the payload for sign-in and session lookups. When the
// role has not resolved yet, pending_redirect tells the client to hold
// navigation until a session refetch returns the role.
func sessionResponse(token string, user *models.User, role string) gin.H {
	return gin.H{
		"token":            token,
		"user":             user,
		"role":             role,
		"pending_redirect": role == "",
		"redirect_to":      redirectFor(role),
	}
}

// POST /auth/signup
func SignUpHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := SignUpUser(db, req.Email, req.Password, req.FullName)
		if err != nil {
			if errors.Is(err, ErrAlreadyRegistered) {
				c.JSON(http.StatusConflict, gin.H{"error": ErrAlreadyRegistered.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Account created successfully! You can now sign in.",
			"user":    user,
		})
	}
}

// POST /auth/signin
func SignInHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, role, err := SignInUser(db, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
			case errors.Is(err, ErrEmailNotConfirmed):
				c.JSON(http.StatusForbidden, gin.H{"error": ErrEmailNotConfirmed.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign in failed"})
			}
			return
		}

		token, err := IssueJWT(Claims{
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

		c.JSON(http.StatusOK, sessionResponse(token, user, role))
	}
}

// GET /auth/confirm/:token
func ConfirmEmailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		var user models.User
		if err := db.Where("confirm_token = ?", token).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid confirmation link"})
			return
		}

		updates := map[string]interface{}{"email_confirmed": true, "confirm_token": ""}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm email"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Email confirmed. You can now sign in."})
	}
}

// GET /auth/session — re-resolves the role for a signed-in user so clients
// holding a pending redirect can finish routing.
func SessionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusOK, gin.H{"user": nil, "role": "", "loading": false})
			return
		}

		claims, err := ParseJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := db.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session user not found"})
			return
		}

		role := LookupRole(db, user.ID)
		c.JSON(http.StatusOK, gin.H{
			"user":             &user,
			"role":             role,
			"loading":          false,
			"pending_redirect": role == "",
			"redirect_to":      redirectFor(role),
		})
	}
}

// touchUser refreshes mutable profile fields from a federated provider.
func touchUser(db *gorm.DB, user *models.User, name, picture string) {
	if name == "" && picture == "" {
		return
	}
	db.Model(user).Updates(models.User{Name: name, Picture: picture})
}
