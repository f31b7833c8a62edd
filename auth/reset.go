package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/models"
)

const resetTokenTTL = time.Hour

type resetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetSubmit struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// POST /auth/reset-request
// Always answers 200 so the endpoint cannot be used to probe for accounts.
func RequestPasswordResetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Accounts are stored lowercased; match whatever casing the user typed.
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err == nil {
			reset := models.PasswordReset{
				Token:     uuid.NewString(),
				UserID:    user.ID,
				ExpiresAt: time.Now().Add(resetTokenTTL),
			}
			if err := db.Create(&reset).Error; err != nil {
				log.Printf("❌ Failed to store reset token: %v", err)
			} else {
				// A mailer would deliver the reset link.
				log.Printf("📧 Password reset token for %s: %s", user.Email, reset.Token)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link has been sent."})
	}
}

// POST /auth/reset
func ResetPasswordHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetSubmit
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var reset models.PasswordReset
		if err := db.Where("token = ?", req.Token).First(&reset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset link"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify reset link"})
			return
		}
		if reset.UsedAt != nil || time.Now().After(reset.ExpiresAt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset link"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password_hash", string(hash)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}

		now := time.Now()
		db.Model(&reset).Update("used_at", &now)

		c.JSON(http.StatusOK, gin.H{"message": "Password updated. Please sign in."})
	}
}
