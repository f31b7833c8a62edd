package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aayish123/Final-aayishFoods/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.PasswordReset{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func confirm(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()
	require.NoError(t, db.Model(user).Update("email_confirmed", true).Error)
}

func TestSignUpThenSignIn(t *testing.T) {
	db := testDB(t)

	user, err := SignUpUser(db, "Amma@Example.com", "secret123", "Amma")
	require.NoError(t, err)
	assert.Equal(t, "amma@example.com", user.Email)
	assert.False(t, user.EmailConfirmed)

	// Unconfirmed accounts cannot sign in yet.
	_, _, err = SignInUser(db, "amma@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailNotConfirmed)

	confirm(t, db, user)
	got, role, err := SignInUser(db, "amma@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "", role) // no user_roles row: plain customer, pending redirect
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := testDB(t)

	_, err := SignUpUser(db, "a@b.com", "secret123", "A")
	require.NoError(t, err)
	_, err = SignUpUser(db, "a@b.com", "other456", "A2")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestSignInWrongPassword(t *testing.T) {
	db := testDB(t)

	user, err := SignUpUser(db, "a@b.com", "secret123", "A")
	require.NoError(t, err)
	confirm(t, db, user)

	_, _, err = SignInUser(db, "a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	db := testDB(t)
	_, _, err := SignInUser(db, "nobody@b.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminRoleResolution(t *testing.T) {
	db := testDB(t)

	user, err := SignUpUser(db, "admin@b.com", "secret123", "Admin")
	require.NoError(t, err)
	confirm(t, db, user)
	require.NoError(t, db.Create(&models.UserRole{UserID: user.ID, Role: "admin"}).Error)

	_, role, err := SignInUser(db, "admin@b.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
	assert.Equal(t, "/admin", redirectFor(role))
	assert.Equal(t, "/dashboard", redirectFor(""))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueJWT(Claims{UserID: "u1", Email: "a@b.com", Role: "admin", Name: "A"})
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = ParseJWT("not-a-token")
	assert.Error(t, err)
}

func resetRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/reset-request", RequestPasswordResetHandler(db))
	r.POST("/auth/reset", ResetPasswordHandler(db))
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestResetRequestMatchesMixedCaseEmail(t *testing.T) {
	db := testDB(t)
	r := resetRouter(db)

	user, err := SignUpUser(db, "Amma@Example.com", "secret123", "Amma")
	require.NoError(t, err)
	confirm(t, db, user)

	// Same casing the user typed at sign-up, not the stored lowercase form.
	w := postJSON(r, "/auth/reset-request", gin.H{"email": "Amma@Example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.PasswordReset{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResetRequestUnknownEmailStillOK(t *testing.T) {
	db := testDB(t)
	r := resetRouter(db)

	// Same answer whether or not the account exists.
	w := postJSON(r, "/auth/reset-request", gin.H{"email": "nobody@b.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.PasswordReset{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResetPasswordFlow(t *testing.T) {
	db := testDB(t)
	r := resetRouter(db)

	user, err := SignUpUser(db, "a@b.com", "secret123", "A")
	require.NoError(t, err)
	confirm(t, db, user)

	w := postJSON(r, "/auth/reset-request", gin.H{"email": "a@b.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var reset models.PasswordReset
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&reset).Error)

	w = postJSON(r, "/auth/reset", gin.H{"token": reset.Token, "new_password": "changed99"})
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, the new one does.
	_, _, err = SignInUser(db, "a@b.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = SignInUser(db, "a@b.com", "changed99")
	assert.NoError(t, err)

	// The token is single-use.
	w = postJSON(r, "/auth/reset", gin.H{"token": reset.Token, "new_password": "again1234"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	db := testDB(t)
	r := resetRouter(db)

	user, err := SignUpUser(db, "a@b.com", "secret123", "A")
	require.NoError(t, err)
	confirm(t, db, user)

	expired := models.PasswordReset{
		Token:     "tok-expired",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&expired).Error)

	w := postJSON(r, "/auth/reset", gin.H{"token": "tok-expired", "new_password": "changed99"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password unchanged.
	_, _, err = SignInUser(db, "a@b.com", "secret123")
	assert.NoError(t, err)
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	db := testDB(t)
	r := resetRouter(db)

	w := postJSON(r, "/auth/reset", gin.H{"token": "tok-missing", "new_password": "changed99"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
