package addressControllers

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

	"github.com/aayish123/Final-aayishFoods/middleware"
	"github.com/aayish123/Final-aayishFoods/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Address{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Next()
	}
}

func router(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/user/addresses", asUser(userID))
	grp.GET("", ListAddresses(db))
	grp.POST("", CreateAddress(db))
	grp.PUT("/:id", UpdateAddress(db))
	grp.DELETE("/:id", DeleteAddress(db))
	return r
}

func validPayload() map[string]string {
	return map[string]string{
		"full_name":     "Test User",
		"phone":         "9999999999",
		"address_line1": "12 MG Road",
		"city":          "Hyderabad",
		"state":         "Telangana",
		"pincode":       "500001",
	}
}

func post(r *gin.Engine, path string, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	db := testDB(t)
	r := router(db, "u1")

	w := post(r, "/user/addresses", validPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var first models.Address
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.True(t, first.IsDefault)

	// A second address does not steal the default.
	w = post(r, "/user/addresses", validPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var second models.Address
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.False(t, second.IsDefault)
}

func TestListOrderingDefaultFirst(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	require.NoError(t, db.Create(&models.Address{
		ID: "a1", UserID: "u1", FullName: "A", Phone: "1", AddressLine1: "x",
		City: "c", State: "s", Pincode: "1", CreatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&models.Address{
		ID: "a2", UserID: "u1", FullName: "B", Phone: "1", AddressLine1: "x",
		City: "c", State: "s", Pincode: "1", IsDefault: true, CreatedAt: now.Add(-time.Hour),
	}).Error)

	r := router(db, "u1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/addresses", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var addresses []models.Address
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addresses))
	require.Len(t, addresses, 2)
	// Older but default sorts first.
	assert.Equal(t, "a2", addresses[0].ID)
}

func TestUpdateAddressOwnerScoped(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Address{
		ID: "a1", UserID: "u2", FullName: "A", Phone: "1", AddressLine1: "x",
		City: "c", State: "s", Pincode: "1",
	}).Error)

	r := router(db, "u1")
	body, _ := json.Marshal(validPayload())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/addresses/a1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Someone else's address looks like it does not exist.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAddress(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Address{
		ID: "a1", UserID: "u1", FullName: "A", Phone: "1", AddressLine1: "x",
		City: "c", State: "s", Pincode: "1",
	}).Error)

	r := router(db, "u1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/user/addresses/a1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/user/addresses/a1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
