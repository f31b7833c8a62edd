package menucontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.FoodItem{}, &models.FoodVariant{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func sampleItems() []models.FoodItem {
	return []models.FoodItem{
		{ID: "f1", Name: "Chicken Pickle", Category: "Pickles", Description: "Spicy boneless chicken pickle"},
		{ID: "f2", Name: "Mutton Pickle", Category: "Pickles", Description: "Slow cooked mutton"},
		{ID: "f3", Name: "Chicken Biryani", Category: "Biryani", Description: "Dum style"},
		{ID: "f4", Name: "Ragi Laddu", Category: "Sweets", Description: "Millet laddu"},
	}
}

func TestFilterItemsSearch(t *testing.T) {
	items := sampleItems()

	// Case-insensitive substring over name, category and description.
	got := FilterItems(items, "CHICKEN", "")
	assert.Len(t, got, 2)

	got = FilterItems(items, "millet", "")
	require.Len(t, got, 1)
	assert.Equal(t, "f4", got[0].ID)

	got = FilterItems(items, "pizza", "")
	assert.Empty(t, got)
}

func TestFilterItemsCategory(t *testing.T) {
	items := sampleItems()

	got := FilterItems(items, "", "Pickles")
	assert.Len(t, got, 2)

	// "All" disables the category filter entirely.
	got = FilterItems(items, "", "All")
	assert.Len(t, got, 4)

	// Both filters compose.
	got = FilterItems(items, "chicken", "Biryani")
	require.Len(t, got, 1)
	assert.Equal(t, "f3", got[0].ID)
}

func TestCategories(t *testing.T) {
	got := Categories(sampleItems())
	assert.Equal(t, []string{"All", "Pickles", "Biryani", "Sweets", CategorySnacks}, got)

	// Snacks is present even with no items at all.
	assert.Equal(t, []string{"All", CategorySnacks}, Categories(nil))
}

func TestGetMenuSnacksComingSoon(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testDB(t)

	r := gin.New()
	r.GET("/menu", GetMenu(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu?category=Snacks", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["coming_soon"])
	assert.Equal(t, CategorySnacks, body["category"])
}

func TestGetMenuOrderableFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testDB(t)

	require.NoError(t, db.Create(&models.FoodItem{
		ID: "f1", Name: "Chicken Pickle", Category: "Pickles", InStock: true,
		Variants: []models.FoodVariant{{ID: "v1", Label: "250g", Price: 250}},
	}).Error)
	require.NoError(t, db.Create(&models.FoodItem{
		ID: "f2", Name: "Mutton Pickle", Category: "Pickles", InStock: true,
	}).Error)

	r := gin.New()
	r.GET("/menu", GetMenu(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []struct {
			ID        string `json:"id"`
			Orderable bool   `json:"orderable"`
		} `json:"items"`
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)

	orderable := map[string]bool{}
	for _, it := range body.Items {
		orderable[it.ID] = it.Orderable
	}
	assert.True(t, orderable["f1"])
	assert.False(t, orderable["f2"]) // no variants, cannot be ordered
	assert.Contains(t, body.Categories, CategorySnacks)
}

func TestGetMenuItemNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testDB(t)

	r := gin.New()
	r.GET("/menu/:id", GetMenuItem(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu/nope", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
