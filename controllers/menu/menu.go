package menucontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/models"
)

// CategorySnacks is a category that exists in the navigation before any item
// carries it; selecting it shows a coming-soon view instead of the grid.
const CategorySnacks = "Snacks"

type menuItem struct {
	models.FoodItem
	Orderable bool `json:"orderable"`
}

// FilterItems applies the storefront's two client-side filters: a
// case-insensitive substring search over name/category/description, and an
// exact category match ("All" disables it).
func FilterItems(items []models.FoodItem, search, category string) []models.FoodItem {
	filtered := items

	if q := strings.TrimSpace(search); q != "" {
		q = strings.ToLower(q)
		matched := make([]models.FoodItem, 0, len(filtered))
		for _, item := range filtered {
			if strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.Category), q) ||
				strings.Contains(strings.ToLower(item.Description), q) {
				matched = append(matched, item)
			}
		}
		filtered = matched
	}

	if category != "" && category != "All" {
		matched := make([]models.FoodItem, 0, len(filtered))
		for _, item := range filtered {
			if item.Category == category {
				matched = append(matched, item)
			}
		}
		filtered = matched
	}

	return filtered
}

// Categories lists the distinct item categories plus the fixed entries the
// menu always shows.
func Categories(items []models.FoodItem) []string {
	categories := []string{"All"}
	seen := map[string]bool{}
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return append(categories, CategorySnacks)
}

// GET /menu?q=&category=
func GetMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")

		if category == CategorySnacks {
			c.JSON(http.StatusOK, gin.H{
				"coming_soon": true,
				"category":    CategorySnacks,
				"description": "Delicious snacks and munchies are coming soon!",
			})
			return
		}

		var items []models.FoodItem
		if err := db.Preload("Variants").Order("created_at DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu items"})
			return
		}

		filtered := FilterItems(items, c.Query("q"), category)
		out := make([]menuItem, 0, len(filtered))
		for _, item := range filtered {
			out = append(out, menuItem{FoodItem: item, Orderable: item.Orderable()})
		}

		c.JSON(http.StatusOK, gin.H{
			"items":      out,
			"categories": Categories(items),
		})
	}
}

// GET /menu/:id
func GetMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.FoodItem
		if err := db.Preload("Variants").Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load item"})
			return
		}
		c.JSON(http.StatusOK, menuItem{FoodItem: item, Orderable: item.Orderable()})
	}
}
