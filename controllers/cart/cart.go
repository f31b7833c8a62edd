package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/cart"
	"github.com/aayish123/Final-aayishFoods/middleware"
	"github.com/aayish123/Final-aayishFoods/models"
)

type addItemInput struct {
	ItemID    string `json:"item_id" binding:"required"`
	VariantID string `json:"variant_id" binding:"required"`
}

type updateItemInput struct {
	ItemID    string `json:"item_id" binding:"required"`
	VariantID string `json:"variant_id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

// GET /user/cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":        store.Lines(userID),
			"total_items":  store.TotalItems(userID),
			"total_amount": store.TotalAmount(userID),
		})
	}
}

// POST /user/cart/items
// Validates the item and variant exist and the item is in stock, then adds
// one unit (the store itself never checks stock).
func AddItem(db *gorm.DB, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.FoodItem
		if err := db.Preload("Variants").Where("id = ?", input.ItemID).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate item"})
			return
		}
		if !item.InStock {
			c.JSON(http.StatusConflict, gin.H{"error": "Item is out of stock"})
			return
		}

		var variant *models.FoodVariant
		for i := range item.Variants {
			if item.Variants[i].ID == input.VariantID {
				variant = &item.Variants[i]
				break
			}
		}
		if variant == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Variant does not exist for this item"})
			return
		}

		store.AddItem(userID, cart.Line{
			ItemID:       item.ID,
			VariantID:    variant.ID,
			Name:         item.Name,
			VariantLabel: variant.Label,
			UnitPrice:    variant.Price,
			ImageURL:     item.ImageURL,
		})

		c.JSON(http.StatusCreated, gin.H{
			"items":        store.Lines(userID),
			"total_items":  store.TotalItems(userID),
			"total_amount": store.TotalAmount(userID),
		})
	}
}

// PUT /user/cart/items — sets a line's quantity; zero removes the line and an
// unknown key is a silent no-op.
func UpdateItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input updateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.UpdateQuantity(userID, input.ItemID, input.VariantID, *input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items":        store.Lines(userID),
			"total_items":  store.TotalItems(userID),
			"total_amount": store.TotalAmount(userID),
		})
	}
}

// DELETE /user/cart/items/:item_id/:variant_id
func RemoveItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		store.RemoveItem(userID, c.Param("item_id"), c.Param("variant_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /user/cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		store.Clear(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
