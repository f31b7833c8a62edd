package menucontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/models"
	"github.com/aayish123/Final-aayishFoods/realtime"
)

type foodItemInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	InStock     *bool  `json:"in_stock"`
}

type variantInput struct {
	Label string  `json:"label" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

// POST /admin/menu
func CreateFoodItem(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input foodItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.FoodItem{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Category:    input.Category,
			InStock:     true,
		}
		if input.InStock != nil {
			item.InStock = *input.InStock
		}

		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}

		hub.Broadcast(realtime.Event{Table: realtime.TableFoodItems, Type: realtime.EventInsert, Record: item})
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /admin/menu/:id
func UpdateFoodItem(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.FoodItem
		if err := db.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		var input foodItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"image_url":   input.ImageURL,
			"category":    input.Category,
		}
		if input.InStock != nil {
			updates["in_stock"] = *input.InStock
		}
		if err := db.Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}

		hub.Broadcast(realtime.Event{Table: realtime.TableFoodItems, Type: realtime.EventUpdate, Record: item})
		c.JSON(http.StatusOK, item)
	}
}

// PUT /admin/menu/:id/stock
func ToggleStock(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			InStock *bool `json:"in_stock" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var item models.FoodItem
		if err := db.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		if err := db.Model(&item).Update("in_stock", *input.InStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}

		hub.Broadcast(realtime.Event{Table: realtime.TableFoodItems, Type: realtime.EventUpdate, Record: item})
		c.JSON(http.StatusOK, gin.H{"message": "Stock updated", "in_stock": *input.InStock})
	}
}

// DELETE /admin/menu/:id
func DeleteFoodItem(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.FoodItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		hub.Broadcast(realtime.Event{Table: realtime.TableFoodItems, Type: realtime.EventDelete, Record: gin.H{"id": id}})
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}

// POST /admin/menu/:id/variants
func CreateVariant(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("id")
		var item models.FoodItem
		if err := db.Where("id = ?", itemID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		var input variantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		variant := models.FoodVariant{
			ID:         uuid.NewString(),
			FoodItemID: itemID,
			Label:      input.Label,
			Price:      input.Price,
		}
		if err := db.Create(&variant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create variant"})
			return
		}

		hub.Broadcast(realtime.Event{Table: realtime.TableVariants, Type: realtime.EventInsert, Record: variant})
		c.JSON(http.StatusCreated, variant)
	}
}

// PUT /admin/menu/variants/:variant_id
func UpdateVariant(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var variant models.FoodVariant
		if err := db.Where("id = ?", c.Param("variant_id")).First(&variant).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
			return
		}

		var input variantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&variant).Updates(map[string]interface{}{
			"label": input.Label,
			"price": input.Price,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update variant"})
			return
		}

		hub.Broadcast(realtime.Event{Table: realtime.TableVariants, Type: realtime.EventUpdate, Record: variant})
		c.JSON(http.StatusOK, variant)
	}
}

// DELETE /admin/menu/variants/:variant_id
func DeleteVariant(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("variant_id")

		result := db.Where("id = ?", id).Delete(&models.FoodVariant{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete variant"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
			return
		}

		hub.Broadcast(realtime.Event{Table: realtime.TableVariants, Type: realtime.EventDelete, Record: gin.H{"id": id}})
		c.JSON(http.StatusOK, gin.H{"message": "Variant deleted"})
	}
}

// POST /admin/menu/upload — stores an item image and returns its public URL.
func UploadImage(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		filename := uuid.NewString() + "_" + strings.ReplaceAll(file.Filename, " ", "_")
		saveDir := filepath.Join(uploadsDir, "menu")
		if err := os.MkdirAll(saveDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"image_url": "/uploads/menu/" + filename})
	}
}
