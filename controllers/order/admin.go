package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/models"
	"github.com/aayish123/Final-aayishFoods/realtime"
)

type updateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type updatePaymentStatusInput struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// GET /admin/orders — every order with address and line items, newest first.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.FoodItem").
			Preload("Address").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:order_id/status
// Accepts any of the six statuses; the console moves orders freely, no
// transition graph is enforced.
func UpdateOrderStatus(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		newStatus, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("id = ?", c.Param("order_id")).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if err := db.Model(&order).Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		hub.Broadcast(realtime.Event{
			Table:  realtime.TableOrders,
			Type:   realtime.EventUpdate,
			UserID: order.UserID,
			Record: order,
		})
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
	}
}

// PUT /admin/orders/:order_id/payment-status
func UpdatePaymentStatus(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updatePaymentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		newStatus, err := models.ParsePaymentStatus(input.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("id = ?", c.Param("order_id")).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if err := db.Model(&order).Updates(map[string]interface{}{
			"payment_status": newStatus,
			"updated_at":     time.Now(),
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}

		hub.Broadcast(realtime.Event{
			Table:  realtime.TableOrders,
			Type:   realtime.EventUpdate,
			UserID: order.UserID,
			Record: order,
		})
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated", "order": order})
	}
}
