package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/models"
)

// Stats are the dashboard counters: total, ongoing (non-terminal), completed
// (delivered), and revenue summed over the fetched records.
type Stats struct {
	TotalOrders     int     `json:"total_orders"`
	OngoingOrders   int     `json:"ongoing_orders"`
	CompletedOrders int     `json:"completed_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// ComputeStats derives the counters from a loaded order set.
func ComputeStats(orders []models.Order) Stats {
	s := Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		if !o.Status.Terminal() {
			s.OngoingOrders++
		}
		if o.Status == models.OrderStatusDelivered {
			s.CompletedOrders++
		}
		s.TotalRevenue += o.TotalAmount
	}
	return s
}

// GET /admin/stats
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Select("status", "total_amount").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, ComputeStats(orders))
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
