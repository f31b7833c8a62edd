package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/authmodal"
	"github.com/aayish123/Final-aayishFoods/cart"
	paymentControllers "github.com/aayish123/Final-aayishFoods/controllers/payment"
	"github.com/aayish123/Final-aayishFoods/realtime"
)

// Deps carries the shared singletons every route group wires against.
type Deps struct {
	DB        *gorm.DB
	Cart      *cart.Store
	Modal     *authmodal.Controller
	Hub       *realtime.Hub
	Processor *paymentControllers.Processor

	// UploadsDir is where menu images land; served under /uploads.
	UploadsDir string
}

// SetupRoutes is the single entry-point wiring every route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public: menu browsing and the realtime channel
	SetupPublicRoutes(r, d)

	// Auth: sign-up / sign-in / federated / reset (no middleware)
	SetupAuthRoutes(r, d)

	// User: cart, addresses, checkout, orders, profile (JWT-protected)
	SetupUserRoutes(r, d)

	// Admin: console surface (admin-role-protected)
	SetupAdminRoutes(r, d)

	// Catch-all 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
