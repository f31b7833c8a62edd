package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/aayish123/Final-aayishFoods/controllers/admin"
	menucontroller "github.com/aayish123/Final-aayishFoods/controllers/menu"
	orderControllers "github.com/aayish123/Final-aayishFoods/controllers/order"
	"github.com/aayish123/Final-aayishFoods/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the admin
// role; signed-in non-admins are redirected home.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(d.DB, d.Modal))
	{
		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(d.DB))
			orderAdmin.PUT("/:order_id/status", orderControllers.UpdateOrderStatus(d.DB, d.Hub))
			orderAdmin.PUT("/:order_id/payment-status", orderControllers.UpdatePaymentStatus(d.DB, d.Hub))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(d.DB))
		}

		// ─────────── Menu Management ───────────
		menuAdmin := adminGroup.Group("/menu")
		{
			menuAdmin.POST("", menucontroller.CreateFoodItem(d.DB, d.Hub))
			menuAdmin.PUT("/:id", menucontroller.UpdateFoodItem(d.DB, d.Hub))
			menuAdmin.PUT("/:id/stock", menucontroller.ToggleStock(d.DB, d.Hub))
			menuAdmin.DELETE("/:id", menucontroller.DeleteFoodItem(d.DB, d.Hub))
			menuAdmin.POST("/:id/variants", menucontroller.CreateVariant(d.DB, d.Hub))
			menuAdmin.PUT("/variants/:variant_id", menucontroller.UpdateVariant(d.DB, d.Hub))
			menuAdmin.DELETE("/variants/:variant_id", menucontroller.DeleteVariant(d.DB, d.Hub))
			menuAdmin.POST("/upload", menucontroller.UploadImage(d.UploadsDir))
			menuAdmin.GET("/export-excel", adminController.ExportMenuToExcel(d.DB))
		}

		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminController.GetStats(d.DB))
		adminGroup.GET("/users", adminController.GetAllUsers(d.DB))
	}
}
