package routes

import (
	"github.com/gin-gonic/gin"

	addressControllers "github.com/aayish123/Final-aayishFoods/controllers/address"
	cartControllers "github.com/aayish123/Final-aayishFoods/controllers/cart"
	orderControllers "github.com/aayish123/Final-aayishFoods/controllers/order"
	userControllers "github.com/aayish123/Final-aayishFoods/controllers/user"
	"github.com/aayish123/Final-aayishFoods/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Anonymous requests get
// the open-auth-modal response instead of the protected resource.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth(d.DB, d.Modal))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(d.DB))
		userGroup.PUT("/profile", userControllers.UpdateProfile(d.DB))

		// ──────────────── Session Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(d.Cart))
			cartGroup.POST("/items", cartControllers.AddItem(d.DB, d.Cart))
			cartGroup.PUT("/items", cartControllers.UpdateItem(d.Cart))
			cartGroup.DELETE("/items/:item_id/:variant_id", cartControllers.RemoveItem(d.Cart))
			cartGroup.DELETE("", cartControllers.ClearCart(d.Cart))
		}

		// ──────────────── Checkout ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", addressControllers.ListAddresses(d.DB))
			addressGroup.POST("", addressControllers.CreateAddress(d.DB))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(d.DB))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(d.DB))
		}
		userGroup.POST("/checkout", orderControllers.PlaceOrder(d.DB, d.Cart, d.Processor, d.Hub))

		// ──────────────── Order Tracking ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrders(d.DB))
	}
}
