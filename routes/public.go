package routes

import (
	"github.com/gin-gonic/gin"

	menucontroller "github.com/aayish123/Final-aayishFoods/controllers/menu"
)

// SetupPublicRoutes registers the unauthenticated surface.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.GET("/menu", menucontroller.GetMenu(d.DB))
	r.GET("/menu/:id", menucontroller.GetMenuItem(d.DB))

	// Change-notification websocket; clients subscribe per table
	r.GET("/ws", d.Hub.Handler)
}
