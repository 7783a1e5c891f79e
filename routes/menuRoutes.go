package routes

import (
	"github.com/bellacucina/bella-cucina-api/controllers"
	"github.com/bellacucina/bella-cucina-api/middlewares"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine) {
	menu := server.Group("/api/menu")
	{
		menu.GET("", controllers.GetMenu)
		menu.GET("/categories", controllers.GetCategories)
		menu.GET("/:id", controllers.GetMenuItem)
	}

	admin := server.Group("/api/menu", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateMenuItem)
		admin.PUT("/:id", controllers.UpdateMenuItem)
		admin.PATCH("/:id/availability", controllers.UpdateMenuItemAvailability)
		admin.DELETE("/:id", controllers.DeleteMenuItem)
	}
}
