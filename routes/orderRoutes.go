package routes

import (
	"github.com/bellacucina/bella-cucina-api/controllers"
	"github.com/bellacucina/bella-cucina-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders")
	{
		orders.POST("", middlewares.OptionalAuth(), controllers.CreateOrder)
		orders.GET("", middlewares.RequireAuth(), controllers.GetMyOrders)
		orders.GET("/track/:orderNumber", controllers.TrackOrder)
		orders.GET("/:id", middlewares.RequireAuth(), controllers.GetOrderById)
		orders.POST("/:id/cancel", middlewares.RequireAuth(), controllers.CancelOrder)
	}

	admin := server.Group("/api/orders", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/all", controllers.GetAllOrders)
		admin.PUT("/:id/status", controllers.UpdateOrderStatus)
	}
}
