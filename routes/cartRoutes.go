package routes

import (
	"github.com/bellacucina/bella-cucina-api/controllers"
	"github.com/bellacucina/bella-cucina-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/api/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddToCart)
		cart.PUT("/:id", controllers.UpdateCartItem)
		cart.DELETE("/:id", controllers.RemoveCartItem)
		cart.DELETE("", controllers.ClearCart)
	}
}
