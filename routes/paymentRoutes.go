package routes

import (
	"github.com/bellacucina/bella-cucina-api/controllers"
	"github.com/bellacucina/bella-cucina-api/middlewares"
	"github.com/gin-gonic/gin"
)

func PaymentRoutes(server *gin.Engine) {
	payments := server.Group("/api/payments", middlewares.RequireAuth())
	{
		payments.POST("", controllers.ProcessPayment)
		payments.GET("/order/:orderId", controllers.GetOrderPayments)
	}
}
