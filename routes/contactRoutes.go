package routes

import (
	"github.com/bellacucina/bella-cucina-api/controllers"
	"github.com/bellacucina/bella-cucina-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ContactRoutes(server *gin.Engine) {
	server.POST("/api/contact", controllers.CreateContactMessage)

	admin := server.Group("/api/contact", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetContactMessages)
		admin.PUT("/:id/status", controllers.UpdateContactMessageStatus)
	}
}
