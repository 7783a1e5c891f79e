package routes

import (
	"github.com/bellacucina/bella-cucina-api/controllers"
	"github.com/bellacucina/bella-cucina-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middlewares.RequireAuth(), controllers.Me)
	}
}
