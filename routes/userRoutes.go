package routes

import (
	"github.com/bellacucina/bella-cucina-api/controllers"
	"github.com/bellacucina/bella-cucina-api/middlewares"
	"github.com/gin-gonic/gin"
)

func UserRoutes(server *gin.Engine) {
	users := server.Group("/api/users", middlewares.RequireAuth())
	{
		users.GET("/profile", controllers.GetProfile)
		users.PUT("/profile", controllers.UpdateProfile)
		users.GET("", middlewares.RequireAdmin(), controllers.ListUsers)
	}
}
