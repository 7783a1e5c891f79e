package routes

import (
	"github.com/bellacucina/bella-cucina-api/controllers"
	"github.com/bellacucina/bella-cucina-api/middlewares"
	"github.com/gin-gonic/gin"
)

func UploadRoutes(server *gin.Engine) {
	upload := server.Group("/api/upload", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		upload.POST("/menu-image", controllers.UploadMenuImage)
	}
}
