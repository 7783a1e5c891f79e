package controllers

import (
	"log"
	"net/http"

	"github.com/bellacucina/bella-cucina-api/initializers"
	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/gin-gonic/gin"
)

func GetProfile(ctx *gin.Context) {
	userId := currentUserID(ctx)

	var user models.User
	if err := initializers.DB.First(&user, userId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

func UpdateProfile(ctx *gin.Context) {
	var body struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Phone     string `json:"phone"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userId := currentUserID(ctx)

	result := initializers.DB.Model(&models.User{}).
		Where("id = ?", userId).
		Updates(map[string]any{
			"first_name": body.FirstName,
			"last_name":  body.LastName,
			"phone":      body.Phone,
		})
	if result.Error != nil {
		log.Println("Profile update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Profile updated"})
}

// ListUsers is the admin user listing.
func ListUsers(ctx *gin.Context) {
	var users []models.User
	if err := initializers.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"count": len(users),
		"users": users,
	})
}
