package controllers

import (
	"errors"
	"net/http"

	"github.com/bellacucina/bella-cucina-api/initializers"
	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func GetMenu(ctx *gin.Context) {
	query := initializers.DB.Model(&models.MenuItem{})

	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if available := ctx.Query("available"); available != "" {
		query = query.Where("available = ?", available == "true")
	}

	var items []models.MenuItem
	if result := query.Order("category, name").Find(&items); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"items": items,
	})
}

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Order("display_order").Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	result := initializers.DB.First(&item, "id = ?", ctx.Param("id"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if item.ID == "" || item.Price < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Item id and a non-negative price are required", nil)
		return
	}

	if err := initializers.DB.Create(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

func UpdateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := initializers.DB.First(&item, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	var updates models.MenuItem
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if updates.Price < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Price must be non-negative", nil)
		return
	}

	item.Name = updates.Name
	item.Category = updates.Category
	item.Price = updates.Price
	item.Description = updates.Description
	item.Image = updates.Image
	item.Ingredients = updates.Ingredients
	item.Available = updates.Available

	if err := initializers.DB.Save(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func UpdateMenuItemAvailability(ctx *gin.Context) {
	var body struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result := initializers.DB.Model(&models.MenuItem{}).
		Where("id = ?", ctx.Param("id")).
		Update("available", *body.Available)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update availability", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

func DeleteMenuItem(ctx *gin.Context) {
	result := initializers.DB.Delete(&models.MenuItem{}, "id = ?", ctx.Param("id"))
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
