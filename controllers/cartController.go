package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/bellacucina/bella-cucina-api/initializers"
	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/bellacucina/bella-cucina-api/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type cartLine struct {
	ID         uint    `json:"id"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
}

func fetchCartLines(userId uint) ([]cartLine, error) {
	var lines []cartLine
	err := initializers.DB.Table("cart_items").
		Select("cart_items.id, cart_items.menu_item_id, cart_items.quantity, menu_items.name, menu_items.price, menu_items.image, menu_items.category").
		Joins("INNER JOIN menu_items ON menu_items.id = cart_items.menu_item_id").
		Where("cart_items.user_id = ? AND cart_items.deleted_at IS NULL", userId).
		Order("cart_items.created_at DESC").
		Scan(&lines).Error
	return lines, err
}

// GetCart returns the user's cart lines plus a monetary summary computed
// with the same pricing rules checkout uses.
func GetCart(ctx *gin.Context) {
	userId := currentUserID(ctx)

	lines, err := fetchCartLines(userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	itemCount := 0
	priced := make([]services.PricedLine, 0, len(lines))
	for _, line := range lines {
		itemCount += line.Quantity
		price := decimal.NewFromFloat(line.Price).Round(2)
		priced = append(priced, services.PricedLine{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      price,
			Quantity:   line.Quantity,
			Subtotal:   price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	quote := services.PricingFromEnv().Quote(priced)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": lines,
		"summary": gin.H{
			"itemCount":   itemCount,
			"subtotal":    quote.Subtotal.InexactFloat64(),
			"deliveryFee": quote.DeliveryFee.InexactFloat64(),
			"tax":         quote.Tax.InexactFloat64(),
			"total":       quote.Total.InexactFloat64(),
		},
	})
}

// AddToCart adds a menu item to the cart, merging quantities when the
// item is already there.
func AddToCart(ctx *gin.Context) {
	var body struct {
		MenuItemID string `json:"menuItemId" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	userId := currentUserID(ctx)

	var item models.MenuItem
	if err := initializers.DB.First(&item, "id = ?", body.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu item not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch menu item")
		}
		return
	}
	if !item.Available {
		sendErrorResponse(ctx, http.StatusBadRequest, "Item unavailable")
		return
	}

	var existing models.CartItem
	err := initializers.DB.
		Where("user_id = ? AND menu_item_id = ?", userId, body.MenuItemID).
		First(&existing).Error

	if err == nil {
		existing.Quantity += body.Quantity
		if err := initializers.DB.Save(&existing).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item quantity.")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": item.Name + " quantity updated",
			"id":      existing.ID,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
		return
	}

	cartItem := models.CartItem{
		UserID:     userId,
		MenuItemID: body.MenuItemID,
		Quantity:   body.Quantity,
	}
	if err := initializers.DB.Create(&cartItem).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": item.Name + " added to cart",
		"id":      cartItem.ID,
	})
}

// UpdateCartItem changes a line's quantity; a quantity below 1 removes it.
func UpdateCartItem(ctx *gin.Context) {
	cartItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	userId := currentUserID(ctx)

	if body.Quantity < 1 {
		initializers.DB.Where("id = ? AND user_id = ?", cartItemId, userId).Delete(&models.CartItem{})
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
		return
	}

	result := initializers.DB.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemId, userId).
		Update("quantity", body.Quantity)
	if result.Error != nil {
		log.Println("Update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating cart")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart updated"})
}

func RemoveCartItem(ctx *gin.Context) {
	cartItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	userId := currentUserID(ctx)

	result := initializers.DB.Where("id = ? AND user_id = ?", cartItemId, userId).Delete(&models.CartItem{})
	if result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error removing item")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func ClearCart(ctx *gin.Context) {
	userId := currentUserID(ctx)

	if err := initializers.DB.Where("user_id = ?", userId).Delete(&models.CartItem{}).Error; err != nil {
		log.Println("Delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error clearing cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}
