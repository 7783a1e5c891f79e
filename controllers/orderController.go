package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/bellacucina/bella-cucina-api/initializers"
	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/bellacucina/bella-cucina-api/services"
	"github.com/bellacucina/bella-cucina-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func checkoutService() *services.CheckoutService {
	return services.NewCheckoutService(
		services.GormMenuCatalog{DB: initializers.DB},
		services.GormOrderStore{DB: initializers.DB},
		services.PricingFromEnv(),
		os.Getenv("ORDER_INITIAL_STATUS"),
	)
}

// CreateOrder handles checkout. Guests may order; authenticated users get
// their server-side cart cleared on success.
func CreateOrder(ctx *gin.Context) {
	var req services.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("JSON binding error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	userId := currentUserID(ctx)

	result, err := checkoutService().PlaceOrder(ctx.Request.Context(), userId, req)
	if err != nil {
		var validationErr *services.ValidationError
		var unavailableErr *services.ItemUnavailableError
		switch {
		case errors.As(err, &validationErr):
			sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
				"message": "Validation failed",
				"field":   validationErr.Field,
				"error":   validationErr.Message,
			})
		case errors.As(err, &unavailableErr):
			sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
				"message":    fmt.Sprintf("Menu item %s not found or unavailable", unavailableErr.MenuItemID),
				"menuItemId": unavailableErr.MenuItemID,
			})
		case errors.Is(err, services.ErrOrderNumberExhausted):
			log.Println("Order number generation exhausted:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error creating order")
		default:
			log.Println("Order creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error creating order. The order was not placed.")
		}
		return
	}

	if err := sendOrderConfirmationEmail(req.Email, req.FullName, result); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":           "Order created successfully",
		"orderId":           result.OrderID,
		"orderNumber":       result.OrderNumber,
		"total":             result.Total,
		"estimatedDelivery": "30-45 minutes",
	})
}

func sendOrderConfirmationEmail(email, name string, result *services.CheckoutResult) error {
	emailData := utils.EmailData{
		Name:        name,
		OrderNumber: result.OrderNumber,
		Total:       fmt.Sprintf("%.2f", result.Total),
	}
	return utils.SendEmail(email, "Your Bella Cucina Order "+result.OrderNumber, emailData, "templates/order_confirmation.html")
}

// GetMyOrders returns the authenticated user's orders, newest first.
func GetMyOrders(ctx *gin.Context) {
	userId := currentUserID(ctx)

	var orders []models.Order
	result := initializers.DB.Preload("Items").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}

// GetAllOrders returns every order with pagination, for the admin view.
func GetAllOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if status := ctx.Query("status"); status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	countQuery.Count(&count)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetOrderById returns a single order with its items. Customers can only
// read their own orders; admins can read any.
func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	userId := currentUserID(ctx)
	if currentUserRole(ctx) != "admin" {
		if order.UserID == nil || *order.UserID != userId {
			sendErrorResponse(ctx, http.StatusForbidden, "You cannot view this order")
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// TrackOrder looks an order up by its public order number.
func TrackOrder(ctx *gin.Context) {
	orderNumber := ctx.Param("orderNumber")

	var order models.Order
	err := initializers.DB.Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus is the admin transition endpoint. Forward transitions
// are unrestricted; cancellation is only allowed while the order is still
// pending.
func UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if !models.IsValidOrderStatus(body.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid status")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	if body.Status == models.StatusCancelled && !models.CanCancel(order.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Only pending orders can be cancelled")
		return
	}

	if err := initializers.DB.Model(&order).Update("status", body.Status).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   "Order status updated successfully.",
		"orderId":   order.ID,
		"newStatus": body.Status,
	})
}

// CancelOrder lets a customer cancel their own order while it is still
// pending. Once the kitchen has it, cancellation is rejected.
func CancelOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	userId := currentUserID(ctx)

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	if order.UserID == nil || *order.UserID != userId {
		sendErrorResponse(ctx, http.StatusForbidden, "You cannot cancel this order")
		return
	}
	if !models.CanCancel(order.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Only pending orders can be cancelled")
		return
	}

	if err := initializers.DB.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order cancelled"})
}
