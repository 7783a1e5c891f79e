package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/bellacucina/bella-cucina-api/initializers"
	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/bellacucina/bella-cucina-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

// chargeGateway submits a card/paypal charge to the configured payment
// gateway and returns its transaction id. When no gateway is configured
// the charge is approved locally with a generated transaction id, which
// keeps development and cash-style flows working.
func chargeGateway(order models.Order, method, cardLast4 string) (string, error) {
	gatewayURL := os.Getenv("PAYMENT_GATEWAY_URL")
	if gatewayURL == "" {
		digits, err := utils.GenerateDigits(6)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("TXN%d%s", time.Now().Unix(), digits), nil
	}

	requestBody := map[string]any{
		"reference":   order.OrderNumber,
		"amount":      order.Total,
		"currency":    "USD",
		"method":      method,
		"card_last4":  cardLast4,
		"description": fmt.Sprintf("Payment for order %s", order.OrderNumber),
	}

	resp, err := resty.New().SetTimeout(30 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(requestBody).
		Post(gatewayURL + "/charges")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("gateway charge failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var response map[string]any
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return "", fmt.Errorf("failed to parse gateway response: %w", err)
	}

	transactionId, ok := response["transaction_id"].(string)
	if !ok || transactionId == "" {
		return "", fmt.Errorf("transaction id not found in response: %v", response)
	}
	if status, _ := response["status"].(string); status != "" && status != "approved" {
		return "", fmt.Errorf("gateway declined the charge: %s", status)
	}

	return transactionId, nil
}

// ProcessPayment records a payment for an order. The amount is always the
// order's stored total; client-supplied amounts are not accepted.
func ProcessPayment(ctx *gin.Context) {
	var body struct {
		OrderID       uint   `json:"orderId" binding:"required"`
		PaymentMethod string `json:"paymentMethod" binding:"required"`
		CardLast4     string `json:"cardLast4"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.IsValidPaymentMethod(body.PaymentMethod) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid payment method")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, body.OrderID).Error; err != nil {
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
			sendErrorResponse(ctx, http.StatusForbidden, "You cannot pay for this order")
			return
		}
	}

	payment := models.Payment{
		OrderID:   order.ID,
		Amount:    order.Total,
		Method:    body.PaymentMethod,
		CardLast4: body.CardLast4,
	}

	if body.PaymentMethod == models.PaymentCash {
		// Cash is collected on delivery; the payment stays pending.
		payment.Status = models.PaymentStatusPending
	} else {
		transactionId, err := chargeGateway(order, body.PaymentMethod, body.CardLast4)
		if err != nil {
			log.Println("Gateway error:", err)
			payment.Status = models.PaymentStatusFailed
			if saveErr := initializers.DB.Create(&payment).Error; saveErr != nil {
				log.Println("Failed to record failed payment:", saveErr)
			}
			sendErrorResponse(ctx, http.StatusBadGateway, "Payment failed")
			return
		}
		payment.Status = models.PaymentStatusSuccess
		payment.TransactionID = transactionId
	}

	if err := initializers.DB.Create(&payment).Error; err != nil {
		log.Println("Payment creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to process payment")
		return
	}

	// A successful payment confirms a pending order.
	if payment.Status == models.PaymentStatusSuccess && order.Status == models.StatusPending {
		if err := initializers.DB.Model(&order).Update("status", models.StatusConfirmed).Error; err != nil {
			log.Printf("Payment %d recorded, but order %d not confirmed: %v", payment.ID, order.ID, err)
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":       "Payment processed",
		"paymentId":     payment.ID,
		"status":        payment.Status,
		"transactionId": payment.TransactionID,
	})
}

// GetOrderPayments lists payment records for an order.
func GetOrderPayments(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
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

	userId := currentUserID(ctx)
	if currentUserRole(ctx) != "admin" {
		if order.UserID == nil || *order.UserID != userId {
			sendErrorResponse(ctx, http.StatusForbidden, "You cannot view these payments")
			return
		}
	}

	var payments []models.Payment
	if err := initializers.DB.Where("order_id = ?", orderId).Order("created_at DESC").Find(&payments).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"payments": payments})
}
