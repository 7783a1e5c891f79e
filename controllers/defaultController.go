package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Bella Cucina API 🍕. Buon appetito!

The following are the endpoints for this API:

AUTH
- POST "/api/auth/register" - Create customer account
- POST "/api/auth/login" - Sign in
- GET "/api/auth/me" - Current user

MENU
- GET "/api/menu" - List menu items (filters: category, available)
- GET "/api/menu/categories" - List categories
- GET "/api/menu/:id" - Get menu item
- POST/PUT/DELETE "/api/menu..." - Admin menu management

CART
- GET "/api/cart" - Get cart with totals
- POST "/api/cart" - Add item
- PUT "/api/cart/:id" - Change quantity
- DELETE "/api/cart/:id" - Remove item
- DELETE "/api/cart" - Clear cart

ORDERS
- POST "/api/orders" - Checkout (guests welcome)
- GET "/api/orders" - Your orders
- GET "/api/orders/:id" - Order details
- GET "/api/orders/track/:orderNumber" - Track an order
- POST "/api/orders/:id/cancel" - Cancel a pending order
- PUT "/api/orders/:id/status" - Admin status update

PAYMENTS
- POST "/api/payments" - Pay for an order
- GET "/api/payments/order/:orderId" - Payment history

CONTACT
- POST "/api/contact" - Send us a message`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
