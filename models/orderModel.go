package models

import "gorm.io/gorm"

const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

const (
	PaymentCredit = "credit"
	PaymentDebit  = "debit"
	PaymentPaypal = "paypal"
	PaymentCash   = "cash"
)

type Order struct {
	gorm.Model
	// UserID is nil for guest checkouts.
	UserID        *uint       `json:"userId"`
	OrderNumber   string      `json:"orderNumber" gorm:"uniqueIndex"`
	FullName      string      `json:"fullName"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	ZipCode       string      `json:"zipCode"`
	DeliveryNotes string      `json:"deliveryNotes"`
	Subtotal      float64     `json:"subtotal"`
	DeliveryFee   float64     `json:"deliveryFee"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem carries the menu item's name and price as they were at
// checkout time; later menu edits never touch past orders.
type OrderItem struct {
	gorm.Model
	OrderID    uint    `json:"orderId"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanCancel reports whether an order in the given status may still be
// cancelled. Once an order leaves pending, cancellation is rejected.
func CanCancel(status string) bool {
	return status == StatusPending
}

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCredit, PaymentDebit, PaymentPaypal, PaymentCash:
		return true
	}
	return false
}
