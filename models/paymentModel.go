package models

import "gorm.io/gorm"

const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	gorm.Model
	OrderID       uint    `json:"orderId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transactionId"`
	CardLast4     string  `json:"cardLast4"`
}
