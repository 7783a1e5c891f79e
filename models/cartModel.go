package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	UserID     uint   `json:"userId" gorm:"uniqueIndex:idx_cart_user_item"`
	MenuItemID string `json:"menuItemId" gorm:"uniqueIndex:idx_cart_user_item"`
	Quantity   int    `json:"quantity"`
}
