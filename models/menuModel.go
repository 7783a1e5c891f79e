package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `json:"name" gorm:"uniqueIndex" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

// MenuItem uses a human-readable string id ("margherita", "tiramisu")
// rather than an auto-increment key.
type MenuItem struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Ingredients datatypes.JSON `json:"ingredients"`
	Available   bool           `json:"available" gorm:"default:true"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
