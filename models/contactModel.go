package models

import "gorm.io/gorm"

type ContactMessage struct {
	gorm.Model
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
	Status  string `json:"status"`
}
