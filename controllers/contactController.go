package controllers

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/bellacucina/bella-cucina-api/initializers"
	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/bellacucina/bella-cucina-api/utils"
	"github.com/gin-gonic/gin"
)

// CreateContactMessage stores a message from the public contact form and
// notifies the restaurant inbox.
func CreateContactMessage(ctx *gin.Context) {
	var message models.ContactMessage
	if err := ctx.ShouldBindJSON(&message); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	message.Status = "new"

	if err := initializers.DB.Create(&message).Error; err != nil {
		log.Println("Contact message error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if inbox := os.Getenv("CONTACT_INBOX"); inbox != "" {
		emailData := utils.EmailData{
			Name:    message.Name,
			Message: message.Message,
		}
		if err := utils.SendEmail(inbox, "New contact message: "+message.Subject, emailData, "templates/contact_notification.html"); err != nil {
			log.Println("Error sending contact notification:", err)
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Thanks for reaching out! We'll get back to you soon."})
}

func GetContactMessages(ctx *gin.Context) {
	query := initializers.DB.Order("created_at DESC")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"count":    len(messages),
		"messages": messages,
	})
}

func UpdateContactMessageStatus(ctx *gin.Context) {
	messageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid message id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required,oneof=new read resolved"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	result := initializers.DB.Model(&models.ContactMessage{}).
		Where("id = ?", messageId).
		Update("status", body.Status)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update message")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Message status updated"})
}
