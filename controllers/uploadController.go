package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bellacucina/bella-cucina-api/initializers"
	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadMenuImage uploads a single image to S3 and points the target menu
// item at the new URL.
func UploadMenuImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	menuItemId := ctx.PostForm("menuItemId")
	if menuItemId == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing menuItemId", nil)
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, "id = ?", menuItemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate menu item", err)
		}
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}
	defer f.Close()

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "bella-cucina-menu"
	}

	// Unique key so re-uploads never overwrite each other.
	key := fmt.Sprintf("menu/%s-%s-%s", menuItemId, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	if err := initializers.DB.Model(&item).Update("image", result.Location).Error; err != nil {
		log.Println("Error saving image url:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Uploaded but failed to save image url", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded",
		"url":     result.Location,
	})
}
