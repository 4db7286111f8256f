package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsnap/backend/internal/service"
)

// ImageHandler accepts meal photo uploads and returns their stable URL.
type ImageHandler struct {
	images service.IImageService
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(images service.IImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// RegisterRoutes registers the upload route on an authenticated group.
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", h.Upload)
}

// Upload stores a multipart photo and returns the URL to feed /detect-food.
func (h *ImageHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image", "details": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.images.UploadMealPhoto(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
