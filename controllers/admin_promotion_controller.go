package controllers

import (
	"burger-house/config"
	"burger-house/libs"
	"burger-house/models"
	"burger-house/repositories"
	"burger-house/utils"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

type AdminPromotionController struct {
	promotions *repositories.PromotionRepository
}

func NewAdminPromotionController() *AdminPromotionController {
	return &AdminPromotionController{promotions: repositories.NewPromotionRepository()}
}

// parseValidUntil accepts a date or RFC3339 timestamp; empty means no expiry.
func parseValidUntil(raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func (ctrl *AdminPromotionController) List(c *gin.Context) {
	promotions, err := ctrl.promotions.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get promotions",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Promotions retrieved",
		Data:    promotions,
	})
}

func (ctrl *AdminPromotionController) Create(c *gin.Context) {
	var req models.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	validUntil, ok := parseValidUntil(req.ValidUntil)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid valid_until date",
		})
		return
	}

	promotion, err := ctrl.promotions.Create(c.Request.Context(), req, validUntil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create promotion",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Promotion created",
		Data:    promotion,
	})
}

func (ctrl *AdminPromotionController) Update(c *gin.Context) {
	var req models.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	validUntil, ok := parseValidUntil(req.ValidUntil)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid valid_until date",
		})
		return
	}

	if err := ctrl.promotions.Update(c.Request.Context(), c.Param("id"), req, validUntil); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update promotion",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Promotion updated",
	})
}

func (ctrl *AdminPromotionController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file required",
		})
		return
	}

	localPath, err := utils.UploadFile(c, fileHeader, "promotions")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	imageURL := "/uploads/" + filepath.ToSlash(localPath)
	if libs.CloudinaryConfigured() {
		hosted, err := libs.UploadToCloudinary(filepath.Join(config.AppConfig.UploadDir, localPath), "promotions")
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to upload image",
				Error:   err.Error(),
			})
			return
		}
		imageURL = hosted
	}

	if err := ctrl.promotions.UpdateImage(c.Request.Context(), c.Param("id"), imageURL); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save image",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Image uploaded",
		Data:    gin.H{"image": imageURL},
	})
}

func (ctrl *AdminPromotionController) Delete(c *gin.Context) {
	if err := ctrl.promotions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete promotion",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Promotion deleted",
	})
}
