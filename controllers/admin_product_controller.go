package controllers

import (
	"burger-house/config"
	"burger-house/libs"
	"burger-house/models"
	"burger-house/repositories"
	"burger-house/utils"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type AdminProductController struct {
	products *repositories.ProductRepository
}

func NewAdminProductController() *AdminProductController {
	return &AdminProductController{products: repositories.NewProductRepository()}
}

// @Summary List products
// @Description List all products, active or not (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *AdminProductController) List(c *gin.Context) {
	products, err := ctrl.products.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get products",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
	})
}

// @Summary Create product
// @Description Create a product at the end of the display order (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *AdminProductController) Create(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create product",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created",
		Data:    product,
	})
}

// @Summary Update product
// @Description Update a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *AdminProductController) Update(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.products.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update product",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated",
	})
}

// @Summary Upload product image
// @Description Upload a product image to Cloudinary when configured, otherwise to local storage (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param image formData file true "Image"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/image [post]
func (ctrl *AdminProductController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file required",
		})
		return
	}

	localPath, err := utils.UploadFile(c, fileHeader, "products")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	imageURL := "/uploads/" + filepath.ToSlash(localPath)
	if libs.CloudinaryConfigured() {
		hosted, err := libs.UploadToCloudinary(filepath.Join(config.AppConfig.UploadDir, localPath), "products")
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

	if err := ctrl.products.UpdateImage(c.Request.Context(), c.Param("id"), imageURL); err != nil {
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

// @Summary Delete product
// @Description Delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *AdminProductController) Delete(c *gin.Context) {
	if err := ctrl.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete product",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted",
	})
}

// @Summary Reorder product
// @Description Swap display order with the adjacent product; a move past either end is a no-op (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.ReorderRequest true "Direction"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/reorder [patch]
func (ctrl *AdminProductController) Reorder(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.products.Reorder(c.Request.Context(), c.Param("id"), req.Direction); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to reorder product",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order updated",
	})
}
