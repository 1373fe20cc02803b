package controllers

import (
	"burger-house/models"
	"burger-house/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminCategoryController struct {
	categories *repositories.CategoryRepository
}

func NewAdminCategoryController() *AdminCategoryController {
	return &AdminCategoryController{categories: repositories.NewCategoryRepository()}
}

// @Summary List categories
// @Description List all categories in display order (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/categories [get]
func (ctrl *AdminCategoryController) List(c *gin.Context) {
	categories, err := ctrl.categories.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get categories",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// @Summary Create category
// @Description Create a category at the end of the display order (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *AdminCategoryController) Create(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	cat, err := ctrl.categories.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create category",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Category created",
		Data:    cat,
	})
}

// @Summary Update category
// @Description Update a category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [patch]
func (ctrl *AdminCategoryController) Update(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.categories.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update category",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category updated",
	})
}

// @Summary Delete category
// @Description Delete a category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *AdminCategoryController) Delete(c *gin.Context) {
	if err := ctrl.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete category",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category deleted",
	})
}

// @Summary Reorder category
// @Description Swap display order with the adjacent category; a move past either end is a no-op (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body models.ReorderRequest true "Direction"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id}/reorder [patch]
func (ctrl *AdminCategoryController) Reorder(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.categories.Reorder(c.Request.Context(), c.Param("id"), req.Direction); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to reorder category",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order updated",
	})
}
