package controllers

import (
	"burger-house/models"
	"burger-house/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminExtraController struct {
	extras *repositories.ExtraRepository
}

func NewAdminExtraController() *AdminExtraController {
	return &AdminExtraController{extras: repositories.NewExtraRepository()}
}

func (ctrl *AdminExtraController) List(c *gin.Context) {
	extras, err := ctrl.extras.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get extras",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Extras retrieved",
		Data:    extras,
	})
}

func (ctrl *AdminExtraController) Create(c *gin.Context) {
	var req models.ExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	extra, err := ctrl.extras.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create extra",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Extra created",
		Data:    extra,
	})
}

func (ctrl *AdminExtraController) Update(c *gin.Context) {
	var req models.ExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.extras.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update extra",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Extra updated",
	})
}

func (ctrl *AdminExtraController) Delete(c *gin.Context) {
	if err := ctrl.extras.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete extra",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Extra deleted",
	})
}

func (ctrl *AdminExtraController) Reorder(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.extras.Reorder(c.Request.Context(), c.Param("id"), req.Direction); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to reorder extra",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order updated",
	})
}
