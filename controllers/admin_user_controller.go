package controllers

import (
	"burger-house/models"
	"burger-house/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminUserController struct {
	users *repositories.UserRepository
}

func NewAdminUserController() *AdminUserController {
	return &AdminUserController{users: repositories.NewUserRepository()}
}

func (ctrl *AdminUserController) List(c *gin.Context) {
	users, err := ctrl.users.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get users",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Users retrieved",
		Data:    users,
	})
}

func (ctrl *AdminUserController) Update(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.users.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update user",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User updated",
	})
}

func (ctrl *AdminUserController) Delete(c *gin.Context) {
	// Admins cannot delete their own account while logged into it.
	if c.GetString("user_id") == c.Param("id") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Cannot delete your own account",
		})
		return
	}

	if err := ctrl.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete user",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User deleted",
	})
}
