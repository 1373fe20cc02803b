package controllers

import (
	"burger-house/models"
	"burger-house/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminOrderController struct {
	orders *repositories.OrderRepository
}

func NewAdminOrderController() *AdminOrderController {
	return &AdminOrderController{orders: repositories.NewOrderRepository()}
}

// @Summary List orders
// @Description List all session orders, newest first (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/orders [get]
func (ctrl *AdminOrderController) List(c *gin.Context) {
	orders, err := ctrl.orders.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get orders",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
	})
}
