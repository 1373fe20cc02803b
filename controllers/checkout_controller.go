package controllers

import (
	"burger-house/models"
	"burger-house/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	orders *services.OrderService
}

func NewCheckoutController(orders *services.OrderService) *CheckoutController {
	return &CheckoutController{orders: orders}
}

// @Summary Submit order
// @Description Validate the checkout form, confirm the order, notify the merchant webhook and clear the cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param st query string false "Session token"
// @Param checkout body models.CheckoutRequest true "Checkout form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Session token required",
		})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	result, err := ctrl.orders.Submit(c.Request.Context(), token, req)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: validationErr.Message,
			})
		case errors.Is(err, services.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Success: false,
				Message: "Pedido já está sendo enviado. Aguarde.",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Erro ao enviar pedido. Tente novamente.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order submitted",
		Data:    result,
	})
}
