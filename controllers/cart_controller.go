package controllers

import (
	"burger-house/models"
	"burger-house/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

func (ctrl *CartController) requireToken(c *gin.Context) (string, bool) {
	token := sessionToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Session token required",
		})
		return "", false
	}
	return token, true
}

// @Summary Get cart
// @Description Get the session's cart lines and item count
// @Tags cart
// @Produce json
// @Param st query string false "Session token"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	token, ok := ctrl.requireToken(c)
	if !ok {
		return
	}

	items := ctrl.carts.Items(token)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data: gin.H{
			"items":      items,
			"item_count": len(items),
		},
	})
}

// @Summary Add cart item
// @Description Append a line to the session's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param st query string false "Session token"
// @Param item body models.AddCartItemRequest true "Item"
// @Success 201 {object} models.Response
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	token, ok := ctrl.requireToken(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	item := ctrl.carts.AddItem(token, models.CartItem{
		Name:         req.Name,
		Price:        req.Price,
		Image:        req.Image,
		Observations: req.Observations,
		Extras:       req.Extras,
	})

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    item,
	})
}

// @Summary Update cart item
// @Description Merge observations and extras into an existing line; unknown ids are ignored
// @Tags cart
// @Accept json
// @Produce json
// @Param st query string false "Session token"
// @Param id path string true "Cart item ID"
// @Param item body models.UpdateCartItemRequest true "Fields to merge"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	token, ok := ctrl.requireToken(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	ctrl.carts.UpdateItem(token, c.Param("id"), req.Observations, req.Extras)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
	})
}

// @Summary Remove cart item
// @Description Remove a line; unknown ids are ignored
// @Tags cart
// @Produce json
// @Param st query string false "Session token"
// @Param id path string true "Cart item ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	token, ok := ctrl.requireToken(c)
	if !ok {
		return
	}

	ctrl.carts.RemoveItem(token, c.Param("id"))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed",
	})
}

// @Summary Clear cart
// @Description Drop every line in the session's cart
// @Tags cart
// @Produce json
// @Param st query string false "Session token"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	token, ok := ctrl.requireToken(c)
	if !ok {
		return
	}

	ctrl.carts.ClearCart(token)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
	})
}
