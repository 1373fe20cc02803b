package controllers

import (
	"burger-house/models"
	"burger-house/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// @Summary Resolve session
// @Description Storefront entry point: reconciles correlation identifiers from the URL with stored values and returns a usable session token
// @Tags session
// @Produce json
// @Param bot query string false "Bot identifier (phone format)"
// @Param cliente query string false "Client identifier"
// @Param instancia query string false "Instance identifier"
// @Param st query string false "Session token"
// @Success 200 {object} models.Response
// @Router /session [get]
func (ctrl *SessionController) Resolve(c *gin.Context) {
	token := c.Query("st")
	if token == "" {
		// The header carries the previously issued token the client kept.
		token = c.GetHeader("X-Session-Token")
	}

	params := services.SessionParams{
		Bot:          c.Query("bot"),
		Cliente:      c.Query("cliente"),
		Instancia:    c.Query("instancia"),
		SessionToken: token,
	}

	ids, order := ctrl.sessions.Resolve(c.Request.Context(), params)

	data := gin.H{
		"session": ids,
	}
	if order != nil {
		data["order_id"] = order.ID
		data["order_status"] = order.Status
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Session resolved",
		Data:    data,
	})
}
