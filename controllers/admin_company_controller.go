package controllers

import (
	"burger-house/models"
	"burger-house/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminCompanyController struct {
	company *repositories.CompanyRepository
}

func NewAdminCompanyController() *AdminCompanyController {
	return &AdminCompanyController{company: repositories.NewCompanyRepository()}
}

func (ctrl *AdminCompanyController) Get(c *gin.Context) {
	info, err := ctrl.company.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get company info",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Company info retrieved",
		Data:    info,
	})
}

// @Summary Save company info
// @Description Create or update the singleton company record, including the order webhook URL (Admin)
// @Tags Admin - Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param company body models.CompanyInfoRequest true "Company info"
// @Success 200 {object} models.Response
// @Router /admin/company [put]
func (ctrl *AdminCompanyController) Save(c *gin.Context) {
	var req models.CompanyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	info, err := ctrl.company.Upsert(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save company info",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Company info saved",
		Data:    info,
	})
}
