package controllers

import (
	"burger-house/models"
	"burger-house/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the public, read-only menu data.
type CatalogController struct {
	categories *repositories.CategoryRepository
	products   *repositories.ProductRepository
	extras     *repositories.ExtraRepository
	promotions *repositories.PromotionRepository
	company    *repositories.CompanyRepository
}

func NewCatalogController() *CatalogController {
	return &CatalogController{
		categories: repositories.NewCategoryRepository(),
		products:   repositories.NewProductRepository(),
		extras:     repositories.NewExtraRepository(),
		promotions: repositories.NewPromotionRepository(),
		company:    repositories.NewCompanyRepository(),
	}
}

// @Summary Get all categories
// @Description Get menu categories in display order
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
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

// @Summary Get products
// @Description Get active products, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param category_id query string false "Category ID"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	products, err := ctrl.products.FindActive(c.Request.Context(), c.Query("category_id"))
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

// @Summary Get extras
// @Description Get active add-ons in display order
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /extras [get]
func (ctrl *CatalogController) GetExtras(c *gin.Context) {
	extras, err := ctrl.extras.FindActive(c.Request.Context())
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

// @Summary Get promotions
// @Description Get active promotions still inside their validity window
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /promotions [get]
func (ctrl *CatalogController) GetPromotions(c *gin.Context) {
	promotions, err := ctrl.promotions.FindCurrent(c.Request.Context())
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

// @Summary Get company info
// @Description Get the storefront's company record
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /company [get]
func (ctrl *CatalogController) GetCompanyInfo(c *gin.Context) {
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
