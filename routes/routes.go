package routes

import (
	"burger-house/config"
	"burger-house/controllers"
	"burger-house/middleware"
	"burger-house/repositories"
	"burger-house/services"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	sessionTTL, err := time.ParseDuration(config.AppConfig.SessionTTL)
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	orderRepo := repositories.NewOrderRepository()
	companyRepo := repositories.NewCompanyRepository()
	extraRepo := repositories.NewExtraRepository()

	cartSvc := services.NewCartService()
	sessionSvc := services.NewSessionService(config.RedisClient, orderRepo, sessionTTL)

	mailSvc, err := services.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		mailSvc = nil
	}

	orderSvc := services.NewOrderService(cartSvc, sessionSvc, orderRepo, companyRepo, extraRepo, mailSvc)

	authCtrl := controllers.NewAuthController()
	catalogCtrl := controllers.NewCatalogController()
	sessionCtrl := controllers.NewSessionController(sessionSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(orderSvc)

	adminCategoryCtrl := controllers.NewAdminCategoryController()
	adminProductCtrl := controllers.NewAdminProductController()
	adminExtraCtrl := controllers.NewAdminExtraController()
	adminPromotionCtrl := controllers.NewAdminPromotionController()
	adminCompanyCtrl := controllers.NewAdminCompanyController()
	adminUserCtrl := controllers.NewAdminUserController()
	adminOrderCtrl := controllers.NewAdminOrderController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", catalogCtrl.GetCategories)
	router.GET("/products", catalogCtrl.GetProducts)
	router.GET("/extras", catalogCtrl.GetExtras)
	router.GET("/promotions", catalogCtrl.GetPromotions)
	router.GET("/company", catalogCtrl.GetCompanyInfo)

	router.GET("/session", sessionCtrl.Resolve)

	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

	router.POST("/checkout", checkoutCtrl.Submit)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/categories", adminCategoryCtrl.List)
		admin.POST("/categories", adminCategoryCtrl.Create)
		admin.PATCH("/categories/:id", adminCategoryCtrl.Update)
		admin.DELETE("/categories/:id", adminCategoryCtrl.Delete)
		admin.PATCH("/categories/:id/reorder", adminCategoryCtrl.Reorder)

		admin.GET("/products", adminProductCtrl.List)
		admin.POST("/products", adminProductCtrl.Create)
		admin.PATCH("/products/:id", adminProductCtrl.Update)
		admin.DELETE("/products/:id", adminProductCtrl.Delete)
		admin.PATCH("/products/:id/reorder", adminProductCtrl.Reorder)
		admin.POST("/products/:id/image", adminProductCtrl.UploadImage)

		admin.GET("/extras", adminExtraCtrl.List)
		admin.POST("/extras", adminExtraCtrl.Create)
		admin.PATCH("/extras/:id", adminExtraCtrl.Update)
		admin.DELETE("/extras/:id", adminExtraCtrl.Delete)
		admin.PATCH("/extras/:id/reorder", adminExtraCtrl.Reorder)

		admin.GET("/promotions", adminPromotionCtrl.List)
		admin.POST("/promotions", adminPromotionCtrl.Create)
		admin.PATCH("/promotions/:id", adminPromotionCtrl.Update)
		admin.DELETE("/promotions/:id", adminPromotionCtrl.Delete)
		admin.POST("/promotions/:id/image", adminPromotionCtrl.UploadImage)

		admin.GET("/company", adminCompanyCtrl.Get)
		admin.PUT("/company", adminCompanyCtrl.Save)

		admin.GET("/users", adminUserCtrl.List)
		admin.PATCH("/users/:id", adminUserCtrl.Update)
		admin.DELETE("/users/:id", adminUserCtrl.Delete)

		admin.GET("/orders", adminOrderCtrl.List)
	}

	router.Static("/uploads", "./uploads")
}
