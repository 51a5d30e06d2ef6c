package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/kethil/tempursarihubstore-sub000/internal/api/v1"
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/rest/middleware"
)

type Handlers struct {
	Health         *v1.HealthHandler
	Auth           *v1.AuthHandler
	ServiceRequest *v1.ServiceRequestHandler
	Product        *v1.ProductHandler
	Category       *v1.CategoryHandler
	Cart           *v1.CartHandler
	Order          *v1.OrderHandler
	Profile        *v1.ProfileHandler
}

func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	log *logger.Logger,
	permission *middleware.PermissionMiddleware,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")

	// Public surface: catalogue, cart, checkout, tracking and request
	// submission work without an account.
	public := v1Group.Group("")
	public.Use(middleware.GuestAuthenticateMiddleware(cfg, log))
	{
		auth := public.Group("/auth")
		{
			auth.POST("/signup", handlers.Auth.SignUp)
			auth.POST("/login", handlers.Auth.Login)
		}

		products := public.Group("/products")
		{
			products.GET("", handlers.Product.ListProducts)
			products.GET("/:id", handlers.Product.GetProduct)
		}

		categories := public.Group("/categories")
		{
			categories.GET("", handlers.Category.ListCategories)
			categories.GET("/:id", handlers.Category.GetCategory)
		}

		cart := public.Group("/cart")
		{
			cart.GET("", handlers.Cart.GetCart)
			cart.POST("/items", handlers.Cart.AddItem)
			cart.PUT("/items/:id", handlers.Cart.UpdateItem)
			cart.DELETE("/items/:id", handlers.Cart.RemoveItem)
			cart.DELETE("", handlers.Cart.ClearCart)
		}

		orders := public.Group("/orders")
		{
			orders.POST("/checkout", handlers.Order.Checkout)
			orders.GET("/track/:number", handlers.Order.TrackOrder)
		}

		requests := public.Group("/requests")
		{
			requests.POST("", handlers.ServiceRequest.CreateRequest)
			requests.POST("/documents", handlers.ServiceRequest.UploadDocument)
			requests.GET("/track/:number", handlers.ServiceRequest.TrackRequest)
		}
	}

	// Account surface: any authenticated user.
	private := v1Group.Group("")
	private.Use(middleware.AuthenticateMiddleware(cfg, log))
	{
		private.GET("/profile", handlers.Profile.GetMyProfile)
		private.PUT("/profile", handlers.Profile.UpdateMyProfile)
		private.GET("/my/orders", handlers.Order.ListMyOrders)
		private.GET("/my/requests", handlers.ServiceRequest.ListMyRequests)
	}

	// Admin surface: operator or admin role required.
	operator := v1Group.Group("/admin")
	operator.Use(middleware.AuthenticateMiddleware(cfg, log), permission.RequireStaff())
	{
		requests := operator.Group("/requests")
		{
			requests.GET("", handlers.ServiceRequest.ListRequests)
			requests.GET("/:id", handlers.ServiceRequest.GetRequest)
			requests.GET("/:id/documents", handlers.ServiceRequest.ListDocuments)
			requests.PUT("/:id/status", handlers.ServiceRequest.UpdateStatus)
			requests.POST("/:id/notify", handlers.ServiceRequest.ResendNotification)
		}

		products := operator.Group("/products")
		{
			products.POST("", handlers.Product.CreateProduct)
			products.PUT("/:id", handlers.Product.UpdateProduct)
			products.DELETE("/:id", handlers.Product.DeleteProduct)
		}

		categories := operator.Group("/categories")
		{
			categories.POST("", handlers.Category.CreateCategory)
			categories.PUT("/:id", handlers.Category.UpdateCategory)
			categories.DELETE("/:id", handlers.Category.DeleteCategory)
		}

		orders := operator.Group("/orders")
		{
			orders.GET("", handlers.Order.ListOrders)
			orders.GET("/:id", handlers.Order.GetOrder)
			orders.GET("/:id/history", handlers.Order.GetStatusHistory)
			orders.PUT("/:id/status", handlers.Order.UpdateStatus)
			orders.POST("/bulk-status", handlers.Order.BulkUpdateStatus)
		}
	}

	return router
}
