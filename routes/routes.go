package routes

import (
	"net/http"
	"time"

	"hotelier/config"
	"hotelier/handlers"
	"hotelier/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// The webhook is registered directly on the engine, outside every
	// auth group. Gin leaves bodies unread until a handler binds them, so
	// the handler receives the raw bytes Stripe signed.
	r.POST("/api/stripe/webhook", hb.StripeWebhookHandler)

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterHotelRoutes registers hotel catalog endpoints. Reads are
// public; mutations require an authenticated admin.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.GET("", hb.GetAllHotelsHandler)
		api.GET("/search", hb.SearchHotelsHandler)
		api.GET("/:id", hb.GetHotelByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
		protected.POST("", hb.CreateHotelHandler)
		protected.PUT("/:id", hb.UpdateHotelHandler)
		protected.PATCH("/:id", hb.PatchHotelHandler)
		protected.DELETE("/:id", hb.DeleteHotelHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateBookingHandler)
		api.GET("/me", hb.GetUserBookingsHandler)
	}
}

// RegisterPaymentRoutes registers checkout endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/create-checkout-session", hb.CreateCheckoutSessionHandler)
		api.GET("/session-status", hb.SessionStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
