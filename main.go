package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelier/config"
	"hotelier/database"
	bookingRepoPkg "hotelier/database/repository/booking"
	hotelRepoPkg "hotelier/database/repository/hotel"
	userRepoPkg "hotelier/database/repository/user"
	"hotelier/handlers"
	"hotelier/middleware"
	"hotelier/routes"
	"hotelier/services/booking"
	"hotelier/services/embedding"
	"hotelier/services/hotel"
	"hotelier/services/payment"
	"hotelier/services/user"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitCache()

	embedder, err := embedding.NewGeminiEmbedder(context.Background(), config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize embedding client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)

	// services.
	hotelService := &hotel.DefaultHotelService{
		Repo:     hotelRepo,
		Embedder: embedder,
		Cache:    utils.GetCacheClient(),
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Hotels:   hotelRepo,
		Logger:   logger,
	}
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	paymentService := payment.NewPaymentService(
		payment.NewStripeCheckout(config.AppConfig.StripeKey),
		bookingRepo,
		hotelRepo,
		config.AppConfig.FrontendURL,
		logger,
	)

	hotelHandler := handlers.NewHotelHandler(hotelService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	authHandler := handlers.NewAuthHandler(userService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, config.AppConfig.StripeWebhookSecret, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Hotel endpoints.
		GetAllHotelsHandler: hotelHandler.GetAllHotelsHandler,
		SearchHotelsHandler: hotelHandler.SearchHotelsHandler,
		GetHotelByIDHandler: hotelHandler.GetHotelByIDHandler,
		CreateHotelHandler:  hotelHandler.CreateHotelHandler,
		UpdateHotelHandler:  hotelHandler.UpdateHotelHandler,
		PatchHotelHandler:   hotelHandler.PatchHotelHandler,
		DeleteHotelHandler:  hotelHandler.DeleteHotelHandler,

		// Booking endpoints.
		CreateBookingHandler:   bookingHandler.CreateBookingHandler,
		GetUserBookingsHandler: bookingHandler.GetUserBookingsHandler,

		// Payment endpoints.
		CreateCheckoutSessionHandler: paymentHandler.CreateCheckoutSessionHandler,
		SessionStatusHandler:         paymentHandler.SessionStatusHandler,
		StripeWebhookHandler:         paymentHandler.StripeWebhookHandler,

		// User endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
