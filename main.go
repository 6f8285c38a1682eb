// File: gymrat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymrat/config"
	"gymrat/database"
	recordsRepo "gymrat/database/repository/records"
	"gymrat/handlers"
	"gymrat/routes"
	"gymrat/services/admin"
	authSvc "gymrat/services/auth"
	"gymrat/services/booking"
	"gymrat/services/checkout"
	"gymrat/services/contact"
	"gymrat/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitAuthCache()

	latency := time.Duration(config.AppConfig.SimulatedLatencyMS) * time.Millisecond
	store := database.Open(config.AppConfig.DataFile, config.AppConfig.SessionFile, latency)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	repo := recordsRepo.NewStoreRecordRepo(store)

	// services.
	sessionService := &authSvc.DefaultSessionService{
		Repo:  repo,
		Store: store,
		Cache: utils.GetAuthCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Store: store,
	}
	checkoutService := &checkout.DefaultCheckoutService{
		Store: store,
		Repo:  repo,
	}
	contactService := &contact.DefaultContactService{
		Repo: repo,
	}
	adminService := &admin.DefaultAdminService{
		Store: store,
		Repo:  repo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Repo:     repo,
		Auth:     handlers.NewAuthHandler(sessionService),
		User:     handlers.NewUserHandler(sessionService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Checkout: handlers.NewCheckoutHandler(checkoutService),
		Contact:  handlers.NewContactHandler(contactService),
		Admin:    handlers.NewAdminHandler(adminService, contactService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
