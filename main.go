// File: slotdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotdesk/config"
	"slotdesk/cron"
	"slotdesk/database"
	bookingRepoPkg "slotdesk/database/repository/booking"
	clientRepoPkg "slotdesk/database/repository/client"
	overrideRepoPkg "slotdesk/database/repository/override"
	serviceRepoPkg "slotdesk/database/repository/service"
	"slotdesk/handlers"
	"slotdesk/middleware"
	"slotdesk/routes"
	"slotdesk/services/booking"
	"slotdesk/services/chat"
	"slotdesk/services/schedule"
	"slotdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepoPkg.NewMongoBookingRepo()
	clients := clientRepoPkg.NewMongoClientRepo()
	overrides := overrideRepoPkg.NewMongoOverrideRepo()
	services := serviceRepoPkg.NewMongoServiceRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings:       bookings,
		Clients:        clients,
		Overrides:      overrides,
		Services:       services,
		Week:           schedule.WeekTableFromConfig(config.AppConfig.BusinessHours),
		Holidays:       schedule.HolidaysFromConfig(config.AppConfig.Holidays),
		DefaultMinutes: config.AppConfig.DefaultServiceMinutes,
		Cache:          booking.NewAvailabilityCache(utils.GetCacheClient()),
	}

	chatService := &chat.DefaultChatService{
		Store:    chat.NewRedisContextStore(utils.GetChatCacheClient()),
		Bookings: bookingService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Override: handlers.NewOverrideHandler(bookingService, logger),
		Chat:     handlers.NewChatHandler(chatService, logger),
		Service:  handlers.NewServiceHandler(services, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitContextSweeper()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatCacheClient()},
		database.MongoClient,
	)

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
