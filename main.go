package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/logger"
	common_middleware "github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/middleware"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/config"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/controllers"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/database"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/kafka"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/middleware"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/repository"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/routes"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.Initialize(cfg.Env)
	defer log.Sync()

	client, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(client); err != nil {
			log.Warn("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(startupCtx); err != nil {
		log.Fatal("failed to create indexes", zap.Error(err))
	}
	orderRepo := repository.NewOrderRepository(db)

	catalog, err := services.LoadCatalog(startupCtx, repository.NewCatalogRepository(db))
	if err != nil {
		log.Fatal("failed to load catalog", zap.Error(err))
	}
	log.Info("food catalog loaded",
		zap.Int("items", len(catalog.Items())),
		zap.Int("categories", len(catalog.Categories())))

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, geocode caching disabled", zap.Error(err))
		}
	}

	var orderEvents services.OrderEventPublisher
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewOrderEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, log)
		defer producer.Close()
		orderEvents = producer
	}

	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService, services.NewGoogleVerifier(cfg.GoogleClientID))
	orderService := services.NewOrderService(orderRepo, orderEvents, log)
	verifier := services.NewPaymentVerifier(cfg.RazorpayKeySecret)
	gateway := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	geocode := services.NewGeocodeService(cfg.OpenCageAPIKey, redisClient)

	authController := controllers.NewAuthController(authService, geocode)
	foodController := controllers.NewFoodController(catalog)
	orderController := controllers.NewOrderController(orderService)
	paymentController := controllers.NewPaymentController(verifier, gateway, cfg.RazorpayKeyID, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(common_middleware.RequestID())
	r.Use(common_middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "auth-token"},
		MaxAge:       12 * time.Hour,
	}))

	routes.Register(r, middleware.Auth(tokenService), authController, foodController, orderController, paymentController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
