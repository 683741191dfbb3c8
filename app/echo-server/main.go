package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerCompass/app/echo-server/router"
	"careerCompass/business/catalog"
	"careerCompass/business/favorites"
	"careerCompass/business/feedback"
	"careerCompass/business/maintenance"
	"careerCompass/business/opportunity"
	"careerCompass/business/quiz"
	"careerCompass/business/recommend"
	"careerCompass/business/trainer"
	userService "careerCompass/business/user"
	"careerCompass/internal/middleware"
	"careerCompass/internal/repository/aigateway"
	"careerCompass/internal/repository/notification"
	psqlRepo "careerCompass/internal/repository/postgres"
	redisRepo "careerCompass/internal/repository/redis"
	"careerCompass/internal/rest"
	"careerCompass/pkg/config"
	"careerCompass/pkg/database"
	redisdb "careerCompass/pkg/database/redis"
	"careerCompass/pkg/logger"
	"careerCompass/pkg/metrics"
	"careerCompass/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Career Compass", "version", cfg.App.Version)

	metrics.Init()
	utils.InitJWT(cfg.JWT.SecretKey)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			BaseURL:           cfg.Mailjet.MailjetBaseUrl,
			BasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			BasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			SenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			SenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init AI gateway
	gateway := aigateway.NewGatewayRepository(
		aigateway.GatewayConfig{
			BaseURL: cfg.AI.BaseURL,
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	questionRepo := psqlRepo.NewQuizQuestionRepository(db)
	sessionRepo := psqlRepo.NewQuizSessionRepository(db)
	responseRepo := psqlRepo.NewQuizResponseRepository(db)
	careerRepo := psqlRepo.NewCareerRepository(db)
	recommendationRepo := psqlRepo.NewRecommendationRepository(db)
	feedbackRepo := psqlRepo.NewFeedbackRepository(db)
	performanceRepo := psqlRepo.NewPerformanceRepository(db)
	collegeRepo := psqlRepo.NewCollegeRepository(db)
	scholarshipRepo := psqlRepo.NewScholarshipRepository(db)
	jobRepo := psqlRepo.NewJobPostingRepository(db)
	faqRepo := psqlRepo.NewFAQRepository(db)
	ngoRepo := psqlRepo.NewNGORepository(db)
	favoriteRepo := psqlRepo.NewFavoriteRepository(db)
	contentRepo := psqlRepo.NewContentRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	usrService := userService.NewUserService(userRepo, validate, mailjetEmail, tokenRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	quizService := quiz.NewService(questionRepo, sessionRepo, responseRepo)
	recommendService := recommend.NewService(careerRepo, recommendationRepo, sessionRepo, gateway)
	opportunityService := opportunity.NewService(gateway)
	feedbackService := feedback.NewService(feedbackRepo)
	trainerService := trainer.NewService(performanceRepo, feedbackRepo, contentRepo)
	maintenanceService := maintenance.NewService(scholarshipRepo, jobRepo, collegeRepo)
	collegeService := catalog.NewCollegeService(collegeRepo)
	scholarshipService := catalog.NewScholarshipService(scholarshipRepo)
	jobService := catalog.NewJobPostingService(jobRepo)
	referenceService := catalog.NewReferenceService(faqRepo, ngoRepo)
	favoritesService := favorites.NewService(favoriteRepo)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	quizHandler := rest.NewQuizHandler(quizService)
	recommendationHandler := rest.NewRecommendationHandler(recommendService)
	opportunityHandler := rest.NewOpportunityHandler(opportunityService)
	feedbackHandler := rest.NewFeedbackHandler(feedbackService)
	jobsHandler := rest.NewJobsHandler(maintenanceService, trainerService)
	collegeHandler := rest.NewCollegeHandler(collegeService)
	scholarshipHandler := rest.NewScholarshipHandler(scholarshipService)
	jobPostingHandler := rest.NewJobPostingHandler(jobService)
	referenceHandler := rest.NewReferenceHandler(referenceService)
	favoritesHandler := rest.NewFavoritesHandler(favoritesService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.Auth(usrService)
	adminOnly := middleware.AdminOnly()
	selfOrAdmin := middleware.SelfOrAdmin()
	serviceAuth := middleware.ServiceAuth(cfg.App.ServiceRoleKey)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly, selfOrAdmin)
	router.SetupQuizRoutes(api, quizHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendationHandler, opportunityHandler, authRequired)
	router.SetupFeedbackRoutes(api, feedbackHandler, authRequired)
	router.SetupJobsRoutes(api, jobsHandler, serviceAuth)
	router.SetupCollegeRoutes(api, collegeHandler, authRequired, adminOnly)
	router.SetupScholarshipRoutes(api, scholarshipHandler, authRequired, adminOnly)
	router.SetupJobPostingRoutes(api, jobPostingHandler, authRequired, adminOnly)
	router.SetupReferenceRoutes(api, referenceHandler, authRequired, adminOnly)
	router.SetupFavoritesRoutes(api, favoritesHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
