package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bizdesk/docs"
	"bizdesk/internal/auth"
	"bizdesk/internal/cache"
	"bizdesk/internal/config"
	"bizdesk/internal/db"
	"bizdesk/internal/handler"
	"bizdesk/internal/model"
	"bizdesk/internal/repository"
	"bizdesk/internal/router"
	"bizdesk/internal/service"
)

// @title Bizdesk API
// @version 1.0
// @description Business management API with permission-gated access to customers, orders, services, tasks, tickets and users.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Service{},
		&model.Order{},
		&model.Task{},
		&model.Ticket{},
		&model.Comment{},
		&model.ActivityLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	customerRepo := repository.NewCustomerRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	authService := service.NewAuthService(userRepo, jwtService, sessionStore, sessionTTL)
	userService := service.NewUserService(userRepo, activityService)
	customerService := service.NewCustomerService(customerRepo, cacheClient, activityService)
	orderService := service.NewOrderService(orderRepo, customerRepo, serviceRepo, activityService)
	catalogService := service.NewCatalogService(serviceRepo, activityService)
	taskService := service.NewTaskService(taskRepo, userRepo, activityService)
	ticketService := service.NewTicketService(ticketRepo, customerRepo, activityService)
	commentService := service.NewCommentService(commentRepo, ticketRepo, activityService)
	dashboardService := service.NewDashboardService(customerRepo, orderRepo, taskRepo, ticketRepo, activityRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	navHandler := handler.NewNavHandler()
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	customerHandler := handler.NewCustomerHandler(customerService, orderService)
	orderHandler := handler.NewOrderHandler(orderService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	taskHandler := handler.NewTaskHandler(taskService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)
	activityHandler := handler.NewActivityHandler(activityService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		sessionStore,
		authHandler,
		navHandler,
		dashboardHandler,
		customerHandler,
		orderHandler,
		catalogHandler,
		taskHandler,
		ticketHandler,
		commentHandler,
		userHandler,
		activityHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
