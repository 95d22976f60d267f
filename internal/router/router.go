package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bizdesk/internal/auth"
	"bizdesk/internal/config"
	"bizdesk/internal/handler"
	"bizdesk/internal/middleware"
	"bizdesk/internal/rbac"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	sessionStore auth.SessionStoreInterface,
	authHandler *handler.AuthHandler,
	navHandler *handler.NavHandler,
	dashboardHandler *handler.DashboardHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
	catalogHandler *handler.CatalogHandler,
	taskHandler *handler.TaskHandler,
	ticketHandler *handler.TicketHandler,
	commentHandler *handler.CommentHandler,
	userHandler *handler.UserHandler,
	activityHandler *handler.ActivityHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes: the JWT check rejects garbage tokens, the session
	// guard restores the stored session record and attaches it.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization,
		}),
		middleware.SessionGuard(jwtService, sessionStore),
	)

	secured.GET("/me", authHandler.Me)
	secured.GET("/nav", navHandler.Entries)

	secured.GET("/dashboard", dashboardHandler.Summary,
		middleware.RequirePermission(rbac.ModuleDashboard, rbac.ActionView))

	// Customers
	secured.GET("/customers", customerHandler.List,
		middleware.RequirePermission(rbac.ModuleCustomers, rbac.ActionView))
	secured.GET("/customers/export", customerHandler.Export,
		middleware.RequirePermission(rbac.ModuleCustomers, rbac.ActionExport))
	secured.GET("/customers/:id", customerHandler.Get,
		middleware.RequirePermission(rbac.ModuleCustomers, rbac.ActionView))
	secured.GET("/customers/:id/orders", customerHandler.Orders,
		middleware.RequirePermission(rbac.ModuleOrders, rbac.ActionView))
	secured.POST("/customers", customerHandler.Create,
		middleware.RequirePermission(rbac.ModuleCustomers, rbac.ActionCreate))
	secured.PUT("/customers/:id", customerHandler.Update,
		middleware.RequirePermission(rbac.ModuleCustomers, rbac.ActionEdit))
	secured.DELETE("/customers/:id", customerHandler.Delete,
		middleware.RequirePermission(rbac.ModuleCustomers, rbac.ActionDelete))

	// Orders
	secured.GET("/orders", orderHandler.List,
		middleware.RequirePermission(rbac.ModuleOrders, rbac.ActionView))
	secured.GET("/orders/export", orderHandler.Export,
		middleware.RequirePermission(rbac.ModuleOrders, rbac.ActionExport))
	secured.GET("/orders/:id", orderHandler.Get,
		middleware.RequirePermission(rbac.ModuleOrders, rbac.ActionView))
	secured.POST("/orders", orderHandler.Create,
		middleware.RequirePermission(rbac.ModuleOrders, rbac.ActionCreate))
	secured.PUT("/orders/:id", orderHandler.Update,
		middleware.RequirePermission(rbac.ModuleOrders, rbac.ActionEdit))
	secured.PATCH("/orders/:id/status", orderHandler.UpdateStatus,
		middleware.RequirePermission(rbac.ModuleOrders, rbac.ActionEdit))
	secured.DELETE("/orders/:id", orderHandler.Delete,
		middleware.RequirePermission(rbac.ModuleOrders, rbac.ActionDelete))

	// Service catalog
	secured.GET("/services", catalogHandler.List,
		middleware.RequirePermission(rbac.ModuleServices, rbac.ActionView))
	secured.GET("/services/:id", catalogHandler.Get,
		middleware.RequirePermission(rbac.ModuleServices, rbac.ActionView))
	secured.POST("/services", catalogHandler.Create,
		middleware.RequirePermission(rbac.ModuleServices, rbac.ActionCreate))
	secured.PUT("/services/:id", catalogHandler.Update,
		middleware.RequirePermission(rbac.ModuleServices, rbac.ActionEdit))
	secured.DELETE("/services/:id", catalogHandler.Delete,
		middleware.RequirePermission(rbac.ModuleServices, rbac.ActionDelete))

	// Tasks
	secured.GET("/tasks", taskHandler.List,
		middleware.RequirePermission(rbac.ModuleTasks, rbac.ActionView))
	secured.GET("/tasks/:id", taskHandler.Get,
		middleware.RequirePermission(rbac.ModuleTasks, rbac.ActionView))
	secured.POST("/tasks", taskHandler.Create,
		middleware.RequirePermission(rbac.ModuleTasks, rbac.ActionCreate))
	secured.PUT("/tasks/:id", taskHandler.Update,
		middleware.RequirePermission(rbac.ModuleTasks, rbac.ActionEdit))
	secured.DELETE("/tasks/:id", taskHandler.Delete,
		middleware.RequirePermission(rbac.ModuleTasks, rbac.ActionDelete))

	// Tickets
	secured.GET("/tickets", ticketHandler.List,
		middleware.RequirePermission(rbac.ModuleTickets, rbac.ActionView))
	secured.GET("/tickets/:id", ticketHandler.Get,
		middleware.RequirePermission(rbac.ModuleTickets, rbac.ActionView))
	secured.POST("/tickets", ticketHandler.Create,
		middleware.RequirePermission(rbac.ModuleTickets, rbac.ActionCreate))
	secured.PUT("/tickets/:id", ticketHandler.Update,
		middleware.RequirePermission(rbac.ModuleTickets, rbac.ActionEdit))
	secured.DELETE("/tickets/:id", ticketHandler.Delete,
		middleware.RequirePermission(rbac.ModuleTickets, rbac.ActionDelete))

	// Comments
	secured.GET("/tickets/:id/comments", commentHandler.ListByTicket,
		middleware.RequirePermission(rbac.ModuleComments, rbac.ActionView))
	secured.POST("/tickets/:id/comments", commentHandler.Create,
		middleware.RequirePermission(rbac.ModuleComments, rbac.ActionCreate))
	secured.POST("/comments/:id/vote", commentHandler.Vote,
		middleware.RequirePermission(rbac.ModuleComments, rbac.ActionCreate))
	secured.DELETE("/comments/:id", commentHandler.Delete,
		middleware.RequirePermission(rbac.ModuleComments, rbac.ActionDelete))

	// Directory users. Reads are permission-gated; writes additionally
	// require the administrator role.
	secured.GET("/users", userHandler.List,
		middleware.RequirePermission(rbac.ModuleUsers, rbac.ActionView))
	secured.GET("/users/:id", userHandler.Get,
		middleware.RequirePermission(rbac.ModuleUsers, rbac.ActionView))
	secured.POST("/users", userHandler.Create,
		middleware.RequireRole(rbac.RoleAdministrator))
	secured.PUT("/users/:id", userHandler.Update,
		middleware.RequireRole(rbac.RoleAdministrator))
	secured.PUT("/users/:id/password", userHandler.SetPassword,
		middleware.RequireRole(rbac.RoleAdministrator))
	secured.DELETE("/users/:id", userHandler.Delete,
		middleware.RequireRole(rbac.RoleAdministrator))

	// Activity log
	secured.GET("/activity", activityHandler.List,
		middleware.RequirePermission(rbac.ModuleActivity, rbac.ActionView))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
