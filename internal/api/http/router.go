package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/http/handlers"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Users      *handlers.UsersHandler
	Admins     *handlers.AdminsHandler
	Products   *handlers.ProductsHandler
	Categories *handlers.CategoriesHandler
	Orders     *handlers.OrdersHandler
	Inbox      *handlers.InboxHandler
	Metrics    *observability.Metrics

	// UserAuth is the user binding of the deployment: bearer or session, never both.
	UserAuth  auth.Binding
	AdminAuth auth.Binding
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	userAuth := cfg.UserAuth.Handle
	adminAuth := cfg.AdminAuth.Handle
	api := app.Group("/api")

	users := api.Group("/user")
	users.Get("/", cfg.Users.List)
	users.Post("/add", cfg.Users.Create)
	users.Post("/login", cfg.Users.Login)
	users.Post("/logout", userAuth, cfg.Users.Logout)
	users.Get("/:ID", cfg.Users.Get)
	users.Put("/:ID", userAuth, auth.RequireSelf("ID"), cfg.Users.Update)
	users.Delete("/:ID", userAuth, auth.RequireSelf("ID"), cfg.Users.Delete)

	admins := api.Group("/admin")
	admins.Post("/login", cfg.Admins.Login)
	admins.Get("/", adminAuth, cfg.Admins.List)
	admins.Post("/add", adminAuth, cfg.Admins.Create)
	admins.Get("/:ID", adminAuth, cfg.Admins.Get)
	admins.Put("/:ID", adminAuth, cfg.Admins.Update)
	admins.Delete("/:ID", adminAuth, cfg.Admins.Delete)

	products := api.Group("/product")
	products.Get("/", cfg.Products.List)
	products.Get("/:ID", cfg.Products.Get)
	products.Post("/add", adminAuth, cfg.Products.Create)
	products.Put("/:ID", adminAuth, cfg.Products.Update)
	products.Delete("/:ID", adminAuth, cfg.Products.Delete)

	categories := api.Group("/category")
	categories.Get("/", cfg.Categories.List)
	categories.Get("/:ID", cfg.Categories.Get)
	categories.Post("/add", adminAuth, cfg.Categories.Create)
	categories.Put("/:ID", adminAuth, cfg.Categories.Update)
	categories.Delete("/:ID", adminAuth, cfg.Categories.Delete)

	orders := api.Group("/order")
	orders.Post("/add", userAuth, cfg.Orders.Create)
	orders.Get("/", adminAuth, cfg.Orders.List)
	orders.Get("/:ID", adminAuth, cfg.Orders.Get)
	orders.Put("/:ID", adminAuth, cfg.Orders.Update)
	orders.Delete("/:ID", adminAuth, cfg.Orders.Delete)

	inbox := api.Group("/inbox")
	inbox.Post("/add", cfg.Inbox.Create)
	inbox.Get("/", adminAuth, cfg.Inbox.List)
	inbox.Get("/:ID", adminAuth, cfg.Inbox.Get)
	inbox.Delete("/:ID", adminAuth, cfg.Inbox.Delete)
}
