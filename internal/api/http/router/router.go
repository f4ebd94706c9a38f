package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpctx "github.com/dtroode/medsetu-storefront/internal/api/http/context"
	"github.com/dtroode/medsetu-storefront/internal/api/http/handler"
	"github.com/dtroode/medsetu-storefront/internal/api/http/middleware"
	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

// HealthReporter reports backend reachability.
type HealthReporter interface {
	Healthy() bool
}

// Router represents the storefront HTTP router.
// It wires browser resolution, logging and role guards in front of the handlers.
type Router struct {
	workspaces     middleware.WorkspaceResolver
	contextManager *httpctx.Manager
	cookie         middleware.CookieOptions
	health         HealthReporter
	logger         *logger.Logger
	origins        []string
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - workspaces: Resolves the workspace of each browser
//   - contextManager: Carries browser id and workspace through the request
//   - cookie: Browser cookie settings
//   - health: Backend health reporter for /healthz
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	workspaces middleware.WorkspaceResolver,
	contextManager *httpctx.Manager,
	cookie middleware.CookieOptions,
	health HealthReporter,
	logger *logger.Logger,
) *Router {
	return &Router{
		workspaces:     workspaces,
		contextManager: contextManager,
		cookie:         cookie,
		health:         health,
		logger:         logger,
	}
}

// WithCORS allows credentialed cross-origin requests from the storefront
// frontend origins.
func (r *Router) WithCORS(origins []string) *Router {
	r.origins = origins
	return r
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.contextManager, r.logger)
	browser := middleware.NewBrowser(r.workspaces, r.contextManager, r.cookie, r.logger)

	e := gin.New()
	e.Use(gin.Recovery(), logging.Handle)
	if len(r.origins) > 0 {
		e.Use(cors.New(cors.Config{
			AllowOrigins:     r.origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	e.GET("/healthz", r.healthz)

	api := e.Group("/api", browser.Handle)
	r.registerAuthRoutes(api)
	r.registerCartRoutes(api)
	r.registerCatalogRoutes(api)
	r.registerCustomerRoutes(api)
	r.registerStoreRoutes(api)
	r.registerPlatformRoutes(api)

	return e
}

func (r *Router) healthz(c *gin.Context) {
	if !r.health.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "backend": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": "reachable"})
}

func (r *Router) guard(roles ...model.Role) gin.HandlerFunc {
	return middleware.RequireRole(r.contextManager, r.logger, roles...)
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	h := handler.NewAuth(r.contextManager, r.logger)

	auth := api.Group("/auth")
	auth.GET("/session", h.Session)
	auth.POST("/login", h.Login)
	auth.POST("/register", h.Register)
	auth.POST("/logout", h.Logout)
	auth.POST("/validate", h.Validate)
	auth.GET("/profile", r.guard(), h.Profile)
	auth.PUT("/profile", r.guard(), h.UpdateProfile)
}

func (r *Router) registerCartRoutes(api *gin.RouterGroup) {
	h := handler.NewCart(r.contextManager, r.logger)

	cart := api.Group("/cart")
	cart.GET("", h.Get)
	cart.DELETE("", h.Clear)
	cart.GET("/quote", h.Quote)
	cart.POST("/items", h.AddItem)
	cart.PUT("/items/:id", h.UpdateQuantity)
	cart.DELETE("/items/:id", h.RemoveItem)
}

func (r *Router) registerCatalogRoutes(api *gin.RouterGroup) {
	h := handler.NewCatalog(r.contextManager, r.logger)

	meds := api.Group("/medicines")
	meds.GET("", h.List)
	meds.GET("/featured", h.Featured)
	meds.GET("/search", h.Search)
	meds.GET("/:id", h.Get)
}

func (r *Router) registerCustomerRoutes(api *gin.RouterGroup) {
	checkout := handler.NewCheckout(r.contextManager, r.logger)
	orders := handler.NewOrders(r.contextManager, r.logger)
	prescriptions := handler.NewPrescriptions(r.contextManager, r.logger)

	customer := api.Group("", r.guard(model.RoleCustomer))
	customer.POST("/checkout", checkout.PlaceOrder)
	customer.GET("/orders", orders.List)
	customer.GET("/orders/:id", orders.Get)
	customer.DELETE("/orders/:id", orders.Cancel)
	customer.GET("/prescriptions", prescriptions.List)
	customer.POST("/prescriptions", prescriptions.Upload)
	customer.GET("/prescriptions/image", prescriptions.Image)
}

func (r *Router) registerStoreRoutes(api *gin.RouterGroup) {
	h := handler.NewStoreDashboard(r.contextManager, r.logger)

	store := api.Group("/store", r.guard(model.RoleStoreOperator))
	store.GET("/my-store", h.MyStore)
	store.GET("/orders", h.Orders)
	store.PUT("/orders/:id/status", h.UpdateOrderStatus)
	store.GET("/stats", h.Stats)

	inventory := handler.NewInventory(r.contextManager, r.logger)
	store.POST("/medicines", inventory.Create)
	store.POST("/medicines/bulk-upload", inventory.BulkUpload)
	store.PUT("/medicines/:id", inventory.Update)
	store.DELETE("/medicines/:id", inventory.Delete)

	application := handler.NewStoreApplication(r.contextManager, r.logger)
	apply := api.Group("/store-application", r.guard())
	apply.POST("/submit", application.Submit)
	apply.GET("/status", application.Status)
}

func (r *Router) registerPlatformRoutes(api *gin.RouterGroup) {
	h := handler.NewPlatformAdmin(r.contextManager, r.logger)

	admin := api.Group("/platform-admin", r.guard(model.RolePlatformAdmin))
	admin.GET("/stats", h.Stats)
	admin.GET("/users", h.Users)
	admin.GET("/stores", h.Stores)
	admin.PUT("/stores/:id/status", h.UpdateStoreStatus)
}
