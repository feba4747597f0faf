// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TWO-MIX/mind-space/internal/bookings"
	"github.com/TWO-MIX/mind-space/internal/cafes"
	"github.com/TWO-MIX/mind-space/internal/payforward"
	"github.com/TWO-MIX/mind-space/internal/shared/config"
	"github.com/TWO-MIX/mind-space/internal/shared/middleware"
	"github.com/TWO-MIX/mind-space/internal/users"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config

	usersRepo    users.Repository
	usersService users.Service
	cafesRepo    cafes.Repository
	ledger       *payforward.Ledger
	bookingsRepo bookings.Repository

	sessionAuth gin.HandlerFunc
}

// NewRouter builds the in-memory stores and a router around them. All
// state lives here; a restart starts the storefront over from seed data.
func NewRouter(cfg *config.Config) (*Router, error) {
	cafesRepo, err := cafes.NewRepository(cafes.SeedCatalog(cfg.Catalog.RandSeed, time.Now()))
	if err != nil {
		return nil, err
	}

	usersRepo := users.NewRepository()

	return &Router{
		config:       cfg,
		usersRepo:    usersRepo,
		usersService: users.NewService(usersRepo, cfg.Session),
		cafesRepo:    cafesRepo,
		ledger:       payforward.NewLedger(cfg.PayForward.SeedPoolCredits),
		bookingsRepo: bookings.NewRepository(),
		sessionAuth:  middleware.SessionAuth(usersRepo),
	}, nil
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Prometheus scrape endpoint
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupUserRoutes(api)
		r.setupCafeRoutes(api)
		r.setupPayForwardRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "mind-space-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupUserRoutes configures session and user account routes
func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userController := users.NewController(r.usersService)
	users.SetupUserRoutes(rg, userController, r.sessionAuth)
}

// setupCafeRoutes configures the public catalog routes
func (r *Router) setupCafeRoutes(rg *gin.RouterGroup) {
	cafeService := cafes.NewService(r.cafesRepo)
	cafeController := cafes.NewController(cafeService)
	cafes.SetupCafeRoutes(rg, cafeController)
}

// setupPayForwardRoutes configures the community credit pool routes
func (r *Router) setupPayForwardRoutes(rg *gin.RouterGroup) {
	payForwardService := payforward.NewService(r.ledger, r.usersService)
	payForwardController := payforward.NewController(payForwardService)
	payforward.SetupPayForwardRoutes(rg, payForwardController, r.sessionAuth)
}

// setupBookingRoutes configures the seat booking ledger routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingService := bookings.NewService(r.bookingsRepo, r.cafesRepo, r.usersService)
	bookingController := bookings.NewController(bookingService)
	bookings.SetupBookingRoutes(rg, bookingController, r.sessionAuth)
}
