package router

import (
	"net/http"
	"os"
	"strings"

	docs "github.com/neuralcash/backend/api"
	"github.com/neuralcash/backend/internal/auth"
	"github.com/neuralcash/backend/internal/controllers/healthz"
	v1 "github.com/neuralcash/backend/internal/controllers/v1"
	"github.com/neuralcash/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router with all middlewares.
func Config() (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if err := registerPrometheusMetrics(); err != nil {
		return nil, err
	}
	r.Use(MetricsMiddleware())

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.ErrorResponse{Status: "error", Message: "Not found"})
	})

	log.Info().Str("version", version).Msg("Router")

	return r, nil
}

// Teardown unregisters the Prometheus metrics. It is needed so that tests
// can set up the router repeatedly.
func Teardown() {
	unregisterPrometheusMetrics()
}

// AttachRoutes attaches the API routes to the router group that is passed in.
//
// All /api/v1 routes except health require a bearer token resolved by the
// verifier.
func AttachRoutes(co v1.Controller, verifier auth.Verifier, group *gin.RouterGroup) {
	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Title = "NeuralCash"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for NeuralCash, a personal finance tracker."
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := group.Group("/api/v1")
	healthz.RegisterRoutes(api.Group("/health"))

	authenticated := api.Group("", AuthMiddleware(verifier))
	co.RegisterTransactionRoutes(authenticated.Group("/transactions"))
	co.RegisterCategoryRoutes(authenticated.Group("/categories"))
	co.RegisterSavingsRoutes(authenticated.Group("/savings"))
	co.RegisterTripRoutes(authenticated.Group("/trips"))
	co.RegisterAnalyticsRoutes(authenticated.Group("/analytics"))
}
