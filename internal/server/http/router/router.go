package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/photocatalog/internal/config"
	"github.com/polkiloo/photocatalog/internal/metrics"
	"github.com/polkiloo/photocatalog/internal/server/http/handlers"
	"github.com/polkiloo/photocatalog/internal/server/http/middleware"
)

const metricsPath = "/metrics"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger, shopMetrics *metrics.ShopMetrics, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.RedirectTrailingSlash = false

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(shopMetrics.Middleware())
	engine.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{metricsPath}),
		gzip.WithDecompressFn(gzip.DefaultDecompressHandle),
	))

	serviceHandler := handlers.NewServiceHandler(facade, cfg.APIVersion)
	catalogHandler := handlers.NewCatalogHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)

	engine.GET("/", serviceHandler.Root)
	engine.GET("/ping", serviceHandler.Ping)
	engine.GET(metricsPath, gin.WrapH(promhttp.Handler()))

	api := engine.Group("/" + cfg.APIVersion)
	api.GET("/catalog", catalogHandler.List)
	api.GET("/catalog/", catalogHandler.List)

	checkout := api.Group("/checkout")
	checkout.GET("/print-sizes", checkoutHandler.PrintSizes)
	checkout.POST("",
		middleware.RequireContentType(binding.MIMEJSON, binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm),
		checkoutHandler.Place,
	)

	return engine
}
