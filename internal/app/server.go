package app

import (
	"net/http"
	"strconv"

	"tag-ledger/internal/handlers"
	"tag-ledger/internal/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer builds the echo instance with every route registered. gatherer backs /metrics.
func (a *App) NewServer(rateLimiter *middleware.RateLimiter, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: a.Config.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID, middleware.UserIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit(a.Config.Import.MaxUploadBytes)))

	healthHandler := handlers.NewHealthCheckHandler(a.DB)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	tagHandler := handlers.NewTagHandler(a.TagService)
	recomputeHandler := handlers.NewRecomputeHandler(a.Engine, a.Queue, a.Metrics)
	bankHandler := handlers.NewBankHandler(a.BankService)
	transactionHandler := handlers.NewTransactionHandler(a.TxService)
	importHandler := handlers.NewImportHandler(a.ImportService, a.Config.Import.MaxUploadBytes)

	api := e.Group("/api/v1", middleware.RequireAuth(a.Config.Auth), rateLimiter.Middleware())

	api.GET("/tags", tagHandler.ListTags)
	api.POST("/tags", tagHandler.CreateTag)
	api.GET("/tags/summary", tagHandler.GetSummary)
	api.POST("/tags/summary/recompute", recomputeHandler.RecomputeNow)
	api.PATCH("/tags/:id", tagHandler.UpdateTag)
	api.DELETE("/tags/:id", tagHandler.DeleteTag)

	api.POST("/recompute-jobs", recomputeHandler.EnqueueRecompute)
	api.GET("/recompute-jobs/metrics", recomputeHandler.GetQueueMetrics)
	api.GET("/recompute-jobs/:id", recomputeHandler.GetJob)

	api.GET("/banks", bankHandler.ListBanks)
	api.POST("/banks", bankHandler.CreateBank)
	api.GET("/banks/:bankId", bankHandler.GetBank)
	api.PATCH("/banks/:bankId/transactions", transactionHandler.BulkUpdateTransactions)
	api.PATCH("/banks/:bankId/transactions/:id", transactionHandler.UpdateTransaction)
	api.POST("/banks/:bankId/imports", importHandler.UploadStatement)
	api.GET("/imports/:id", importHandler.GetImport)

	return e
}

// bodyLimit leaves headroom over the upload cap for the multipart envelope.
func bodyLimit(maxUploadBytes int64) string {
	const envelope = 1 << 20
	kb := (maxUploadBytes + envelope) / 1024
	if kb <= 0 {
		return "2M"
	}
	return strconv.FormatInt(kb, 10) + "K"
}
