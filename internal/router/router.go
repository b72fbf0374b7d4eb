package router

import (
	"net/http"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/bank"
	"github.com/Butterfli-Software/sanki-yedim/internal/config"
	"github.com/Butterfli-Software/sanki-yedim/internal/handler"
	"github.com/Butterfli-Software/sanki-yedim/internal/middleware"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Setup configures the gin engine and the full API surface.
func Setup(cfg *config.Config, st store.Store, providers *bank.Factory, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// write endpoints share one fixed-window limiter
	limiter := middleware.NewRateLimiter(cfg.RateLimitWindow(), cfg.RateLimit.MaxRequests, nil)
	limiter.StartSweeping(time.Minute)
	rateLimited := limiter.Middleware()

	// ====== API ======
	api := r.Group("/api")
	api.Use(
		middleware.DemoSession(cfg, st),
		middleware.Audit(st, log),
	)

	api.GET("/me", handler.GetMe)

	entryHandler := handler.NewEntryHandler(st)
	api.GET("/entries", entryHandler.ListEntries)
	api.POST("/entries", rateLimited, entryHandler.CreateEntry)
	api.PATCH("/entries/:id", rateLimited, entryHandler.UpdateEntry)
	api.DELETE("/entries/:id", rateLimited, entryHandler.DeleteEntry)

	transferHandler := handler.NewTransferHandler(st, providers)
	api.GET("/transfers", transferHandler.ListTransfers)
	api.POST("/transfers", rateLimited, transferHandler.CreateTransfer)
	api.POST("/transfers/:id/complete", rateLimited, transferHandler.CompleteTransfer)

	prefHandler := handler.NewPreferenceHandler(st)
	api.GET("/preferences", prefHandler.GetPreferences)
	api.PATCH("/preferences", rateLimited, prefHandler.UpdatePreferences)
	api.POST("/settings/provider", rateLimited, prefHandler.UpdateProvider)

	bankHandler := handler.NewBankHandler(providers)
	api.POST("/bank/link", rateLimited, bankHandler.Link)
	api.GET("/bank/accounts", bankHandler.Accounts)

	statsHandler := handler.NewStatsHandler(st)
	api.GET("/stats", statsHandler.GetStats)
	api.GET("/stats/sparkline", statsHandler.Sparkline)

	exportHandler := handler.NewExportHandler(st)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	auditHandler := handler.NewAuditHandler(st)
	api.GET("/audit", auditHandler.ListLogs)

	return r
}
