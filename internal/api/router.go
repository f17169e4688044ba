package api

import (
	"sellerops/internal/api/auth"
	"sellerops/internal/api/handlers"
	"sellerops/internal/shared/webhook"
	"sellerops/pkg/health"
	"sellerops/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Router struct {
	auth     *handlers.AuthHandler
	account  *handlers.AccountHandler
	settings *handlers.SettingsHandler
	shipment *handlers.ShipmentHandler
	catalog  *handlers.CatalogHandler
	billing  *handlers.BillingHandler
	sync     *handlers.SyncHandler
	// nil unless TEST_DATA_ENABLED
	testData *handlers.TestDataHandler
	webhook  *webhook.Handler

	sessions       *auth.Sessions
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	health.Routes(engine, r.healthRegistry)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Marketplace notifications are not signed with a session.
	r.webhook.Routes(engine)

	engine.GET("/auth/login", r.auth.Login)
	engine.GET("/auth/callback", r.auth.Callback)

	private := engine.Group("/", auth.RequireSession(r.sessions))

	private.GET("/accounts/me", r.account.Me)
	private.DELETE("/accounts/me", r.account.Delete)

	private.GET("/settings", r.settings.Get)
	private.PUT("/settings", r.settings.Update)
	private.POST("/settings/reset", r.settings.Reset)

	private.GET("/shipments/pending", r.shipment.Pending)
	private.GET("/shipments/pending/stats", r.shipment.Stats)

	private.GET("/items", r.catalog.Items)
	private.GET("/orders", r.catalog.Orders)
	private.GET("/questions", r.catalog.Questions)

	private.GET("/billing/periods", r.billing.Periods)
	private.GET("/billing/periods/:key/expenses", r.billing.Expenses)
	private.GET("/billing/periods/:key/taxes", r.billing.Taxes)

	private.POST("/sync", r.sync.Sync)

	if r.testData != nil {
		private.POST("/test-data/populate", r.testData.Populate)
	}
}
