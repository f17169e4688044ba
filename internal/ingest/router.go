package ingest

import (
	"sellerops/internal/shared/webhook"
	"sellerops/pkg/health"
	"sellerops/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Router struct {
	webhook        *webhook.Handler
	healthRegistry *health.Registry
}

func NewRouter(webhook *webhook.Handler, healthRegistry *health.Registry) *Router {
	return &Router{webhook: webhook, healthRegistry: healthRegistry}
}

func (r *Router) SetUp(engine *gin.Engine) {
	health.Routes(engine, r.healthRegistry)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.webhook.Routes(engine)
}
