package api

import (
	"log/slog"

	"sellerops/pkg/logger"
	"sellerops/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(logger.CorrelationMiddleware(), metrics.GinMiddleware(), logger.RequestLogger(l), gin.Recovery())
	return engine
}
