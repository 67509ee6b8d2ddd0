package app

import (
	"github.com/gin-gonic/gin"

	server "github.com/yungbote/contacts-backend/internal/http"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *gin.Engine {
	log.Info("Wiring router...")
	serviceName := ""
	if cfg.OtelEnabled {
		serviceName = cfg.OtelServiceName
	}
	return server.NewRouter(server.RouterConfig{
		Log:            log.With("component", "http"),
		ServiceName:    serviceName,
		CORSOrigins:    cfg.CORSAllowOrigins,
		ContactHandler: handlerset.Contact,
		GroupHandler:   handlerset.Group,
		HealthHandler:  handlerset.Health,
	})
}
