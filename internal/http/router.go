package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/contacts-backend/internal/http/handlers"
	httpMW "github.com/yungbote/contacts-backend/internal/http/middleware"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	ContactHandler *httpH.ContactHandler
	GroupHandler   *httpH.GroupHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachRequestIDs())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Welcome)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Contacts
	if cfg.ContactHandler != nil {
		contacts := r.Group("/contacts")
		contacts.GET("", cfg.ContactHandler.List)
		contacts.POST("", cfg.ContactHandler.Create)
		contacts.GET("/:contactId", cfg.ContactHandler.Get)
		contacts.PUT("/:contactId", cfg.ContactHandler.Replace)
		contacts.DELETE("/:contactId", cfg.ContactHandler.Delete)
	}

	// Groups
	if cfg.GroupHandler != nil {
		groups := r.Group("/groups")
		groups.GET("", cfg.GroupHandler.List)
		groups.POST("", cfg.GroupHandler.Create)
		groups.GET("/:groupId", cfg.GroupHandler.Get)
	}

	return r
}
