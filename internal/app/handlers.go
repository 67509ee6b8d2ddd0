package app

import (
	httpH "github.com/yungbote/contacts-backend/internal/http/handlers"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

type Handlers struct {
	Contact *httpH.ContactHandler
	Group   *httpH.GroupHandler
	Health  *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, cfg Config, serviceset Services, store httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	errs := cfg.ErrorMapper()
	return Handlers{
		Contact: httpH.NewContactHandler(serviceset.Contact, errs),
		Group:   httpH.NewGroupHandler(serviceset.Group, errs),
		Health:  httpH.NewHealthHandler(store),
	}
}
