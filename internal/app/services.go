package app

import (
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
	"github.com/yungbote/contacts-backend/internal/services"
)

type Services struct {
	Group   services.GroupService
	Contact services.ContactService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, events services.EventPublisher) Services {
	log.Info("Wiring services...")
	opts := services.Options{
		StoreTimeout:          cfg.StoreTimeout,
		EnforceGroupReference: cfg.EnforceGroupReference,
		Events:                events,
	}
	return Services{
		Group:   services.NewGroupService(log, reposet.Group, opts),
		Contact: services.NewContactService(log, reposet.Contact, reposet.Group, opts),
	}
}
