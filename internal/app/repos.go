package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/contacts-backend/internal/data/repos"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

type Repos struct {
	Group   repos.GroupRepo
	Contact repos.ContactRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Group:   repos.NewGroupRepo(db, log),
		Contact: repos.NewContactRepo(db, log),
	}
}
