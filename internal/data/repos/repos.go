package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/contacts-backend/internal/data/repos/contacts"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

type GroupRepo = contacts.GroupRepo
type ContactRepo = contacts.ContactRepo

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	return contacts.NewGroupRepo(db, baseLog)
}
func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	return contacts.NewContactRepo(db, baseLog)
}
