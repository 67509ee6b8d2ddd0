package contacts

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/yungbote/contacts-backend/internal/domain/contacts"
	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
	"github.com/yungbote/contacts-backend/internal/pkg/dbctx"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

type GroupRepo interface {
	List(dbc dbctx.Context) ([]*domain.Group, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Group, error)
	GetByName(dbc dbctx.Context, name string) (*domain.Group, error)
	Create(dbc dbctx.Context, name string) (*domain.Group, error)
}

type groupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	return &groupRepo{db: db, log: baseLog.With("repo", "GroupRepo")}
}

func (r *groupRepo) List(dbc dbctx.Context) ([]*domain.Group, error) {
	results := []*domain.Group{}
	if err := dbc.DB(r.db).
		Order("created_at ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, MapError("groups.list", err)
	}
	return results, nil
}

func (r *groupRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Group, error) {
	var row domain.Group
	if err := dbc.DB(r.db).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFoundOr("groups.get", "Group is not found", err)
	}
	return &row, nil
}

func (r *groupRepo) GetByName(dbc dbctx.Context, name string) (*domain.Group, error) {
	var row domain.Group
	if err := dbc.DB(r.db).Where("name = ?", name).First(&row).Error; err != nil {
		return nil, notFoundOr("groups.get_by_name", "Group is not found", err)
	}
	return &row, nil
}

func (r *groupRepo) Create(dbc dbctx.Context, name string) (*domain.Group, error) {
	row := &domain.Group{Name: strings.TrimSpace(name)}
	if err := dbc.DB(r.db).Create(row).Error; err != nil {
		mapped := MapError("groups.create", err)
		if apperr.IsCode(mapped, apperr.CodeDuplicateKey) {
			r.log.Info("group insert rejected by unique index", "name", row.Name)
		}
		return nil, mapped
	}
	return row, nil
}

func notFoundOr(op, msg string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.CodeNotFound, op, msg, err)
	}
	return MapError(op, err)
}
