package contacts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/yungbote/contacts-backend/internal/domain/contacts"
	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
	"github.com/yungbote/contacts-backend/internal/pkg/dbctx"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

type ContactRepo interface {
	List(dbc dbctx.Context) ([]*domain.Contact, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Contact, error)
	GetByMobile(dbc dbctx.Context, mobile string) (*domain.Contact, error)
	Create(dbc dbctx.Context, fields domain.Fields) (*domain.Contact, error)
	Replace(dbc dbctx.Context, id uuid.UUID, fields domain.Fields) (*domain.Contact, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	return &contactRepo{db: db, log: baseLog.With("repo", "ContactRepo")}
}

func (r *contactRepo) List(dbc dbctx.Context) ([]*domain.Contact, error) {
	results := []*domain.Contact{}
	if err := dbc.DB(r.db).
		Order("created_at ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, MapError("contacts.list", err)
	}
	return results, nil
}

func (r *contactRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Contact, error) {
	var row domain.Contact
	if err := dbc.DB(r.db).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFoundOr("contacts.get", "Contact is not found", err)
	}
	return &row, nil
}

func (r *contactRepo) GetByMobile(dbc dbctx.Context, mobile string) (*domain.Contact, error) {
	var row domain.Contact
	if err := dbc.DB(r.db).Where("mobile = ?", mobile).First(&row).Error; err != nil {
		return nil, notFoundOr("contacts.get_by_mobile", "Contact is not found", err)
	}
	return &row, nil
}

func (r *contactRepo) Create(dbc dbctx.Context, fields domain.Fields) (*domain.Contact, error) {
	row := fields.NewContact()
	if err := dbc.DB(r.db).Create(row).Error; err != nil {
		mapped := MapError("contacts.create", err)
		if apperr.IsCode(mapped, apperr.CodeDuplicateKey) {
			r.log.Info("contact insert rejected by unique index", "mobile", row.Mobile)
		}
		return nil, mapped
	}
	return row, nil
}

// Replace overwrites every mutable column of the row and returns the stored
// result. The update and re-read share one transaction so the caller never
// observes a half-applied replace.
func (r *contactRepo) Replace(dbc dbctx.Context, id uuid.UUID, fields domain.Fields) (*domain.Contact, error) {
	var out domain.Contact
	err := dbc.DB(r.db).Transaction(func(tx *gorm.DB) error {
		cols := fields.Columns()
		cols["updated_at"] = time.Now().UTC()
		res := tx.Model(&domain.Contact{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.New(apperr.CodeNotFound, "contacts.replace", "Contact is not found", nil)
		}
		return tx.Where("id = ?", id).First(&out).Error
	})
	if err != nil {
		return nil, notFoundOr("contacts.replace", "Contact is not found", err)
	}
	return &out, nil
}

func (r *contactRepo) Delete(dbc dbctx.Context, id uuid.UUID) error {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&domain.Contact{})
	if res.Error != nil {
		return MapError("contacts.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "contacts.delete", "Contact is not found", nil)
	}
	return nil
}
