package services

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/contacts-backend/internal/data/repos"
	"github.com/yungbote/contacts-backend/internal/domain/contacts"
	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
	"github.com/yungbote/contacts-backend/internal/pkg/dbctx"
	"github.com/yungbote/contacts-backend/internal/pkg/ids"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
	"github.com/yungbote/contacts-backend/internal/validation"
)

const (
	msgMobileExists     = "Contact is Already Exist with same mobile number!"
	msgGroupRefNotFound = "groupId does not reference an existing group"
)

type ContactService interface {
	List(ctx context.Context) ([]*contacts.Contact, error)
	Get(ctx context.Context, rawID string) (*contacts.Contact, error)
	Create(ctx context.Context, in validation.ContactInput) (*contacts.Contact, error)
	// Replace overwrites every field of an existing contact.
	Replace(ctx context.Context, rawID string, in validation.ContactInput) (*contacts.Contact, error)
	Delete(ctx context.Context, rawID string) error
}

type contactService struct {
	log         *logger.Logger
	contactRepo repos.ContactRepo
	groupRepo   repos.GroupRepo
	opts        Options
}

func NewContactService(log *logger.Logger, contactRepo repos.ContactRepo, groupRepo repos.GroupRepo, opts Options) ContactService {
	return &contactService{
		log:         log.With("service", "ContactService"),
		contactRepo: contactRepo,
		groupRepo:   groupRepo,
		opts:        opts.withDefaults(),
	}
}

func (s *contactService) List(ctx context.Context) (out []*contacts.Contact, err error) {
	ctx, span := startSpan(ctx, "ContactService.List")
	defer func() { endSpan(span, err) }()

	sctx, cancel := s.opts.storeContext(ctx)
	defer cancel()
	return s.contactRepo.List(dbctx.Background(sctx))
}

func (s *contactService) Get(ctx context.Context, rawID string) (out *contacts.Contact, err error) {
	ctx, span := startSpan(ctx, "ContactService.Get")
	defer func() { endSpan(span, err) }()

	id, err := ids.Parse(rawID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("contact.id", id.String()))

	sctx, cancel := s.opts.storeContext(ctx)
	defer cancel()
	return s.contactRepo.GetByID(dbctx.Background(sctx), id)
}

func (s *contactService) Create(ctx context.Context, in validation.ContactInput) (out *contacts.Contact, err error) {
	ctx, span := startSpan(ctx, "ContactService.Create")
	defer func() { endSpan(span, err) }()

	if vs := validation.Contact(in); !vs.Empty() {
		return nil, rejectPayload(ctx, s.log, "contacts.create", vs)
	}

	sctx, cancel := s.opts.storeContext(ctx)
	defer cancel()
	dbc := dbctx.Background(sctx)

	if err := s.checkGroupReference(dbc, "contacts.create", in.GroupID); err != nil {
		return nil, err
	}
	if err := s.checkMobileFree(dbc, "contacts.create", in.Mobile, uuid.Nil); err != nil {
		return nil, err
	}

	created, err := s.contactRepo.Create(dbc, fieldsOf(in))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeDuplicateKey) {
			return nil, apperr.New(apperr.CodeDuplicateKey, "contacts.create", msgMobileExists, err)
		}
		requestLog(ctx, s.log).Error("contact create failed", "error", err)
		return nil, err
	}

	requestLog(ctx, s.log).Info("contact created", "contact_id", created.ID.String())
	publish(ctx, s.log, s.opts.Events, newEvent(EventContactCreated, created.ID))
	return created, nil
}

func (s *contactService) Replace(ctx context.Context, rawID string, in validation.ContactInput) (out *contacts.Contact, err error) {
	ctx, span := startSpan(ctx, "ContactService.Replace")
	defer func() { endSpan(span, err) }()

	if vs := validation.Contact(in); !vs.Empty() {
		return nil, rejectPayload(ctx, s.log, "contacts.replace", vs)
	}
	id, err := ids.Parse(rawID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("contact.id", id.String()))

	sctx, cancel := s.opts.storeContext(ctx)
	defer cancel()
	dbc := dbctx.Background(sctx)

	if _, err := s.contactRepo.GetByID(dbc, id); err != nil {
		return nil, err
	}
	if err := s.checkGroupReference(dbc, "contacts.replace", in.GroupID); err != nil {
		return nil, err
	}
	if err := s.checkMobileFree(dbc, "contacts.replace", in.Mobile, id); err != nil {
		return nil, err
	}

	updated, err := s.contactRepo.Replace(dbc, id, fieldsOf(in))
	if err != nil {
		if apperr.IsCode(err, apperr.CodeDuplicateKey) {
			return nil, apperr.New(apperr.CodeDuplicateKey, "contacts.replace", msgMobileExists, err)
		}
		if !apperr.IsCode(err, apperr.CodeNotFound) {
			requestLog(ctx, s.log).Error("contact replace failed", "contact_id", id.String(), "error", err)
		}
		return nil, err
	}

	publish(ctx, s.log, s.opts.Events, newEvent(EventContactUpdated, updated.ID))
	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, rawID string) (err error) {
	ctx, span := startSpan(ctx, "ContactService.Delete")
	defer func() { endSpan(span, err) }()

	id, err := ids.Parse(rawID)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("contact.id", id.String()))

	sctx, cancel := s.opts.storeContext(ctx)
	defer cancel()

	if err := s.contactRepo.Delete(dbctx.Background(sctx), id); err != nil {
		return err
	}
	requestLog(ctx, s.log).Info("contact deleted", "contact_id", id.String())
	publish(ctx, s.log, s.opts.Events, newEvent(EventContactDeleted, id))
	return nil
}

// checkMobileFree is the early-exit half of mobile uniqueness; the unique
// index decides races. self is excluded so a replace may keep its own mobile.
func (s *contactService) checkMobileFree(dbc dbctx.Context, op, mobile string, self uuid.UUID) error {
	existing, err := s.contactRepo.GetByMobile(dbc, mobile)
	switch {
	case err == nil && existing != nil && existing.ID != self:
		return apperr.New(apperr.CodeDuplicateKey, op, msgMobileExists, nil)
	case err != nil && !apperr.IsCode(err, apperr.CodeNotFound):
		return err
	}
	return nil
}

func (s *contactService) checkGroupReference(dbc dbctx.Context, op, rawGroupID string) error {
	if !s.opts.EnforceGroupReference {
		return nil
	}
	violation := []apperr.Violation{{Field: "groupId", Message: msgGroupRefNotFound}}
	groupID, err := ids.Parse(rawGroupID)
	if err != nil {
		return apperr.Validation(op, violation)
	}
	if _, err := s.groupRepo.GetByID(dbc, groupID); err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return apperr.Validation(op, violation)
		}
		return err
	}
	return nil
}

func fieldsOf(in validation.ContactInput) contacts.Fields {
	return contacts.Fields{
		Name:     in.Name,
		Company:  in.Company,
		Email:    in.Email,
		Title:    in.Title,
		Mobile:   in.Mobile,
		ImageURL: in.ImageURL,
		GroupID:  in.GroupID,
	}
}
