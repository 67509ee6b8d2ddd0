package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/contacts-backend/internal/data/repos"
	"github.com/yungbote/contacts-backend/internal/domain/contacts"
	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
	"github.com/yungbote/contacts-backend/internal/pkg/dbctx"
	"github.com/yungbote/contacts-backend/internal/pkg/ids"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
	"github.com/yungbote/contacts-backend/internal/validation"
)

const msgGroupExists = "Group is already exists!"

type GroupService interface {
	List(ctx context.Context) ([]*contacts.Group, error)
	Get(ctx context.Context, rawID string) (*contacts.Group, error)
	// Create fails with duplicate_key when the name is taken, whether the
	// lookup caught it or the unique index did.
	Create(ctx context.Context, in validation.GroupInput) (*contacts.Group, error)
}

type groupService struct {
	log       *logger.Logger
	groupRepo repos.GroupRepo
	opts      Options
}

func NewGroupService(log *logger.Logger, groupRepo repos.GroupRepo, opts Options) GroupService {
	return &groupService{
		log:       log.With("service", "GroupService"),
		groupRepo: groupRepo,
		opts:      opts.withDefaults(),
	}
}

func (s *groupService) List(ctx context.Context) (out []*contacts.Group, err error) {
	ctx, span := startSpan(ctx, "GroupService.List")
	defer func() { endSpan(span, err) }()

	sctx, cancel := s.opts.storeContext(ctx)
	defer cancel()
	return s.groupRepo.List(dbctx.Background(sctx))
}

func (s *groupService) Get(ctx context.Context, rawID string) (out *contacts.Group, err error) {
	ctx, span := startSpan(ctx, "GroupService.Get")
	defer func() { endSpan(span, err) }()

	id, err := ids.Parse(rawID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("group.id", id.String()))

	sctx, cancel := s.opts.storeContext(ctx)
	defer cancel()
	return s.groupRepo.GetByID(dbctx.Background(sctx), id)
}

func (s *groupService) Create(ctx context.Context, in validation.GroupInput) (out *contacts.Group, err error) {
	ctx, span := startSpan(ctx, "GroupService.Create")
	defer func() { endSpan(span, err) }()

	if vs := validation.Group(in); !vs.Empty() {
		return nil, rejectPayload(ctx, s.log, "groups.create", vs)
	}
	name := strings.TrimSpace(in.Name)

	sctx, cancel := s.opts.storeContext(ctx)
	defer cancel()
	dbc := dbctx.Background(sctx)

	existing, err := s.groupRepo.GetByName(dbc, name)
	switch {
	case err == nil && existing != nil:
		return nil, apperr.New(apperr.CodeDuplicateKey, "groups.create", msgGroupExists, nil)
	case err != nil && !apperr.IsCode(err, apperr.CodeNotFound):
		return nil, err
	}

	created, err := s.groupRepo.Create(dbc, name)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeDuplicateKey) {
			// Lost a race with a concurrent create of the same name.
			return nil, apperr.New(apperr.CodeDuplicateKey, "groups.create", msgGroupExists, err)
		}
		requestLog(ctx, s.log).Error("group create failed", "error", err)
		return nil, err
	}

	requestLog(ctx, s.log).Info("group created", "group_id", created.ID.String())
	publish(ctx, s.log, s.opts.Events, newEvent(EventGroupCreated, created.ID))
	return created, nil
}
