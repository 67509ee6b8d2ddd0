package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/contacts-backend/internal/data/repos"
	"github.com/yungbote/contacts-backend/internal/data/repos/testutil"
	"github.com/yungbote/contacts-backend/internal/domain/contacts"
	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
	"github.com/yungbote/contacts-backend/internal/pkg/dbctx"
	"github.com/yungbote/contacts-backend/internal/validation"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []ChangeEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev ChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Kind)
	}
	return out
}

type fixture struct {
	contacts ContactService
	groups   GroupService
	events   *recordingPublisher
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	pub := &recordingPublisher{}
	if opts.Events == nil {
		opts.Events = pub
	}
	contactRepo := repos.NewContactRepo(gdb, log)
	groupRepo := repos.NewGroupRepo(gdb, log)
	return fixture{
		contacts: NewContactService(log, contactRepo, groupRepo, opts),
		groups:   NewGroupService(log, groupRepo, opts),
		events:   pub,
	}
}

func contactInput(mobile string) validation.ContactInput {
	f := testutil.ContactFields(mobile)
	return validation.ContactInput{
		Name:     f.Name,
		Company:  f.Company,
		Email:    f.Email,
		Title:    f.Title,
		Mobile:   f.Mobile,
		ImageURL: f.ImageURL,
		GroupID:  "g1",
	}
}

// blindContactRepo hides every row from lookups, as a concurrent writer
// that commits between the pre-check and the insert would.
type blindContactRepo struct {
	repos.ContactRepo
}

func (blindContactRepo) GetByMobile(dbctx.Context, string) (*contacts.Contact, error) {
	return nil, apperr.New(apperr.CodeNotFound, "test", "Contact is not found", nil)
}

type blindGroupRepo struct {
	repos.GroupRepo
}

func (blindGroupRepo) GetByName(dbctx.Context, string) (*contacts.Group, error) {
	return nil, apperr.New(apperr.CodeNotFound, "test", "Group is not found", nil)
}

// countingContactRepo fails the test if any store method is reached.
type countingContactRepo struct {
	repos.ContactRepo
	t *testing.T
}

func (r countingContactRepo) GetByID(dbctx.Context, uuid.UUID) (*contacts.Contact, error) {
	r.t.Fatalf("store reached with an invalid identifier")
	return nil, nil
}

func (r countingContactRepo) Delete(dbctx.Context, uuid.UUID) error {
	r.t.Fatalf("store reached with an invalid identifier")
	return nil
}

func (r countingContactRepo) Replace(dbctx.Context, uuid.UUID, contacts.Fields) (*contacts.Contact, error) {
	r.t.Fatalf("store reached with an invalid identifier")
	return nil, nil
}
