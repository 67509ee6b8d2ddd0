package contacts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/contacts-backend/internal/data/repos/testutil"
	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
	"github.com/yungbote/contacts-backend/internal/pkg/dbctx"
)

func TestContactRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewContactRepo(db, testutil.Logger(t))
	dbc := dbctx.Background(context.Background())

	fields := testutil.ContactFields("123")
	fields.GroupID = uuid.NewString()

	created, err := repo.Create(dbc, fields)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("Create: expected assigned id")
	}
	if created.Fields() != fields {
		t.Fatalf("Create: fields not echoed: got %+v want %+v", created.Fields(), fields)
	}

	got, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Fields() != fields {
		t.Fatalf("GetByID: got %+v want %+v", got.Fields(), fields)
	}

	byMobile, err := repo.GetByMobile(dbc, "123")
	if err != nil {
		t.Fatalf("GetByMobile: %v", err)
	}
	if byMobile.ID != created.ID {
		t.Fatalf("GetByMobile: got %s want %s", byMobile.ID, created.ID)
	}
	if _, err := repo.GetByMobile(dbc, "999"); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("GetByMobile (missing): expected not_found, got %v", err)
	}
}

func TestContactRepoUniqueMobile(t *testing.T) {
	db := testutil.DB(t)
	repo := NewContactRepo(db, testutil.Logger(t))
	dbc := dbctx.Background(context.Background())

	if _, err := repo.Create(dbc, testutil.ContactFields("123")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := testutil.ContactFields("123")
	other.Name = "Someone Else"
	other.Email = "else@example.com"
	if _, err := repo.Create(dbc, other); !apperr.IsCode(err, apperr.CodeDuplicateKey) {
		t.Fatalf("second Create: expected duplicate_key, got %v", err)
	}

	all, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("List: expected one contact, got %d", len(all))
	}
}

func TestContactRepoReplace(t *testing.T) {
	db := testutil.DB(t)
	repo := NewContactRepo(db, testutil.Logger(t))
	dbc := dbctx.Background(context.Background())

	created, err := repo.Create(dbc, testutil.ContactFields("123"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	next := testutil.ContactFields("456")
	next.Title = "Director"
	replaced, err := repo.Replace(dbc, created.ID, next)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if replaced.Fields() != next {
		t.Fatalf("Replace: got %+v want %+v", replaced.Fields(), next)
	}
	if replaced.ID != created.ID {
		t.Fatalf("Replace: id changed")
	}
	if replaced.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("Replace: updatedAt went backwards: %s < %s", replaced.UpdatedAt, created.UpdatedAt)
	}

	if _, err := repo.Replace(dbc, uuid.New(), next); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("Replace (missing): expected not_found, got %v", err)
	}
}

func TestContactRepoReplaceMobileCollision(t *testing.T) {
	db := testutil.DB(t)
	repo := NewContactRepo(db, testutil.Logger(t))
	dbc := dbctx.Background(context.Background())

	if _, err := repo.Create(dbc, testutil.ContactFields("111")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := repo.Create(dbc, testutil.ContactFields("222"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = repo.Replace(dbc, second.ID, testutil.ContactFields("111"))
	if !apperr.IsCode(err, apperr.CodeDuplicateKey) {
		t.Fatalf("Replace: expected duplicate_key, got %v", err)
	}
	got, err := repo.GetByID(dbc, second.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Mobile != "222" {
		t.Fatalf("failed replace must not change the row, mobile=%q", got.Mobile)
	}
}

func TestContactRepoDelete(t *testing.T) {
	db := testutil.DB(t)
	repo := NewContactRepo(db, testutil.Logger(t))
	dbc := dbctx.Background(context.Background())

	created, err := repo.Create(dbc, testutil.ContactFields("123"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(dbc, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(dbc, created.ID); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("second Delete: expected not_found, got %v", err)
	}
	if _, err := repo.GetByID(dbc, created.ID); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("GetByID after delete: expected not_found, got %v", err)
	}

	// The mobile is free again once the row is gone.
	if _, err := repo.Create(dbc, testutil.ContactFields("123")); err != nil {
		t.Fatalf("re-Create after delete: %v", err)
	}
}

func TestContactRepoUsesCallerTransaction(t *testing.T) {
	db := testutil.DB(t)
	repo := NewContactRepo(db, testutil.Logger(t))
	ctx := context.Background()

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin: %v", tx.Error)
	}
	if _, err := repo.Create(dbctx.Context{Ctx: ctx, Tx: tx}, testutil.ContactFields("123")); err != nil {
		t.Fatalf("Create in tx: %v", err)
	}
	if err := tx.Rollback().Error; err != nil {
		t.Fatalf("rollback: %v", err)
	}

	all, err := repo.List(dbctx.Background(ctx))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("rolled back create should leave no rows, got %d", len(all))
	}
}
