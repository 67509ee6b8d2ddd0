package contacts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want apperr.Code
	}{
		{"record not found", gorm.ErrRecordNotFound, apperr.CodeNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, apperr.CodeDuplicateKey},
		{"pg unique violation", &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}, apperr.CodeDuplicateKey},
		{"sqlite unique", errors.New("UNIQUE constraint failed: contacts.mobile"), apperr.CodeDuplicateKey},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), apperr.CodeStoreUnavailable},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), apperr.CodeStoreUnavailable},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := MapError("op", tc.err)
			if !apperr.IsCode(got, tc.want) {
				t.Fatalf("got %q want %q (%v)", apperr.CodeOf(got), tc.want, got)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("mapped error should wrap the cause")
			}
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	in := apperr.New(apperr.CodeNotFound, "op", "gone", nil)
	if out := MapError("other", in); out != in {
		t.Fatalf("expected passthrough of classified error")
	}
	if MapError("op", nil) != nil {
		t.Fatalf("expected nil")
	}
}
