package contacts

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
)

// MapError classifies driver failures into apperr codes. Unique-index
// violations become duplicate_key whichever driver raised them; anything not
// recognised is store_unavailable.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperr.CodeOf(err) != "" {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.CodeNotFound, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Wrap(apperr.CodeDuplicateKey, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperr.Wrap(apperr.CodeStoreUnavailable, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.TrimSpace(pgErr.Code) == "23505" {
		return apperr.Wrap(apperr.CodeDuplicateKey, op, err) // unique_violation
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique constraint failed"):
		return apperr.Wrap(apperr.CodeDuplicateKey, op, err)
	default:
		return apperr.Wrap(apperr.CodeStoreUnavailable, op, err)
	}
}
