// Package ids converts external identifier strings into store identifiers.
package ids

import (
	"errors"

	"github.com/google/uuid"

	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
)

// ErrInvalidIdentifier is wrapped by every Parse failure.
var ErrInvalidIdentifier = errors.New("invalid identifier")

const canonicalLen = 36

// Parse accepts only the lower-case hyphenated UUID form the store hands out.
// Padded, upper-case, braced, URN and unhyphenated spellings are rejected so a
// single entity has a single external id.
func Parse(raw string) (uuid.UUID, error) {
	if len(raw) != canonicalLen {
		return uuid.Nil, invalid(raw)
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil || id.String() != raw {
		return uuid.Nil, invalid(raw)
	}
	return id, nil
}

func invalid(raw string) error {
	return &apperr.Error{
		Code:    apperr.CodeInvalidIdentifier,
		Op:      "ids.parse",
		Message: "malformed identifier " + quote(raw),
		Cause:   ErrInvalidIdentifier,
	}
}

func quote(s string) string {
	if len(s) > 64 {
		s = s[:64] + "..."
	}
	return `"` + s + `"`
}
