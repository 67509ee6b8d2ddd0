package ids

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
)

func TestParseCanonical(t *testing.T) {
	want := uuid.New()
	got, err := Parse(want.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	id := uuid.New()
	cases := map[string]string{
		"empty":       "",
		"short":       "1234",
		"object id":   "64b7f0c2e4b0a1a2b3c4d5e6",
		"non hex":     "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",
		"braces":      "{" + id.String() + "}",
		"urn":         "urn:uuid:" + id.String(),
		"no hyphens":  strings.ReplaceAll(id.String(), "-", ""),
		"nil uuid":    uuid.Nil.String(),
		"path escape": "../../etc/passwd",
		"padded":      " " + id.String() + " ",
		"tab padded":  id.String()[:35] + "\t",
		"upper case":  strings.ToUpper(id.String()),
	}
	for name, raw := range cases {
		raw := raw
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			if err == nil {
				t.Fatalf("expected error for %q", raw)
			}
			if !errors.Is(err, ErrInvalidIdentifier) {
				t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
			}
			if !apperr.IsCode(err, apperr.CodeInvalidIdentifier) {
				t.Fatalf("expected invalid_identifier code, got %q", apperr.CodeOf(err))
			}
		})
	}
}
