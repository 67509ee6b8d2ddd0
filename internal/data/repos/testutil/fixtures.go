package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	domain "github.com/yungbote/contacts-backend/internal/domain/contacts"
)

func SeedGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Group {
	tb.Helper()
	g := &domain.Group{Name: name}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed group: %v", err)
	}
	return g
}

func SeedContact(tb testing.TB, ctx context.Context, tx *gorm.DB, f domain.Fields) *domain.Contact {
	tb.Helper()
	c := f.NewContact()
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contact: %v", err)
	}
	return c
}

// ContactFields returns a complete, valid field set with the given mobile.
func ContactFields(mobile string) domain.Fields {
	return domain.Fields{
		Name:     "Ada Lovelace",
		Company:  "Analytical Engines",
		Email:    "ada@example.com",
		Title:    "Engineer",
		Mobile:   mobile,
		ImageURL: "https://example.com/ada.png",
		GroupID:  "",
	}
}
