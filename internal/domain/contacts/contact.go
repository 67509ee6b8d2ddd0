package contacts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contact struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null;column:name" json:"name"`
	Company  string    `gorm:"not null;column:company" json:"company"`
	Email    string    `gorm:"not null;column:email" json:"email"`
	Title    string    `gorm:"not null;column:title" json:"title"`
	Mobile   string    `gorm:"not null;uniqueIndex:idx_contacts_mobile;column:mobile" json:"mobile"`
	ImageURL string    `gorm:"not null;column:image_url" json:"imageUrl"`
	// GroupID is a soft reference; nothing at the storage layer ties it to groups.
	GroupID   string    `gorm:"not null;index;column:group_id" json:"groupId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Contact) TableName() string { return "contacts" }

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Fields is the full set of caller-supplied contact attributes. Create and
// replace both take every field; there is no partial update.
type Fields struct {
	Name     string
	Company  string
	Email    string
	Title    string
	Mobile   string
	ImageURL string
	GroupID  string
}

func (f Fields) NewContact() *Contact {
	return &Contact{
		Name:     f.Name,
		Company:  f.Company,
		Email:    f.Email,
		Title:    f.Title,
		Mobile:   f.Mobile,
		ImageURL: f.ImageURL,
		GroupID:  f.GroupID,
	}
}

// Columns maps the fields to their column names for a full-row update.
func (f Fields) Columns() map[string]any {
	return map[string]any{
		"name":      f.Name,
		"company":   f.Company,
		"email":     f.Email,
		"title":     f.Title,
		"mobile":    f.Mobile,
		"image_url": f.ImageURL,
		"group_id":  f.GroupID,
	}
}

func (c *Contact) Fields() Fields {
	return Fields{
		Name:     c.Name,
		Company:  c.Company,
		Email:    c.Email,
		Title:    c.Title,
		Mobile:   c.Mobile,
		ImageURL: c.ImageURL,
		GroupID:  c.GroupID,
	}
}
