package validation

// ContactInput is the decoded body of a contact create or replace request.
// Field order here is the order violations are reported in.
type ContactInput struct {
	Name     string `json:"name" validate:"notblank"`
	Company  string `json:"company" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Title    string `json:"title" validate:"notblank"`
	Mobile   string `json:"mobile" validate:"notblank"`
	ImageURL string `json:"imageUrl" validate:"notblank"`
	GroupID  string `json:"groupId" validate:"notblank"`
}

var contactMessages = map[string]string{
	"name":     "Name is required",
	"company":  "Company is required",
	"email":    "Proper email is required",
	"title":    "title is required",
	"mobile":   "mobile is required",
	"imageUrl": "imageUrl is required",
	"groupId":  "groupId is required",
}

// Contact validates a contact payload. A nil result means it passed.
func Contact(in ContactInput) Violations {
	return check(in, contactMessages)
}
