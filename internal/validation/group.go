package validation

type GroupInput struct {
	Name string `json:"name" validate:"notblank"`
}

var groupMessages = map[string]string{
	"name": "Name is required",
}

func Group(in GroupInput) Violations {
	return check(in, groupMessages)
}
