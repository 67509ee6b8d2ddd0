package bus

import (
	"context"

	"github.com/yungbote/contacts-backend/internal/services"
)

// Bus carries change events between processes sharing a contacts database.
type Bus interface {
	Publish(ctx context.Context, ev services.ChangeEvent) error
	StartForwarder(ctx context.Context, onEvent func(ev services.ChangeEvent)) error
	Close() error
}
