package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
	"github.com/yungbote/contacts-backend/internal/pkg/ctxutil"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
	"github.com/yungbote/contacts-backend/internal/validation"
)

const defaultStoreTimeout = 10 * time.Second

var tracer = otel.Tracer("github.com/yungbote/contacts-backend/internal/services")

// Options holds the knobs shared by the contact and group services.
type Options struct {
	// StoreTimeout bounds every store round trip a single request makes.
	StoreTimeout time.Duration
	// EnforceGroupReference rejects contacts whose groupId names no group.
	EnforceGroupReference bool
	Events                EventPublisher
}

func (o Options) withDefaults() Options {
	if o.StoreTimeout <= 0 {
		o.StoreTimeout = defaultStoreTimeout
	}
	if o.Events == nil {
		o.Events = NoopPublisher()
	}
	return o
}

func (o Options) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, o.StoreTimeout)
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records server-side failures on the span. Client errors (bad input,
// missing entities, duplicates) are expected outcomes and leave the span OK.
func endSpan(span trace.Span, err error) {
	if err != nil {
		code := apperr.CodeOf(err)
		span.SetAttributes(attribute.String("app.error_code", string(code)))
		if code == "" || code == apperr.CodeStoreUnavailable || code == apperr.CodeInternal {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}

// requestLog binds the request and trace ids carried by ctx onto log.
func requestLog(ctx context.Context, log *logger.Logger) *logger.Logger {
	kv := ctxutil.LogFields(ctx)
	if len(kv) == 0 {
		return log
	}
	return log.With(kv...)
}

func rejectPayload(ctx context.Context, log *logger.Logger, op string, vs validation.Violations) error {
	requestLog(ctx, log).Debug("payload rejected", "op", op, "fields", vs.Fields())
	return apperr.Validation(op, vs)
}

func publish(ctx context.Context, log *logger.Logger, events EventPublisher, ev ChangeEvent) {
	if err := events.Publish(ctx, ev); err != nil {
		requestLog(ctx, log).Warn("change event publish failed", "kind", ev.Kind, "entity_id", ev.EntityID.String(), "error", err)
	}
}
