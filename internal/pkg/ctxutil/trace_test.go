package ctxutil

import (
	"context"
	"reflect"
	"testing"
)

func TestLogFields(t *testing.T) {
	if got := LogFields(context.Background()); got != nil {
		t.Fatalf("expected no fields, got %v", got)
	}
	ctx := WithRequestIDs(context.Background(), RequestIDs{RequestID: "req-1"})
	if got, want := LogFields(ctx), []interface{}{"request_id", "req-1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	ctx = WithRequestIDs(ctx, RequestIDs{RequestID: "req-2", TraceID: "abc"})
	if got := RequestIDsFrom(ctx); got.RequestID != "req-2" || got.TraceID != "abc" {
		t.Fatalf("unexpected ids: %+v", got)
	}
}
