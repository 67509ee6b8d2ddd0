package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/contacts-backend/internal/data/repos"
	"github.com/yungbote/contacts-backend/internal/data/repos/testutil"
	"github.com/yungbote/contacts-backend/internal/pkg/ctxutil"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
	"github.com/yungbote/contacts-backend/internal/validation"
)

func observedServices(t *testing.T) (ContactService, GroupService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	gdb := testutil.DB(t)
	groupRepo := repos.NewGroupRepo(gdb, log)
	contactRepo := repos.NewContactRepo(gdb, log)
	return NewContactService(log, contactRepo, groupRepo, Options{}),
		NewGroupService(log, groupRepo, Options{}),
		logs
}

func TestServiceLogsCarryRequestIDs(t *testing.T) {
	contactSvc, groupSvc, logs := observedServices(t)
	ctx := ctxutil.WithRequestIDs(context.Background(), ctxutil.RequestIDs{RequestID: "req-7", TraceID: "trace-7"})

	created, err := contactSvc.Create(ctx, contactInput("555-0300"))
	require.NoError(t, err)
	_, err = groupSvc.Create(ctx, validation.GroupInput{Name: "Friends"})
	require.NoError(t, err)
	require.NoError(t, contactSvc.Delete(ctx, created.ID.String()))

	for _, msg := range []string{"contact created", "group created", "contact deleted"} {
		entries := logs.FilterMessage(msg).AllUntimed()
		require.Len(t, entries, 1, msg)
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-7", fields["request_id"], msg)
		assert.Equal(t, "trace-7", fields["trace_id"], msg)
	}
}

func TestServiceLogsRejectedFields(t *testing.T) {
	contactSvc, _, logs := observedServices(t)
	ctx := ctxutil.WithRequestIDs(context.Background(), ctxutil.RequestIDs{RequestID: "req-8"})

	in := contactInput("")
	in.Email = "not-an-email"
	_, err := contactSvc.Create(ctx, in)
	require.Error(t, err)

	entries := logs.FilterMessage("payload rejected").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-8", fields["request_id"])
	assert.Equal(t, "contacts.create", fields["op"])
	assert.ElementsMatch(t, []interface{}{"mobile", "email"}, fields["fields"])
}

func TestServiceLogsWithoutRequestIDs(t *testing.T) {
	contactSvc, _, logs := observedServices(t)

	_, err := contactSvc.Create(context.Background(), contactInput("555-0301"))
	require.NoError(t, err)

	entries := logs.FilterMessage("contact created").AllUntimed()
	require.Len(t, entries, 1)
	_, ok := entries[0].ContextMap()["request_id"]
	assert.False(t, ok)
}
