package persist

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBackend_ReadMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	b := NewSQLiteBackend(database, testutil.NewTestUoW(database))

	_, err := b.Read(context.Background())
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestSQLiteBackend_GatewayRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	gw := NewGateway(NewSQLiteBackend(database, testutil.NewTestUoW(database)), nil)
	ctx := context.Background()

	logs := []domain.PracticeLog{testutil.NewTestLog("sit-spin", testutil.WithDate("2024-05-01"))}
	overlay := domain.NewStatusOverlay()
	overlay.Set("sit-spin", domain.StatusMastered)

	require.NoError(t, gw.Save(ctx, logs, overlay))
	require.NoError(t, gw.Save(ctx, nil, overlay))

	res := gw.Load(ctx)
	require.True(t, res.Found)
	assert.Empty(t, res.Logs, "second save replaces the first")
	s, _ := res.Statuses.Get("sit-spin")
	assert.Equal(t, domain.StatusMastered, s)
}

func TestSQLiteBackend_FailedWriteKeepsPriorDocument(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	good := NewSQLiteBackend(database, testutil.NewTestUoW(database))
	require.NoError(t, good.Write(ctx, []byte(`{"logs":[],"statuses":{"axel":"learning"}}`)))

	ioErr := errors.New("disk I/O error")
	failing := NewSQLiteBackend(database, &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: ioErr})

	err := failing.Write(ctx, []byte(`{"logs":[],"statuses":{}}`))
	assert.ErrorIs(t, err, ioErr)

	got, err := good.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"logs":[],"statuses":{"axel":"learning"}}`, string(got))
}
