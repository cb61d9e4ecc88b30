package persist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/testutil"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_SaveWritesOneDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	ctx := context.Background()

	logs := []domain.PracticeLog{
		testutil.NewTestLog("axel", testutil.WithID("l1"), testutil.WithDate("2024-01-01"), testutil.WithVariant("Single")),
	}
	overlay := domain.NewStatusOverlay()
	overlay.Set("axel", domain.StatusLearning)

	var written []byte
	backend.EXPECT().Write(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data []byte) error {
			written = data
			return nil
		}).Times(1)

	require.NoError(t, NewGateway(backend, nil).Save(ctx, logs, overlay))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(written, &doc))
	assert.Contains(t, doc, "logs")
	assert.JSONEq(t, `{"axel":"learning"}`, string(doc["statuses"]))
	assert.JSONEq(t, `[{"id":"l1","skillId":"axel","skillName":"axel","date":"2024-01-01","variant":"Single"}]`, string(doc["logs"]))
}

func TestGateway_SaveEmptyState(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)

	backend.EXPECT().Write(gomock.Any(), []byte(`{"logs":[],"statuses":{}}`)).Return(nil)

	require.NoError(t, NewGateway(backend, nil).Save(context.Background(), nil, domain.NewStatusOverlay()))
}

func TestGateway_SaveSurfacesWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	diskFull := errors.New("disk full")

	backend.EXPECT().Write(gomock.Any(), gomock.Any()).Return(diskFull)

	err := NewGateway(backend, nil).Save(context.Background(), nil, nil)
	assert.ErrorIs(t, err, diskFull)
}

func TestGateway_LoadAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Read(gomock.Any()).Return(nil, ErrNoDocument)

	res := NewGateway(backend, nil).Load(context.Background())
	assert.False(t, res.Found)
	assert.Empty(t, res.Logs)
	assert.Equal(t, 0, res.Statuses.Len())
}

func TestGateway_LoadBackendFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Read(gomock.Any()).Return(nil, errors.New("permission denied"))

	res := NewGateway(backend, nil).Load(context.Background())
	assert.False(t, res.Found)
	assert.NotNil(t, res.Logs)
	assert.NotNil(t, res.Statuses)
}

func TestGateway_LoadMalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Read(gomock.Any()).Return([]byte(`{"logs": [`), nil)

	res := NewGateway(backend, nil).Load(context.Background())
	assert.False(t, res.Found)
	assert.Empty(t, res.Logs)
	assert.Equal(t, 0, res.Statuses.Len())
}

func TestGateway_LoadEmptyButPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Read(gomock.Any()).Return([]byte(`{"logs":[],"statuses":{}}`), nil)

	res := NewGateway(backend, nil).Load(context.Background())
	assert.True(t, res.Found, "an empty stored document is still a stored document")
	assert.Empty(t, res.Logs)
}

func TestGateway_LoadLegacyEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Read(gomock.Any()).Return([]byte("[]"), nil)

	res := NewGateway(backend, nil).Load(context.Background())
	assert.False(t, res.Found)
}

func TestGateway_LoadCoercesUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Read(gomock.Any()).
		Return([]byte(`{"logs":[],"statuses":{"axel":"expert","lutz":"mastered","flip":7}}`), nil)

	res := NewGateway(backend, nil).Load(context.Background())
	require.True(t, res.Found)

	s, ok := res.Statuses.Get("axel")
	require.True(t, ok)
	assert.Equal(t, domain.StatusNew, s)
	s, _ = res.Statuses.Get("lutz")
	assert.Equal(t, domain.StatusMastered, s)
	s, _ = res.Statuses.Get("flip")
	assert.Equal(t, domain.StatusNew, s)
}

func TestGateway_RoundTrip(t *testing.T) {
	backend := NewFileBackend(t.TempDir() + "/skating_data.json")
	gw := NewGateway(backend, nil)
	ctx := context.Background()

	logs := []domain.PracticeLog{
		testutil.NewTestLog("axel", testutil.WithDate("2024-01-01"), testutil.WithNote(`said "wow"`)),
		testutil.NewTestLog("lutz", testutil.WithDate("2024-01-02"), testutil.WithVariant("Double")),
	}
	overlay := domain.NewStatusOverlay()
	overlay.Set("lutz", domain.StatusMastered)
	overlay.Set("flip", domain.StatusNew)

	require.NoError(t, gw.Save(ctx, logs, overlay))

	res := gw.Load(ctx)
	require.True(t, res.Found)
	assert.Equal(t, logs, res.Logs)
	assert.Equal(t, overlay.ToSerializable(), res.Statuses.ToSerializable())
}
