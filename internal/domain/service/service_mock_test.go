package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
	"github.com/diegoclair/hackathon-bot/internal/tracking"
	"github.com/diegoclair/hackathon-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockGuildRepo   *mocks.MockGuildRepo
	mockSheets      *mocks.MockSheetsClient
	mockNotifier    *mocks.MockNotifier
	tracking        *tracking.MemoryStore
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	guildRepo := mocks.NewMockGuildRepo(ctrl)
	dm.EXPECT().Guild().Return(guildRepo).AnyTimes()
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockGuildRepo:   guildRepo,
		mockSheets:      mocks.NewMockSheetsClient(ctrl),
		mockNotifier:    mocks.NewMockNotifier(ctrl),
		tracking:        tracking.NewMemoryStore(),
	}

	return
}

func newTestInstance(t *testing.T, m allMocks, settings Settings) *Instance {
	t.Helper()

	instance := NewInstance(m.mockDataManager, m.mockSheets, m.mockNotifier, m.tracking, settings)
	require.NotNil(t, instance)
	instance.Poller.now = func() time.Time { return testNow }
	return instance
}
