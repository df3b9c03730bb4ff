package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	osrsmocks "github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs/mocks"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs/osrsclient"
	"github.com/osrsclan/event-manager-api/infrastructure/repository/mocks"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

func newSyncService(t *testing.T) (*HiscoreSnapshotSyncService, *mocks.MockEventRepository, *mocks.MockSnapshotRepository, *osrsmocks.MockIntegrator) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	snapshots := mocks.NewMockSnapshotRepository(ctrl)
	integrator := osrsmocks.NewMockIntegrator(ctrl)

	service := &HiscoreSnapshotSyncService{
		eventRepo:    events,
		snapshotRepo: snapshots,
		osrsService:  integrator,
	}
	return service, events, snapshots, integrator
}

func TestActiveEventRSNsDeduplicaEIgnoraAlias(t *testing.T) {
	service, events, _, _ := newSyncService(t)

	event := &domain.Event{ID: "evt123", Active: true}
	participants := []*domain.EventParticipant{
		{RSN: "zezima,alt zezima"},
		{RSN: "Zezima"},          // duplicado após normalizar
		{RSN: "lvl 4 zebak"},     // alias: consultado pelo nome novo, não pelo antigo
		{RSN: "phrukurself"},
	}

	events.EXPECT().GetActiveEvent().Return(event, nil)
	events.EXPECT().ListParticipants("evt123").Return(participants, nil)

	rsns, err := service.activeEventRSNs()
	require.NoError(t, err)
	assert.Equal(t, []string{"zezima", "alt zezima", "phrukurself"}, rsns)
}

func TestActiveEventRSNsSemEventoAtivo(t *testing.T) {
	service, events, _, _ := newSyncService(t)

	events.EXPECT().GetActiveEvent().Return(nil, nil)

	rsns, err := service.activeEventRSNs()
	require.NoError(t, err)
	assert.Empty(t, rsns)
}

func TestCaptureSnapshotSalvaStats(t *testing.T) {
	service, _, snapshots, integrator := newSyncService(t)

	stats := domain.EmptyPlayerStats()
	stats.Skills["overall"] = domain.StatLine{"rank": 100, "level": 2277, "xp": 4_600_000_000}

	integrator.EXPECT().FetchPlayerStats("zezima").Return(&stats, nil)
	snapshots.EXPECT().SaveSnapshot(gomock.Any()).DoAndReturn(func(snapshot *domain.HiscoreSnapshot) error {
		assert.Equal(t, "zezima", snapshot.RSN)
		assert.False(t, snapshot.TakenAt.IsZero())
		assert.Equal(t, int64(2277), snapshot.Stats.Skills["overall"]["level"])
		return nil
	})

	assert.True(t, service.captureSnapshot("zezima"))
}

func TestGetStatusReportaUltimaSincronizacao(t *testing.T) {
	service, events, snapshots, integrator := newSyncService(t)

	event := &domain.Event{ID: "evt123", Active: true}
	events.EXPECT().GetActiveEvent().Return(event, nil)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{
		{RSN: "zezima"},
	}, nil)

	stats := domain.EmptyPlayerStats()
	integrator.EXPECT().FetchPlayerStats("zezima").Return(&stats, nil)
	snapshots.EXPECT().SaveSnapshot(gomock.Any()).Return(nil)

	service.syncAllSnapshots()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestCaptureSnapshotPulaRSNInexistente(t *testing.T) {
	service, _, _, integrator := newSyncService(t)

	integrator.EXPECT().FetchPlayerStats("sumido").Return(nil, osrsclient.ErrPlayerNotFound)

	assert.False(t, service.captureSnapshot("sumido"))
}

func TestCaptureSnapshotNaoSalvaEmErro(t *testing.T) {
	service, _, _, integrator := newSyncService(t)

	integrator.EXPECT().FetchPlayerStats("zezima").Return(nil, errors.New("timeout"))

	assert.False(t, service.captureSnapshot("zezima"))
}
