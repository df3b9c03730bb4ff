package hiscoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"github.com/osrsclan/event-manager-api/infrastructure/repository/mocks"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

func newHiscoreService(t *testing.T) (Service, *mocks.MockEventRepository, *mocks.MockSnapshotRepository) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	snapshots := mocks.NewMockSnapshotRepository(ctrl)

	dir := t.TempDir()
	writeRateFile(t, dir, "main_ehp.json", `[
		{"skill": "attack", "methods": [{"startExp": 0, "rate": 40000, "description": "chinning"}]}
	]`)
	writeRateFile(t, dir, "main_ehb.json", `[
		{"boss": "zulrah", "rate": 39}
	]`)

	rates := NewRateSource(dir, time.Hour)
	return NewService(events, snapshots, rates, time.Hour), events, snapshots
}

func snapshotWith(id int, rsn string, takenAt time.Time, xp int64, kills int64) *domain.HiscoreSnapshot {
	stats := domain.EmptyPlayerStats()
	stats.Skills["attack"] = domain.StatLine{"rank": 1000, "level": 70, "xp": xp}
	stats.Bosses["Zulrah"] = domain.StatLine{"rank": 500, "kills": kills}
	return &domain.HiscoreSnapshot{ID: id, RSN: rsn, TakenAt: takenAt, Stats: stats}
}

func TestLoadHiscoreCalculaDiffEEficiencia(t *testing.T) {
	svc, events, snapshots := newHiscoreService(t)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "evt123", Active: true, StartDate: start}

	events.EXPECT().GetActiveEvent().Return(event, nil)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{
		{UserID: "u1", RSN: "zezima"},
	}, nil)

	snapshots.EXPECT().GetEarliestSince("zezima", gomock.Any()).
		Return(snapshotWith(1, "zezima", start.Add(time.Hour), 100_000, 39), nil)
	snapshots.EXPECT().GetLatest("zezima").
		Return(snapshotWith(9, "zezima", start.Add(72*time.Hour), 180_000, 117), nil)

	progress, err := svc.LoadHiscore()
	require.NoError(t, err)
	require.Contains(t, progress, "zezima")

	player := progress["zezima"]
	assert.Equal(t, int64(80_000), player.Diff.Skills["attack"]["xp"])
	assert.Equal(t, int64(78), player.Diff.Bosses["Zulrah"]["kills"])
	assert.Equal(t, 2.0, player.EHP.Total)
	assert.Equal(t, 2.0, player.EHB.Total)
	assert.Empty(t, player.Error)
}

func TestLoadHiscoreSemSnapshotInicialComecaDoZero(t *testing.T) {
	svc, events, snapshots := newHiscoreService(t)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "evt123", Active: true, StartDate: start}

	events.EXPECT().GetActiveEvent().Return(event, nil)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{
		{UserID: "u1", RSN: "novato"},
	}, nil)

	snapshots.EXPECT().GetEarliestSince("novato", gomock.Any()).Return(nil, nil)
	snapshots.EXPECT().GetLatest("novato").
		Return(snapshotWith(4, "novato", start.Add(24*time.Hour), 40_000, 0), nil)

	progress, err := svc.LoadHiscore()
	require.NoError(t, err)
	require.Contains(t, progress, "novato")

	// Sem snapshot inicial, o diff é o snapshot final inteiro
	assert.Equal(t, int64(40_000), progress["novato"].Diff.Skills["attack"]["xp"])
}

func TestLoadHiscoreUsaAliasQuandoRSNMudou(t *testing.T) {
	svc, events, snapshots := newHiscoreService(t)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "evt123", Active: true, StartDate: start}

	events.EXPECT().GetActiveEvent().Return(event, nil)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{
		{UserID: "u1", RSN: "lvl 4 zebak"},
	}, nil)

	snapshots.EXPECT().GetEarliestSince("lvl 4 zebak", gomock.Any()).Return(nil, nil)
	snapshots.EXPECT().GetLatest("lvl 4 zebak").Return(nil, nil)
	snapshots.EXPECT().GetLatest("phrukurself").
		Return(snapshotWith(7, "phrukurself", start.Add(24*time.Hour), 10_000, 0), nil)

	progress, err := svc.LoadHiscore()
	require.NoError(t, err)
	require.Contains(t, progress, "lvl 4 zebak")
	assert.Equal(t, int64(10_000), progress["lvl 4 zebak"].Diff.Skills["attack"]["xp"])
}

func TestLoadHiscoreSemEventoAtivo(t *testing.T) {
	svc, events, _ := newHiscoreService(t)

	events.EXPECT().GetActiveEvent().Return(nil, nil)

	_, err := svc.LoadHiscore()
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}

func TestLoadHiscoreCacheiaResultadoPorRSN(t *testing.T) {
	svc, events, snapshots := newHiscoreService(t)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "evt123", Active: true, StartDate: start}

	events.EXPECT().GetActiveEvent().Return(event, nil).Times(2)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{
		{UserID: "u1", RSN: "zezima"},
	}, nil).Times(2)

	// Snapshots consultados apenas na primeira chamada
	snapshots.EXPECT().GetEarliestSince("zezima", gomock.Any()).
		Return(snapshotWith(1, "zezima", start.Add(time.Hour), 100_000, 39), nil)
	snapshots.EXPECT().GetLatest("zezima").
		Return(snapshotWith(9, "zezima", start.Add(72*time.Hour), 180_000, 117), nil)

	_, err := svc.LoadHiscore()
	require.NoError(t, err)

	progress, err := svc.LoadHiscore()
	require.NoError(t, err)
	assert.Contains(t, progress, "zezima")
}

func TestLoadHiscoreRecalculaDepoisDoTTL(t *testing.T) {
	svc, events, snapshots := newHiscoreService(t)

	// Relógio controlado: a segunda chamada acontece depois do TTL expirar
	current := time.Date(2026, 6, 4, 12, 0, 0, 0, time.UTC)
	svc.(*service).now = func() time.Time { return current }

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "evt123", Active: true, StartDate: start}

	events.EXPECT().GetActiveEvent().Return(event, nil).Times(2)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{
		{UserID: "u1", RSN: "zezima"},
	}, nil).Times(2)

	snapshots.EXPECT().GetEarliestSince("zezima", gomock.Any()).
		Return(snapshotWith(1, "zezima", start.Add(time.Hour), 100_000, 39), nil)
	snapshots.EXPECT().GetLatest("zezima").
		Return(snapshotWith(9, "zezima", start.Add(72*time.Hour), 180_000, 117), nil)

	_, err := svc.LoadHiscore()
	require.NoError(t, err)

	current = current.Add(2 * time.Hour)

	// Snapshot mais novo chegou nesse meio tempo
	snapshots.EXPECT().GetEarliestSince("zezima", gomock.Any()).
		Return(snapshotWith(1, "zezima", start.Add(time.Hour), 100_000, 39), nil)
	snapshots.EXPECT().GetLatest("zezima").
		Return(snapshotWith(12, "zezima", start.Add(84*time.Hour), 220_000, 117), nil)

	progress, err := svc.LoadHiscore()
	require.NoError(t, err)
	assert.Equal(t, int64(120_000), progress["zezima"].Diff.Skills["attack"]["xp"])
}

func TestLoadHiscoreErroIndividualNaoDerrubaOConjunto(t *testing.T) {
	svc, events, snapshots := newHiscoreService(t)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "evt123", Active: true, StartDate: start}

	events.EXPECT().GetActiveEvent().Return(event, nil)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{
		{UserID: "u1", RSN: "zezima,quebrado"},
	}, nil)

	snapshots.EXPECT().GetEarliestSince("zezima", gomock.Any()).
		Return(snapshotWith(1, "zezima", start.Add(time.Hour), 100_000, 39), nil)
	snapshots.EXPECT().GetLatest("zezima").
		Return(snapshotWith(9, "zezima", start.Add(72*time.Hour), 180_000, 117), nil)

	snapshots.EXPECT().GetEarliestSince("quebrado", gomock.Any()).
		Return(nil, assert.AnError)

	progress, err := svc.LoadHiscore()
	require.NoError(t, err)

	assert.Empty(t, progress["zezima"].Error)
	require.Contains(t, progress, "quebrado")
	assert.NotEmpty(t, progress["quebrado"].Error)
}
