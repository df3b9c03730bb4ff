package milestoning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"github.com/osrsclan/event-manager-api/infrastructure/repository/mocks"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

func newServiceWithMocks(t *testing.T) (Service, *mocks.MockEventRepository, *mocks.MockSubmissionRepository) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)

	cfg := &config.Config{}
	cfg.Milestones.BucketingPolicy = "day-index"

	return NewService(cfg, events, submissions), events, submissions
}

func TestGetMilestonesUsaInicioDoEventoComoEpoch(t *testing.T) {
	svc, events, submissions := newServiceWithMocks(t)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "evt123", Name: "Yama Mass", Active: true, StartDate: start}

	records := []domain.SubmissionRecord{
		{Value: "1000000", CreatedAt: start.Add(3 * time.Hour), TeamID: "team1", TeamName: "Alfa"},
		{Value: "500000", CreatedAt: start.Add(30 * time.Hour), TeamID: "team1", TeamName: "Alfa"},
	}

	events.EXPECT().GetActiveEvent().Return(event, nil)
	submissions.EXPECT().ListApprovedRecords("evt123").Return(records, nil)

	response, err := svc.GetMilestones()
	require.NoError(t, err)
	require.Len(t, response.Milestones, 2)

	assert.Equal(t, int64(0), response.Milestones[0].Day)
	assert.Equal(t, int64(1_000_000), response.Milestones[0].DayTotal)
	assert.Equal(t, int64(1), response.Milestones[1].Day)
	assert.Equal(t, int64(1_500_000), response.Milestones[1].CumulativeTotal)
}

func TestGetMilestonesSemEventoAtivo(t *testing.T) {
	svc, events, _ := newServiceWithMocks(t)

	events.EXPECT().GetActiveEvent().Return(nil, nil)

	_, err := svc.GetMilestones()
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}

func TestRenderChartGeraPNG(t *testing.T) {
	svc, events, submissions := newServiceWithMocks(t)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "evt123", Name: "Yama Mass", Active: true, StartDate: start}

	records := []domain.SubmissionRecord{
		{Value: "1000000", CreatedAt: start.Add(3 * time.Hour), TeamID: "team1", TeamName: "Alfa"},
		{Value: "2000000", CreatedAt: start.Add(27 * time.Hour), TeamID: "team1", TeamName: "Alfa"},
		{Value: "500000", CreatedAt: start.Add(28 * time.Hour), TeamID: "team2", TeamName: "Beta"},
	}

	events.EXPECT().GetActiveEvent().Return(event, nil)
	submissions.EXPECT().ListApprovedRecords("evt123").Return(records, nil)

	png, err := svc.RenderChart()
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// Assinatura PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
