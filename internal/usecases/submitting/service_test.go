package submitting

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

type testMocks struct {
	submissions *mocks.MockSubmissionRepository
	events      *mocks.MockEventRepository
	teams       *mocks.MockTeamRepository
}

func newTestService(t *testing.T) (*service, testMocks) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		submissions: mocks.NewMockSubmissionRepository(ctrl),
		events:      mocks.NewMockEventRepository(ctrl),
		teams:       mocks.NewMockTeamRepository(ctrl),
	}

	cfg := &config.Config{}
	cfg.Submissions.MaxValue = 200_000_000

	svc := &service{
		cfg:         cfg,
		submissions: m.submissions,
		events:      m.events,
		teams:       m.teams,
		now:         func() time.Time { return time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC) },
	}
	return svc, m
}

func openEvent() *domain.Event {
	end := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:        "evt123",
		Active:    true,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}
}

func validRequest() *AddSubmissionRequest {
	return &AddSubmissionRequest{
		UserID:   "user1",
		Name:     "Oathplate helm",
		Value:    "2.5m",
		ProofURL: "https://cdn.discordapp.com/proof1.png",
	}
}

func TestAddSubmissionFluxoCompleto(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetActiveEvent().Return(openEvent(), nil)
	m.events.EXPECT().GetParticipantByUser("evt123", "user1").Return(&domain.EventParticipant{ID: 1, UserID: "user1"}, nil)
	m.teams.EXPECT().GetTeamByMember("user1").Return(&domain.TeamWithMembers{Team: domain.Team{ID: "team1"}}, nil)
	m.submissions.EXPECT().GetSubmissionByProof("evt123", "https://cdn.discordapp.com/proof1.png").Return(nil, nil)
	m.submissions.EXPECT().CreateSubmission(gomock.Any()).DoAndReturn(
		func(sub *domain.Submission) (*domain.Submission, error) {
			sub.ID = 42
			return sub, nil
		})

	submission, err := svc.AddSubmission(validRequest())
	require.NoError(t, err)

	// Valor armazenado já normalizado em GP
	assert.Equal(t, "2500000", submission.Value)
	assert.Equal(t, "team1", submission.TeamID)
	assert.Equal(t, "evt123", submission.EventID)
}

func TestAddSubmissionSemEventoAtivo(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetActiveEvent().Return(nil, nil)

	_, err := svc.AddSubmission(validRequest())
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}

func TestAddSubmissionForaDaJanela(t *testing.T) {
	svc, m := newTestService(t)

	closed := openEvent()
	end := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC) // antes do "agora" do teste
	closed.EndDate = &end

	m.events.EXPECT().GetActiveEvent().Return(closed, nil)

	_, err := svc.AddSubmission(validRequest())
	assert.ErrorIs(t, err, ErrEventClosed)
}

func TestAddSubmissionNaoRegistrado(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetActiveEvent().Return(openEvent(), nil)
	m.events.EXPECT().GetParticipantByUser("evt123", "user1").Return(nil, nil)

	_, err := svc.AddSubmission(validRequest())
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestAddSubmissionSemTime(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetActiveEvent().Return(openEvent(), nil)
	m.events.EXPECT().GetParticipantByUser("evt123", "user1").Return(&domain.EventParticipant{ID: 1}, nil)
	m.teams.EXPECT().GetTeamByMember("user1").Return(nil, nil)

	_, err := svc.AddSubmission(validRequest())
	assert.ErrorIs(t, err, ErrNotInTeam)
}

func TestAddSubmissionValorInvalido(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetActiveEvent().Return(openEvent(), nil)
	m.events.EXPECT().GetParticipantByUser("evt123", "user1").Return(&domain.EventParticipant{ID: 1}, nil)
	m.teams.EXPECT().GetTeamByMember("user1").Return(&domain.TeamWithMembers{Team: domain.Team{ID: "team1"}}, nil)

	req := validRequest()
	req.Value = "2kk"

	_, err := svc.AddSubmission(req)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestAddSubmissionValorAcimaDoTeto(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetActiveEvent().Return(openEvent(), nil)
	m.events.EXPECT().GetParticipantByUser("evt123", "user1").Return(&domain.EventParticipant{ID: 1}, nil)
	m.teams.EXPECT().GetTeamByMember("user1").Return(&domain.TeamWithMembers{Team: domain.Team{ID: "team1"}}, nil)

	req := validRequest()
	req.Value = "1b"

	_, err := svc.AddSubmission(req)
	assert.ErrorIs(t, err, ErrValueTooHigh)
}

func TestAddSubmissionProvaDuplicada(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetActiveEvent().Return(openEvent(), nil)
	m.events.EXPECT().GetParticipantByUser("evt123", "user1").Return(&domain.EventParticipant{ID: 1}, nil)
	m.teams.EXPECT().GetTeamByMember("user1").Return(&domain.TeamWithMembers{Team: domain.Team{ID: "team1"}}, nil)
	m.submissions.EXPECT().GetSubmissionByProof("evt123", gomock.Any()).Return(&domain.Submission{ID: 9}, nil)

	_, err := svc.AddSubmission(validRequest())
	assert.ErrorIs(t, err, ErrDuplicateProof)
}

func TestApproveSubmission(t *testing.T) {
	svc, m := newTestService(t)

	m.submissions.EXPECT().
		UpdateSubmissionStatus(42, domain.SubmissionStatusApproved, "mod1").
		Return(&domain.Submission{ID: 42, Status: domain.SubmissionStatusApproved}, nil)

	submission, err := svc.ApproveSubmission(42, "mod1")
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusApproved, submission.Status)
}

func TestRejectSubmissionInexistente(t *testing.T) {
	svc, m := newTestService(t)

	m.submissions.EXPECT().
		UpdateSubmissionStatus(99, domain.SubmissionStatusRejected, "mod1").
		Return(nil, nil)

	_, err := svc.RejectSubmission(99, "mod1")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}
