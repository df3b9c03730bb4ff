package teaming

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"github.com/osrsclan/event-manager-api/infrastructure/repository/mocks"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

type testMocks struct {
	teams       *mocks.MockTeamRepository
	events      *mocks.MockEventRepository
	submissions *mocks.MockSubmissionRepository
}

func newTestService(t *testing.T) (Service, testMocks) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		teams:       mocks.NewMockTeamRepository(ctrl),
		events:      mocks.NewMockEventRepository(ctrl),
		submissions: mocks.NewMockSubmissionRepository(ctrl),
	}
	return NewService(m.teams, m.events, m.submissions), m
}

func TestAddMemberTrocaDeTime(t *testing.T) {
	svc, m := newTestService(t)

	team := &domain.TeamWithMembers{Team: domain.Team{ID: "team1", Name: "Alfa"}}

	m.teams.EXPECT().GetTeamByID("team1").Return(team, nil)
	m.teams.EXPECT().RemoveMemberFromAllTeams("user1").Return(nil)
	m.teams.EXPECT().AddMember("team1", "user1").Return(nil)

	err := svc.AddMember("team1", "user1")
	assert.NoError(t, err)
}

func TestAddMemberTimeInexistente(t *testing.T) {
	svc, m := newTestService(t)

	m.teams.EXPECT().GetTeamByID("nope").Return(nil, nil)

	err := svc.AddMember("nope", "user1")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestGetTeamOverviewsOrdenaPorTotal(t *testing.T) {
	svc, m := newTestService(t)

	event := &domain.Event{ID: "evt123", Active: true, StartDate: time.Now()}

	teams := []*domain.Team{
		{ID: "team1", Name: "Alfa"},
		{ID: "team2", Name: "Beta"},
	}

	rsn1 := "zezima"
	participants := []*domain.EventParticipant{
		{UserID: "user1", RSN: rsn1},
		{UserID: "user2", RSN: "woox"},
		{UserID: "user3", RSN: "b0aty"},
	}

	totals := map[string]int64{
		"user1": 1_000_000,
		"user2": 5_000_000,
		"user3": 2_000_000,
	}

	alfa := &domain.TeamWithMembers{
		Team: domain.Team{ID: "team1", Name: "Alfa"},
		Members: []domain.TeamMember{
			{TeamID: "team1", UserID: "user1", User: &domain.DiscordUser{ID: "user1", Username: "zezima"}},
		},
	}
	beta := &domain.TeamWithMembers{
		Team: domain.Team{ID: "team2", Name: "Beta"},
		Members: []domain.TeamMember{
			{TeamID: "team2", UserID: "user2", User: &domain.DiscordUser{ID: "user2", Username: "woox"}},
			{TeamID: "team2", UserID: "user3", User: &domain.DiscordUser{ID: "user3", Username: "b0aty"}},
		},
	}

	m.events.EXPECT().GetActiveEvent().Return(event, nil)
	m.teams.EXPECT().ListTeams().Return(teams, nil)
	m.submissions.EXPECT().ApprovedTotalsByUser("evt123").Return(totals, nil)
	m.events.EXPECT().ListParticipants("evt123").Return(participants, nil)
	m.teams.EXPECT().GetTeamByID("team1").Return(alfa, nil)
	m.teams.EXPECT().GetTeamByID("team2").Return(beta, nil)

	overviews, err := svc.GetTeamOverviews()
	require.NoError(t, err)
	require.Len(t, overviews, 2)

	// Beta (7m) vem antes de Alfa (1m)
	assert.Equal(t, "Beta", overviews[0].Name)
	assert.Equal(t, int64(7_000_000), overviews[0].TeamTotal)
	assert.Equal(t, "Alfa", overviews[1].Name)
	assert.Equal(t, int64(1_000_000), overviews[1].TeamTotal)

	// Membros do Beta ordenados do maior para o menor
	require.Len(t, overviews[0].Members, 2)
	assert.Equal(t, "woox", overviews[0].Members[0].Username)
	assert.Equal(t, int64(5_000_000), overviews[0].Members[0].SubmissionTotal)

	// RSN do participante preenchido
	require.NotNil(t, overviews[1].Members[0].RSN)
	assert.Equal(t, rsn1, *overviews[1].Members[0].RSN)
}

func TestGetTeamOverviewsSemEventoAtivo(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetActiveEvent().Return(nil, nil)

	_, err := svc.GetTeamOverviews()
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}

func TestUpdateTeamInexistente(t *testing.T) {
	svc, m := newTestService(t)

	m.teams.EXPECT().GetTeamByID("nope").Return(nil, nil)

	name := "Novo nome"
	err := svc.UpdateTeam(&domain.UpdateTeamRequest{ID: "nope", Name: &name})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
