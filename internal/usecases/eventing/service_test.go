package eventing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"github.com/osrsclan/event-manager-api/infrastructure/repository/mocks"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

func activeEvent() *domain.Event {
	return &domain.Event{
		ID:        "evt123",
		Name:      "Yama Mass",
		Active:    true,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegisterParticipantNovoRegistro(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	svc := NewService(events, mocks.NewMockDiscordUserRepository(ctrl))

	events.EXPECT().GetActiveEvent().Return(activeEvent(), nil)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{}, nil).Times(2)
	events.EXPECT().GetParticipantByUser("evt123", "user1").Return(nil, nil)
	events.EXPECT().CreateParticipant(gomock.Any()).DoAndReturn(
		func(p *domain.EventParticipant) (*domain.EventParticipant, error) {
			p.ID = 1
			return p, nil
		})

	participant, err := svc.RegisterParticipant("user1", " Zezima , Alt Zezima ", nil)
	require.NoError(t, err)

	assert.Equal(t, "zezima,alt zezima", participant.RSN)
	assert.Equal(t, "evt123", participant.EventID)
}

func TestRegisterParticipantAtualizaRegistroExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	svc := NewService(events, mocks.NewMockDiscordUserRepository(ctrl))

	existing := &domain.EventParticipant{ID: 7, EventID: "evt123", UserID: "user1", RSN: "zezima"}

	events.EXPECT().GetActiveEvent().Return(activeEvent(), nil)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{existing}, nil).Times(2)
	events.EXPECT().GetParticipantByUser("evt123", "user1").Return(existing, nil)
	events.EXPECT().UpdateParticipantRSN(7, "zezima,nova conta").Return(nil)

	participant, err := svc.RegisterParticipant("user1", "Zezima, Nova Conta", nil)
	require.NoError(t, err)
	assert.Equal(t, "zezima,nova conta", participant.RSN)
}

func TestRegisterParticipantRejeitaRSNDeOutroUsuario(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	svc := NewService(events, mocks.NewMockDiscordUserRepository(ctrl))

	other := &domain.EventParticipant{ID: 9, EventID: "evt123", UserID: "user2", RSN: "zezima"}

	events.EXPECT().GetActiveEvent().Return(activeEvent(), nil)
	events.EXPECT().ListParticipants("evt123").Return([]*domain.EventParticipant{other}, nil)

	_, err := svc.RegisterParticipant("user1", "Zezima", nil)
	assert.ErrorIs(t, err, ErrRSNTaken)
}

func TestRegisterParticipantSemEventoAtivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	svc := NewService(events, mocks.NewMockDiscordUserRepository(ctrl))

	events.EXPECT().GetActiveEvent().Return(nil, nil)

	_, err := svc.RegisterParticipant("user1", "Zezima", nil)
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}

func TestRegisterParticipantRejeitaRSNVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	svc := NewService(events, mocks.NewMockDiscordUserRepository(ctrl))

	events.EXPECT().GetActiveEvent().Return(activeEvent(), nil)

	_, err := svc.RegisterParticipant("user1", " , , ", nil)
	assert.ErrorIs(t, err, ErrEmptyRSN)
}

func TestFindParticipantByRSNProcuraNaListaDeNomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	svc := NewService(events, mocks.NewMockDiscordUserRepository(ctrl))

	participants := []*domain.EventParticipant{
		{ID: 1, UserID: "user1", RSN: "zezima,alt zezima"},
		{ID: 2, UserID: "user2", RSN: "woox"},
	}

	events.EXPECT().ListParticipants("evt123").Return(participants, nil).Times(2)

	found, err := svc.FindParticipantByRSN("evt123", "Alt Zezima")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "user1", found.UserID)

	missing, err := svc.FindParticipantByRSN("evt123", "b0aty")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSyncMemberCarimbaLastSeen(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockDiscordUserRepository(ctrl)
	svc := NewService(mocks.NewMockEventRepository(ctrl), members)

	members.EXPECT().UpsertDiscordUser(gomock.Any()).DoAndReturn(
		func(member *domain.DiscordUser) error {
			assert.Equal(t, "123456789", member.ID)
			assert.Equal(t, "zezima", member.Username)
			assert.Equal(t, "[]", member.Roles)
			assert.False(t, member.LastSeen.IsZero())
			return nil
		})

	err := svc.SyncMember(&domain.DiscordUser{ID: "123456789", Username: "zezima"})
	require.NoError(t, err)
}

func TestSyncMemberRejeitaMembroIncompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(mocks.NewMockEventRepository(ctrl), mocks.NewMockDiscordUserRepository(ctrl))

	err := svc.SyncMember(&domain.DiscordUser{ID: "123456789"})
	assert.ErrorIs(t, err, ErrInvalidMember)
}

func TestActivateEventInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	svc := NewService(events, mocks.NewMockDiscordUserRepository(ctrl))

	events.EXPECT().ActivateEvent("nope").Return(nil, nil)

	_, err := svc.ActivateEvent("nope")
	assert.ErrorIs(t, err, ErrEventNotFound)
}
