// Package eventing gerencia o ciclo de vida dos eventos do clã e o registro
// de participantes.
package eventing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/infrastructure/repository"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

var (
	// ErrEventNotFound indica id de evento inexistente.
	ErrEventNotFound = errors.New("evento não encontrado")
	// ErrNoActiveEvent indica que nenhum evento está ativo no momento.
	ErrNoActiveEvent = errors.New("nenhum evento ativo")
	// ErrRSNTaken indica que outro participante já registrou um dos RSNs.
	ErrRSNTaken = errors.New("RSN já registrado por outro participante")
	// ErrEmptyRSN indica registro sem nenhum RSN válido.
	ErrEmptyRSN = errors.New("nenhum RSN válido informado")
	// ErrInvalidMember indica sincronização de membro sem id ou username.
	ErrInvalidMember = errors.New("membro sem id ou username")
)

type Service interface {
	CreateEvent(event *domain.Event) (*domain.Event, error)
	ActivateEvent(id string) (*domain.Event, error)
	GetActiveEvent() (*domain.Event, error)
	GetEventByID(id string) (*domain.Event, error)
	ListParticipants(eventID string) ([]*domain.EventParticipant, error)
	RegisterParticipant(userID, rawRSN string, note *string) (*domain.EventParticipant, error)
	IsUserRegistered(eventID, userID string) (bool, error)
	FindParticipantByRSN(eventID, rsn string) (*domain.EventParticipant, error)
	SyncMember(member *domain.DiscordUser) error
	ListMembers() ([]*domain.DiscordUser, error)
}

type service struct {
	events  repository.EventRepository
	members repository.DiscordUserRepository
}

func NewService(events repository.EventRepository, members repository.DiscordUserRepository) Service {
	return &service{
		events:  events,
		members: members,
	}
}

func (s *service) CreateEvent(event *domain.Event) (*domain.Event, error) {
	created, err := s.events.CreateEvent(event)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar evento")
	}

	logrus.WithFields(logrus.Fields{
		"event_id": created.ID,
		"name":     created.Name,
	}).Info("eventing: evento criado")

	return created, nil
}

func (s *service) ActivateEvent(id string) (*domain.Event, error) {
	event, err := s.events.ActivateEvent(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ativar evento")
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	logrus.WithField("event_id", event.ID).Info("eventing: evento ativado")
	return event, nil
}

func (s *service) GetActiveEvent() (*domain.Event, error) {
	event, err := s.events.GetActiveEvent()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar evento ativo")
	}
	return event, nil
}

func (s *service) GetEventByID(id string) (*domain.Event, error) {
	event, err := s.events.GetEventByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar evento")
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *service) ListParticipants(eventID string) ([]*domain.EventParticipant, error) {
	participants, err := s.events.ListParticipants(eventID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar participantes")
	}
	return participants, nil
}

// RegisterParticipant registra o usuário no evento ativo com os RSNs
// informados (separados por vírgula). Um RSN já registrado por outro usuário
// é rejeitado; registrar de novo só atualiza os RSNs do próprio registro.
func (s *service) RegisterParticipant(userID, rawRSN string, note *string) (*domain.EventParticipant, error) {
	event, err := s.events.GetActiveEvent()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar evento ativo")
	}
	if event == nil {
		return nil, ErrNoActiveEvent
	}

	normalized := domain.JoinRSNs(rawRSN)
	if normalized == "" {
		return nil, ErrEmptyRSN
	}

	for _, rsn := range domain.SplitRSNs(normalized) {
		owner, err := s.FindParticipantByRSN(event.ID, rsn)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.UserID != userID {
			return nil, ErrRSNTaken
		}
	}

	existing, err := s.events.GetParticipantByUser(event.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar registro existente")
	}

	if existing != nil {
		if err := s.events.UpdateParticipantRSN(existing.ID, normalized); err != nil {
			return nil, errors.Wrap(err, "erro ao atualizar RSN")
		}
		existing.RSN = normalized

		logrus.WithFields(logrus.Fields{
			"event_id": event.ID,
			"user_id":  userID,
			"rsn":      normalized,
		}).Info("eventing: registro atualizado")

		return existing, nil
	}

	participant, err := s.events.CreateParticipant(&domain.EventParticipant{
		EventID: event.ID,
		UserID:  userID,
		RSN:     normalized,
		Note:    note,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao registrar participante")
	}

	logrus.WithFields(logrus.Fields{
		"event_id": event.ID,
		"user_id":  userID,
		"rsn":      normalized,
	}).Info("eventing: participante registrado")

	return participant, nil
}

// SyncMember grava o estado mais recente de um membro do servidor, recebido
// do gateway. O last_seen é carimbado aqui.
func (s *service) SyncMember(member *domain.DiscordUser) error {
	if member == nil || member.ID == "" || member.Username == "" {
		return ErrInvalidMember
	}

	member.LastSeen = time.Now().UTC()
	if member.Roles == "" {
		member.Roles = "[]"
	}

	if err := s.members.UpsertDiscordUser(member); err != nil {
		return errors.Wrap(err, "erro ao sincronizar membro")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  member.ID,
		"username": member.Username,
	}).Debug("eventing: membro sincronizado")

	return nil
}

func (s *service) ListMembers() ([]*domain.DiscordUser, error) {
	members, err := s.members.ListDiscordUsers()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar membros")
	}
	return members, nil
}

func (s *service) IsUserRegistered(eventID, userID string) (bool, error) {
	participant, err := s.events.GetParticipantByUser(eventID, userID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao verificar registro")
	}
	return participant != nil, nil
}

// FindParticipantByRSN procura o dono de um RSN dentro do evento. O campo é
// uma lista separada por vírgula, então a comparação percorre os nomes.
func (s *service) FindParticipantByRSN(eventID, rsn string) (*domain.EventParticipant, error) {
	participants, err := s.events.ListParticipants(eventID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar participantes")
	}

	target := domain.NormalizeRSN(rsn)
	for _, participant := range participants {
		for _, candidate := range participant.RSNList() {
			if candidate == target {
				return participant, nil
			}
		}
	}

	return nil, nil
}
