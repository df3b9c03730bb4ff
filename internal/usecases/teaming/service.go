// Package teaming gerencia os times do evento e monta a visão de totais por
// time consumida pelo dashboard.
package teaming

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/infrastructure/repository"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

var (
	// ErrTeamNotFound indica id de time inexistente.
	ErrTeamNotFound = errors.New("time não encontrado")
	// ErrNoActiveEvent indica que não há evento ativo para montar a visão.
	ErrNoActiveEvent = errors.New("nenhum evento ativo")
)

type Service interface {
	CreateTeam(team *domain.Team) (*domain.Team, error)
	UpdateTeam(req *domain.UpdateTeamRequest) error
	DeleteTeam(id string) error
	ListTeams() ([]*domain.Team, error)
	GetTeamByID(id string) (*domain.TeamWithMembers, error)
	GetTeamByMember(userID string) (*domain.TeamWithMembers, error)
	AddMember(teamID, userID string) error
	RemoveMember(teamID, userID string) error
	GetTeamOverviews() ([]*domain.TeamOverview, error)
}

type service struct {
	teams       repository.TeamRepository
	events      repository.EventRepository
	submissions repository.SubmissionRepository
}

func NewService(
	teams repository.TeamRepository,
	events repository.EventRepository,
	submissions repository.SubmissionRepository,
) Service {
	return &service{
		teams:       teams,
		events:      events,
		submissions: submissions,
	}
}

func (s *service) CreateTeam(team *domain.Team) (*domain.Team, error) {
	created, err := s.teams.CreateTeam(team)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar time")
	}

	logrus.WithFields(logrus.Fields{
		"team_id": created.ID,
		"name":    created.Name,
	}).Info("teaming: time criado")

	return created, nil
}

func (s *service) UpdateTeam(req *domain.UpdateTeamRequest) error {
	existing, err := s.teams.GetTeamByID(req.ID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar time")
	}
	if existing == nil {
		return ErrTeamNotFound
	}

	team := &domain.Team{ID: req.ID}
	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.LeaderID != nil {
		team.LeaderID = *req.LeaderID
	}

	if err := s.teams.UpdateTeam(team); err != nil {
		return errors.Wrap(err, "erro ao atualizar time")
	}
	return nil
}

func (s *service) DeleteTeam(id string) error {
	if err := s.teams.DeleteTeam(id); err != nil {
		return errors.Wrap(err, "erro ao remover time")
	}
	logrus.WithField("team_id", id).Info("teaming: time removido")
	return nil
}

func (s *service) ListTeams() ([]*domain.Team, error) {
	teams, err := s.teams.ListTeams()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar times")
	}
	return teams, nil
}

func (s *service) GetTeamByID(id string) (*domain.TeamWithMembers, error) {
	team, err := s.teams.GetTeamByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar time")
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

func (s *service) GetTeamByMember(userID string) (*domain.TeamWithMembers, error) {
	team, err := s.teams.GetTeamByMember(userID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar time do membro")
	}
	return team, nil
}

// AddMember coloca o usuário no time, removendo-o antes de qualquer outro:
// um participante pertence a no máximo um time por vez.
func (s *service) AddMember(teamID, userID string) error {
	team, err := s.teams.GetTeamByID(teamID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar time")
	}
	if team == nil {
		return ErrTeamNotFound
	}

	if err := s.teams.RemoveMemberFromAllTeams(userID); err != nil {
		return errors.Wrap(err, "erro ao desvincular membro dos times anteriores")
	}

	if err := s.teams.AddMember(teamID, userID); err != nil {
		return errors.Wrap(err, "erro ao adicionar membro")
	}

	logrus.WithFields(logrus.Fields{
		"team_id": teamID,
		"user_id": userID,
	}).Info("teaming: membro adicionado")

	return nil
}

func (s *service) RemoveMember(teamID, userID string) error {
	if err := s.teams.RemoveMember(teamID, userID); err != nil {
		return errors.Wrap(err, "erro ao remover membro")
	}
	return nil
}

// GetTeamOverviews monta a visão de times do dashboard: cada membro com seu
// RSN registrado e o total aprovado, e o total do time, ordenados do maior
// para o menor.
func (s *service) GetTeamOverviews() ([]*domain.TeamOverview, error) {
	event, err := s.events.GetActiveEvent()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar evento ativo")
	}
	if event == nil {
		return nil, ErrNoActiveEvent
	}

	teams, err := s.teams.ListTeams()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar times")
	}

	totals, err := s.submissions.ApprovedTotalsByUser(event.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar submissões aprovadas")
	}

	participants, err := s.events.ListParticipants(event.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar participantes")
	}

	participantsByUser := make(map[string]*domain.EventParticipant, len(participants))
	for _, participant := range participants {
		participantsByUser[participant.UserID] = participant
	}

	overviews := make([]*domain.TeamOverview, 0, len(teams))
	for _, team := range teams {
		detail, err := s.teams.GetTeamByID(team.ID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar membros do time")
		}
		if detail == nil {
			continue
		}

		overview := &domain.TeamOverview{
			ID:      team.ID,
			Name:    team.Name,
			Members: make([]domain.TeamMemberOverview, 0, len(detail.Members)),
		}

		for _, member := range detail.Members {
			entry := domain.TeamMemberOverview{
				ID:              member.UserID,
				SubmissionTotal: totals[member.UserID],
			}
			if member.User != nil {
				entry.Username = member.User.Username
				entry.Discriminator = member.User.Discriminator
				entry.Avatar = member.User.Avatar
			}
			if participant, ok := participantsByUser[member.UserID]; ok {
				rsn := participant.RSN
				entry.RSN = &rsn
				entry.Note = participant.Note
			}

			overview.TeamTotal += entry.SubmissionTotal
			overview.Members = append(overview.Members, entry)
		}

		sort.SliceStable(overview.Members, func(i, j int) bool {
			return overview.Members[i].SubmissionTotal > overview.Members[j].SubmissionTotal
		})

		overviews = append(overviews, overview)
	}

	sort.SliceStable(overviews, func(i, j int) bool {
		return overviews[i].TeamTotal > overviews[j].TeamTotal
	})

	return overviews, nil
}
