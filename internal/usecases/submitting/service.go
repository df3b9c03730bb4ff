// Package submitting cuida da entrada de drops: validação do valor, das
// condições do participante e do fluxo de aprovação.
package submitting

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/infrastructure/repository"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/domain"
	"github.com/osrsclan/event-manager-api/pkg/utils"
)

var (
	// ErrNoActiveEvent indica que não há evento aceitando submissões.
	ErrNoActiveEvent = errors.New("nenhum evento ativo")
	// ErrEventClosed indica submissão fora da janela do evento.
	ErrEventClosed = errors.New("evento encerrado")
	// ErrNotRegistered indica usuário sem registro no evento.
	ErrNotRegistered = errors.New("usuário não registrado no evento")
	// ErrNotInTeam indica usuário registrado mas sem time.
	ErrNotInTeam = errors.New("usuário não está em nenhum time")
	// ErrDuplicateProof indica prova já usada em outra submissão.
	ErrDuplicateProof = errors.New("prova já submetida")
	// ErrInvalidValue indica valor que o parser não aceitou.
	ErrInvalidValue = errors.New("valor inválido")
	// ErrValueTooHigh indica valor acima do teto configurado.
	ErrValueTooHigh = errors.New("valor acima do limite permitido")
	// ErrSubmissionNotFound indica id de submissão inexistente.
	ErrSubmissionNotFound = errors.New("submissão não encontrada")
)

// AddSubmissionRequest é a entrada crua de um drop, como chega do bot.
type AddSubmissionRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	ProofURL string `json:"proof_url"`
	SelfDrop bool   `json:"self_drop"`
}

type Service interface {
	AddSubmission(req *AddSubmissionRequest) (*domain.Submission, error)
	ApproveSubmission(id int, approverID string) (*domain.Submission, error)
	RejectSubmission(id int, approverID string) (*domain.Submission, error)
	ListPendingSubmissions() ([]*domain.Submission, error)
}

type service struct {
	cfg         *config.Config
	submissions repository.SubmissionRepository
	events      repository.EventRepository
	teams       repository.TeamRepository
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	submissions repository.SubmissionRepository,
	events repository.EventRepository,
	teams repository.TeamRepository,
) Service {
	return &service{
		cfg:         cfg,
		submissions: submissions,
		events:      events,
		teams:       teams,
		now:         time.Now,
	}
}

// AddSubmission valida e registra um drop como PENDING. O valor entra no
// formato livre do jogo (2.5m, 10k, 1,234) e é armazenado já normalizado em
// GP; a prova é única por evento.
func (s *service) AddSubmission(req *AddSubmissionRequest) (*domain.Submission, error) {
	event, err := s.events.GetActiveEvent()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar evento ativo")
	}
	if event == nil {
		return nil, ErrNoActiveEvent
	}

	now := s.now()
	if now.Before(event.StartDate) || (event.EndDate != nil && now.After(*event.EndDate)) {
		return nil, ErrEventClosed
	}

	participant, err := s.events.GetParticipantByUser(event.ID, req.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao verificar registro")
	}
	if participant == nil {
		return nil, ErrNotRegistered
	}

	team, err := s.teams.GetTeamByMember(req.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar time do usuário")
	}
	if team == nil {
		return nil, ErrNotInTeam
	}

	value, ok := utils.ParseValueInput(req.Value)
	if !ok {
		return nil, ErrInvalidValue
	}
	if s.cfg.Submissions.MaxValue > 0 && value > s.cfg.Submissions.MaxValue {
		return nil, ErrValueTooHigh
	}

	duplicate, err := s.submissions.GetSubmissionByProof(event.ID, req.ProofURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao verificar prova duplicada")
	}
	if duplicate != nil {
		return nil, ErrDuplicateProof
	}

	submission, err := s.submissions.CreateSubmission(&domain.Submission{
		EventID:  event.ID,
		TeamID:   team.ID,
		UserID:   req.UserID,
		Name:     req.Name,
		Value:    strconv.FormatInt(value, 10),
		ProofURL: req.ProofURL,
		SelfDrop: req.SelfDrop,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao registrar submissão")
	}

	logrus.WithFields(logrus.Fields{
		"submission_id": submission.ID,
		"event_id":      event.ID,
		"user_id":       req.UserID,
		"value":         submission.Value,
	}).Info("submitting: drop registrado")

	return submission, nil
}

func (s *service) ApproveSubmission(id int, approverID string) (*domain.Submission, error) {
	return s.reviewSubmission(id, approverID, domain.SubmissionStatusApproved)
}

func (s *service) RejectSubmission(id int, approverID string) (*domain.Submission, error) {
	return s.reviewSubmission(id, approverID, domain.SubmissionStatusRejected)
}

func (s *service) reviewSubmission(id int, approverID string, status domain.SubmissionStatus) (*domain.Submission, error) {
	submission, err := s.submissions.UpdateSubmissionStatus(id, status, approverID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar submissão")
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}

	logrus.WithFields(logrus.Fields{
		"submission_id": id,
		"status":        status,
		"approver_id":   approverID,
	}).Info("submitting: submissão revisada")

	return submission, nil
}

func (s *service) ListPendingSubmissions() ([]*domain.Submission, error) {
	event, err := s.events.GetActiveEvent()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar evento ativo")
	}
	if event == nil {
		return nil, ErrNoActiveEvent
	}

	pending, err := s.submissions.ListPendingSubmissions(event.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar submissões pendentes")
	}
	return pending, nil
}
