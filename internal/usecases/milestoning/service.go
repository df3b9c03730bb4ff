package milestoning

import (
	"github.com/pkg/errors"
	"github.com/osrsclan/event-manager-api/infrastructure/repository"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

// ErrNoActiveEvent indica que não há evento para agregar.
var ErrNoActiveEvent = errors.New("nenhum evento ativo")

type Service interface {
	GetMilestones() (*domain.MilestoneResponse, error)
	RenderChart() ([]byte, error)
}

type service struct {
	cfg         *config.Config
	events      repository.EventRepository
	submissions repository.SubmissionRepository
}

func NewService(
	cfg *config.Config,
	events repository.EventRepository,
	submissions repository.SubmissionRepository,
) Service {
	return &service{
		cfg:         cfg,
		events:      events,
		submissions: submissions,
	}
}

// GetMilestones agrega as submissões aprovadas do evento ativo conforme a
// política de bucketing configurada. O epoch é o início do evento.
func (s *service) GetMilestones() (*domain.MilestoneResponse, error) {
	event, records, err := s.loadApproved()
	if err != nil {
		return nil, err
	}

	milestones := Aggregate(records, Options{
		Policy:        BucketingPolicy(s.cfg.Milestones.BucketingPolicy),
		Epoch:         event.StartDate,
		RolloverHour:  s.cfg.Milestones.RolloverHour,
		IncludeHourly: s.cfg.Milestones.IncludeHourly,
	})

	return &domain.MilestoneResponse{Milestones: milestones}, nil
}

// RenderChart devolve o gráfico de progresso acumulado por time em PNG.
func (s *service) RenderChart() ([]byte, error) {
	event, records, err := s.loadApproved()
	if err != nil {
		return nil, err
	}

	milestones := Aggregate(records, Options{
		Policy:       BucketingPolicy(s.cfg.Milestones.BucketingPolicy),
		Epoch:        event.StartDate,
		RolloverHour: s.cfg.Milestones.RolloverHour,
	})

	return renderCumulativeChart(event.Name, milestones)
}

func (s *service) loadApproved() (*domain.Event, []domain.SubmissionRecord, error) {
	event, err := s.events.GetActiveEvent()
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao buscar evento ativo")
	}
	if event == nil {
		return nil, nil, ErrNoActiveEvent
	}

	records, err := s.submissions.ListApprovedRecords(event.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao listar submissões aprovadas")
	}

	return event, records, nil
}
