package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/osrsclan/event-manager-api/infrastructure/database/postgres"
	"github.com/osrsclan/event-manager-api/internal/domain"
	"github.com/osrsclan/event-manager-api/pkg/utils"
)

const (
	eventsTable            = "events"
	eventParticipantsTable = "event_participants"
)

type EventRepository interface {
	CreateEvent(event *domain.Event) (*domain.Event, error)
	GetEventByID(id string) (*domain.Event, error)
	GetActiveEvent() (*domain.Event, error)
	ActivateEvent(id string) (*domain.Event, error)
	ListParticipants(eventID string) ([]*domain.EventParticipant, error)
	GetParticipantByUser(eventID, userID string) (*domain.EventParticipant, error)
	CreateParticipant(participant *domain.EventParticipant) (*domain.EventParticipant, error)
	UpdateParticipantRSN(id int, rsn string) error
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) CreateEvent(event *domain.Event) (*domain.Event, error) {
	if event.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id do evento: %w", err)
		}
		event.ID = id
	}

	queryBuilder := squirrel.
		Insert(eventsTable).
		Columns("id", "name", "description", "active", "start_date", "end_date").
		Values(event.ID, event.Name, event.Description, event.Active, event.StartDate, event.EndDate).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir evento: %w", err)
	}

	return event, nil
}

func (r *eventRepository) GetEventByID(id string) (*domain.Event, error) {
	sqlQuery, args, err := r.selectEvent().
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	event, err := r.scanEventRow(r.conn.QueryRow(sqlQuery, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear evento: %w", err)
	}
	return event, nil
}

func (r *eventRepository) GetActiveEvent() (*domain.Event, error) {
	sqlQuery, args, err := r.selectEvent().
		Where(squirrel.Eq{"e.active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	event, err := r.scanEventRow(r.conn.QueryRow(sqlQuery, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear evento ativo: %w", err)
	}
	return event, nil
}

// ActivateEvent desativa qualquer evento ativo e ativa o informado, na mesma
// transação: só existe um evento ativo por vez.
func (r *eventRepository) ActivateEvent(id string) (*domain.Event, error) {
	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		deactivate, deactivateArgs, err := squirrel.
			Update(eventsTable).
			Set("active", false).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{"active": true}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de desativação: %w", err)
		}

		if _, err := tx.Exec(deactivate, deactivateArgs...); err != nil {
			return fmt.Errorf("erro ao desativar eventos: %w", err)
		}

		activate, activateArgs, err := squirrel.
			Update(eventsTable).
			Set("active", true).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de ativação: %w", err)
		}

		result, err := tx.Exec(activate, activateArgs...)
		if err != nil {
			return fmt.Errorf("erro ao ativar evento: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}

		return nil
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return r.GetEventByID(id)
}

func (r *eventRepository) ListParticipants(eventID string) ([]*domain.EventParticipant, error) {
	sqlQuery, args, err := r.selectParticipant().
		Where(squirrel.Eq{"p.event_id": eventID}).
		OrderBy("p.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	participants := make([]*domain.EventParticipant, 0)
	for rows.Next() {
		participant := &domain.EventParticipant{}
		err := rows.Scan(
			&participant.ID,
			&participant.EventID,
			&participant.UserID,
			&participant.RSN,
			&participant.Note,
			&participant.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear participante: %w", err)
		}
		participants = append(participants, participant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return participants, nil
}

func (r *eventRepository) GetParticipantByUser(eventID, userID string) (*domain.EventParticipant, error) {
	sqlQuery, args, err := r.selectParticipant().
		Where(squirrel.Eq{"p.event_id": eventID, "p.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	participant := &domain.EventParticipant{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&participant.ID,
		&participant.EventID,
		&participant.UserID,
		&participant.RSN,
		&participant.Note,
		&participant.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear participante: %w", err)
	}
	return participant, nil
}

func (r *eventRepository) CreateParticipant(participant *domain.EventParticipant) (*domain.EventParticipant, error) {
	queryBuilder := squirrel.
		Insert(eventParticipantsTable).
		Columns("event_id", "user_id", "rsn", "note").
		Values(participant.EventID, participant.UserID, participant.RSN, participant.Note).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&participant.ID, &participant.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir participante: %w", err)
	}

	return participant, nil
}

func (r *eventRepository) UpdateParticipantRSN(id int, rsn string) error {
	sqlQuery, args, err := squirrel.
		Update(eventParticipantsTable).
		Set("rsn", rsn).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar RSN do participante: %w", err)
	}

	return nil
}

func (r *eventRepository) selectEvent() squirrel.SelectBuilder {
	return squirrel.
		Select("e.id", "e.name", "e.description", "e.active", "e.start_date", "e.end_date", "e.created_at", "e.updated_at").
		From(eventsTable + " e").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *eventRepository) selectParticipant() squirrel.SelectBuilder {
	return squirrel.
		Select("p.id", "p.event_id", "p.user_id", "p.rsn", "p.note", "p.created_at").
		From(eventParticipantsTable + " p").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *eventRepository) scanEventRow(row *sql.Row) (*domain.Event, error) {
	event := &domain.Event{}
	var endDate sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Active,
		&event.StartDate,
		&endDate,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		end := endDate.Time
		event.EndDate = &end
	}

	return event, nil
}
