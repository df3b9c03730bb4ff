// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/osrsclan/event-manager-api/infrastructure/database/postgres"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

const (
	submissionsTable = "submissions"
)

type SubmissionRepository interface {
	CreateSubmission(submission *domain.Submission) (*domain.Submission, error)
	GetSubmissionByID(id int) (*domain.Submission, error)
	GetSubmissionByProof(eventID, proofURL string) (*domain.Submission, error)
	UpdateSubmissionStatus(id int, status domain.SubmissionStatus, approverID string) (*domain.Submission, error)
	ListPendingSubmissions(eventID string) ([]*domain.Submission, error)
	ListApprovedRecords(eventID string) ([]domain.SubmissionRecord, error)
	ApprovedTotalsByUser(eventID string) (map[string]int64, error)
}

type submissionRepository struct {
	conn *postgres.Connection
}

func NewSubmissionRepository(conn *postgres.Connection) SubmissionRepository {
	return &submissionRepository{
		conn: conn,
	}
}

func (r *submissionRepository) CreateSubmission(submission *domain.Submission) (*domain.Submission, error) {
	queryBuilder := squirrel.
		Insert(submissionsTable).
		Columns("event_id", "team_id", "user_id", "name", "value", "proof_url", "status", "self_drop").
		Values(
			submission.EventID,
			submission.TeamID,
			submission.UserID,
			submission.Name,
			submission.Value,
			submission.ProofURL,
			domain.SubmissionStatusPending,
			submission.SelfDrop,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&submission.ID, &submission.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir submissão: %w", err)
	}

	submission.Status = domain.SubmissionStatusPending
	return submission, nil
}

func (r *submissionRepository) GetSubmissionByID(id int) (*domain.Submission, error) {
	sqlQuery, args, err := r.selectSubmission().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	submission, err := r.scanSubmissionRow(r.conn.QueryRow(sqlQuery, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear submissão: %w", err)
	}
	return submission, nil
}

func (r *submissionRepository) GetSubmissionByProof(eventID, proofURL string) (*domain.Submission, error) {
	sqlQuery, args, err := r.selectSubmission().
		Where(squirrel.Eq{"s.event_id": eventID, "s.proof_url": proofURL}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	submission, err := r.scanSubmissionRow(r.conn.QueryRow(sqlQuery, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear submissão: %w", err)
	}
	return submission, nil
}

func (r *submissionRepository) UpdateSubmissionStatus(id int, status domain.SubmissionStatus, approverID string) (*domain.Submission, error) {
	queryBuilder := squirrel.
		Update(submissionsTable).
		Set("status", status).
		Set("approver_id", approverID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, event_id, team_id, user_id, name, value, proof_url, status, approver_id, self_drop, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	submission, err := r.scanSubmissionRow(r.conn.QueryRow(sqlQuery, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar status da submissão: %w", err)
	}
	return submission, nil
}

func (r *submissionRepository) ListPendingSubmissions(eventID string) ([]*domain.Submission, error) {
	sqlQuery, args, err := r.selectSubmission().
		Where(squirrel.Eq{"s.event_id": eventID, "s.status": domain.SubmissionStatusPending}).
		OrderBy("s.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		submission, err := r.scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear submissão: %w", err)
		}
		submissions = append(submissions, submission)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return submissions, nil
}

// ListApprovedRecords retorna a projeção mínima consumida pelo agregador de
// milestones, já filtrada por status APPROVED (o agregador confia neste filtro).
func (r *submissionRepository) ListApprovedRecords(eventID string) ([]domain.SubmissionRecord, error) {
	queryBuilder := squirrel.
		Select("s.value", "s.created_at", "t.id", "t.name").
		From(submissionsTable + " s").
		Join(teamsTable + " t ON t.id = s.team_id").
		Where(squirrel.Eq{"s.event_id": eventID, "s.status": domain.SubmissionStatusApproved}).
		OrderBy("s.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SubmissionRecord, 0)
	for rows.Next() {
		var record domain.SubmissionRecord
		if err := rows.Scan(&record.Value, &record.CreatedAt, &record.TeamID, &record.TeamName); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro aprovado: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// ApprovedTotalsByUser soma os valores aprovados por usuário para a visão de
// times do dashboard. O valor é texto no banco; entradas não numéricas somam 0.
func (r *submissionRepository) ApprovedTotalsByUser(eventID string) (map[string]int64, error) {
	queryBuilder := squirrel.
		Select("s.user_id", "COALESCE(SUM(CASE WHEN s.value ~ '^[0-9]+$' THEN s.value::BIGINT ELSE 0 END), 0)").
		From(submissionsTable + " s").
		Where(squirrel.Eq{"s.event_id": eventID, "s.status": domain.SubmissionStatusApproved}).
		GroupBy("s.user_id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int64)
	for rows.Next() {
		var userID string
		var total int64
		if err := rows.Scan(&userID, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear total por usuário: %w", err)
		}
		totals[userID] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *submissionRepository) selectSubmission() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"s.id",
			"s.event_id",
			"s.team_id",
			"s.user_id",
			"s.name",
			"s.value",
			"s.proof_url",
			"s.status",
			"s.approver_id",
			"s.self_drop",
			"s.created_at",
			"s.updated_at",
		).
		From(submissionsTable + " s").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *submissionRepository) scanSubmission(rows *sql.Rows) (*domain.Submission, error) {
	submission := &domain.Submission{}
	err := rows.Scan(
		&submission.ID,
		&submission.EventID,
		&submission.TeamID,
		&submission.UserID,
		&submission.Name,
		&submission.Value,
		&submission.ProofURL,
		&submission.Status,
		&submission.ApproverID,
		&submission.SelfDrop,
		&submission.CreatedAt,
		&submission.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return submission, nil
}

func (r *submissionRepository) scanSubmissionRow(row *sql.Row) (*domain.Submission, error) {
	submission := &domain.Submission{}
	err := row.Scan(
		&submission.ID,
		&submission.EventID,
		&submission.TeamID,
		&submission.UserID,
		&submission.Name,
		&submission.Value,
		&submission.ProofURL,
		&submission.Status,
		&submission.ApproverID,
		&submission.SelfDrop,
		&submission.CreatedAt,
		&submission.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return submission, nil
}
