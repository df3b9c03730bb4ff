package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/osrsclan/event-manager-api/infrastructure/database/postgres"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

const (
	hiscoreSnapshotsTable = "hiscore_snapshots"
)

var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type SnapshotRepository interface {
	SaveSnapshot(snapshot *domain.HiscoreSnapshot) error
	GetEarliestSince(rsn string, since sql.NullTime) (*domain.HiscoreSnapshot, error)
	GetLatest(rsn string) (*domain.HiscoreSnapshot, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) SaveSnapshot(snapshot *domain.HiscoreSnapshot) error {
	stats, err := snapshotJSON.Marshal(snapshot.Stats)
	if err != nil {
		return fmt.Errorf("erro ao serializar stats do snapshot: %w", err)
	}

	queryBuilder := squirrel.
		Insert(hiscoreSnapshotsTable).
		Columns("rsn", "taken_at", "stats").
		Values(snapshot.RSN, snapshot.TakenAt, stats).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&snapshot.ID)
	if err != nil {
		return fmt.Errorf("erro ao inserir snapshot: %w", err)
	}

	return nil
}

// GetEarliestSince retorna o snapshot mais antigo de um RSN a partir de um
// instante (o início do evento). since inválido ignora o corte temporal.
func (r *snapshotRepository) GetEarliestSince(rsn string, since sql.NullTime) (*domain.HiscoreSnapshot, error) {
	queryBuilder := r.selectSnapshot().
		Where(squirrel.Eq{"rsn": rsn}).
		OrderBy("taken_at ASC").
		Limit(1)

	if since.Valid {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"taken_at": since.Time})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanSnapshotRow(r.conn.QueryRow(sqlQuery, args...))
}

func (r *snapshotRepository) GetLatest(rsn string) (*domain.HiscoreSnapshot, error) {
	sqlQuery, args, err := r.selectSnapshot().
		Where(squirrel.Eq{"rsn": rsn}).
		OrderBy("taken_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanSnapshotRow(r.conn.QueryRow(sqlQuery, args...))
}

func (r *snapshotRepository) selectSnapshot() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "rsn", "taken_at", "stats").
		From(hiscoreSnapshotsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *snapshotRepository) scanSnapshotRow(row *sql.Row) (*domain.HiscoreSnapshot, error) {
	snapshot := &domain.HiscoreSnapshot{}
	var rawStats []byte

	err := row.Scan(&snapshot.ID, &snapshot.RSN, &snapshot.TakenAt, &rawStats)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if err := snapshotJSON.Unmarshal(rawStats, &snapshot.Stats); err != nil {
		return nil, fmt.Errorf("erro ao desserializar stats do snapshot: %w", err)
	}

	return snapshot, nil
}
