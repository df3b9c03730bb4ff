package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/osrsclan/event-manager-api/infrastructure/database/postgres"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

const (
	discordUsersTable = "discord_users"
)

type DiscordUserRepository interface {
	UpsertDiscordUser(user *domain.DiscordUser) error
	GetDiscordUserByID(id string) (*domain.DiscordUser, error)
	ListDiscordUsers() ([]*domain.DiscordUser, error)
}

type discordUserRepository struct {
	conn *postgres.Connection
}

func NewDiscordUserRepository(conn *postgres.Connection) DiscordUserRepository {
	return &discordUserRepository{
		conn: conn,
	}
}

// UpsertDiscordUser grava o estado mais recente recebido do gateway. A chave é
// o snowflake do Discord, então sincronizações repetidas só atualizam.
func (r *discordUserRepository) UpsertDiscordUser(user *domain.DiscordUser) error {
	queryBuilder := squirrel.
		Insert(discordUsersTable).
		Columns("id", "username", "discriminator", "avatar", "roles", "joined_at", "last_seen").
		Values(user.ID, user.Username, user.Discriminator, user.Avatar, user.Roles, user.JoinedAt, user.LastSeen).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			discriminator = EXCLUDED.discriminator,
			avatar = EXCLUDED.avatar,
			roles = EXCLUDED.roles,
			joined_at = EXCLUDED.joined_at,
			last_seen = EXCLUDED.last_seen`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao sincronizar usuário do Discord: %w", err)
	}

	return nil
}

func (r *discordUserRepository) GetDiscordUserByID(id string) (*domain.DiscordUser, error) {
	sqlQuery, args, err := r.selectDiscordUser().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.DiscordUser{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Discriminator,
		&user.Avatar,
		&user.Roles,
		&user.JoinedAt,
		&user.LastSeen,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário do Discord: %w", err)
	}
	return user, nil
}

func (r *discordUserRepository) ListDiscordUsers() ([]*domain.DiscordUser, error) {
	sqlQuery, args, err := r.selectDiscordUser().
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.DiscordUser, 0)
	for rows.Next() {
		user := &domain.DiscordUser{}
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Discriminator,
			&user.Avatar,
			&user.Roles,
			&user.JoinedAt,
			&user.LastSeen,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear usuário do Discord: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}

func (r *discordUserRepository) selectDiscordUser() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "username", "discriminator", "avatar", "roles", "joined_at", "last_seen").
		From(discordUsersTable).
		PlaceholderFormat(squirrel.Dollar)
}
