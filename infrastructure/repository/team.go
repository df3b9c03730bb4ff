package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/osrsclan/event-manager-api/infrastructure/database/postgres"
	"github.com/osrsclan/event-manager-api/internal/domain"
	"github.com/osrsclan/event-manager-api/pkg/utils"
)

const (
	teamsTable       = "teams"
	teamMembersTable = "team_members"
)

type TeamRepository interface {
	CreateTeam(team *domain.Team) (*domain.Team, error)
	UpdateTeam(team *domain.Team) error
	DeleteTeam(id string) error
	ListTeams() ([]*domain.Team, error)
	GetTeamByID(id string) (*domain.TeamWithMembers, error)
	GetTeamByMember(userID string) (*domain.TeamWithMembers, error)
	AddMember(teamID, userID string) error
	RemoveMember(teamID, userID string) error
	RemoveMemberFromAllTeams(userID string) error
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) CreateTeam(team *domain.Team) (*domain.Team, error) {
	if team.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id do time: %w", err)
		}
		team.ID = id
	}

	queryBuilder := squirrel.
		Insert(teamsTable).
		Columns("id", "name", "description", "leader_id").
		Values(team.ID, team.Name, team.Description, team.LeaderID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir time: %w", err)
	}

	return team, nil
}

func (r *teamRepository) UpdateTeam(team *domain.Team) error {
	queryBuilder := squirrel.
		Update(teamsTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": team.ID})

	if team.Name != "" {
		queryBuilder = queryBuilder.Set("name", team.Name)
	}

	if team.Description != "" {
		queryBuilder = queryBuilder.Set("description", team.Description)
	}

	if team.LeaderID != "" {
		queryBuilder = queryBuilder.Set("leader_id", team.LeaderID)
	}

	sqlQuery, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar time: %w", err)
	}

	return nil
}

func (r *teamRepository) DeleteTeam(id string) error {
	sqlQuery, args, err := squirrel.
		Delete(teamsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover time: %w", err)
	}

	return nil
}

func (r *teamRepository) ListTeams() ([]*domain.Team, error) {
	sqlQuery, args, err := r.selectTeam().
		OrderBy("t.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{}
		err := rows.Scan(&team.ID, &team.Name, &team.Description, &team.LeaderID, &team.CreatedAt, &team.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear time: %w", err)
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return teams, nil
}

func (r *teamRepository) GetTeamByID(id string) (*domain.TeamWithMembers, error) {
	sqlQuery, args, err := r.selectTeam().
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	team := &domain.TeamWithMembers{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.LeaderID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear time: %w", err)
	}

	return r.fillTeamDetails(team)
}

func (r *teamRepository) GetTeamByMember(userID string) (*domain.TeamWithMembers, error) {
	queryBuilder := r.selectTeam().
		Join(teamMembersTable + " tm ON tm.team_id = t.id").
		Where(squirrel.Eq{"tm.user_id": userID}).
		Limit(1)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	team := &domain.TeamWithMembers{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.LeaderID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear time: %w", err)
	}

	return r.fillTeamDetails(team)
}

func (r *teamRepository) AddMember(teamID, userID string) error {
	sqlQuery, args, err := squirrel.
		Insert(teamMembersTable).
		Columns("team_id", "user_id").
		Values(teamID, userID).
		Suffix("ON CONFLICT (team_id, user_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao adicionar membro ao time: %w", err)
	}

	return nil
}

func (r *teamRepository) RemoveMember(teamID, userID string) error {
	sqlQuery, args, err := squirrel.
		Delete(teamMembersTable).
		Where(squirrel.Eq{"team_id": teamID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover membro do time: %w", err)
	}

	return nil
}

func (r *teamRepository) RemoveMemberFromAllTeams(userID string) error {
	sqlQuery, args, err := squirrel.
		Delete(teamMembersTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover membro de todos os times: %w", err)
	}

	return nil
}

// fillTeamDetails carrega líder e membros (com o usuário do Discord de cada um).
func (r *teamRepository) fillTeamDetails(team *domain.TeamWithMembers) (*domain.TeamWithMembers, error) {
	if team.LeaderID != "" {
		leader, err := r.getDiscordUser(team.LeaderID)
		if err != nil {
			return nil, err
		}
		team.Leader = leader
	}

	queryBuilder := squirrel.
		Select("tm.team_id", "tm.user_id", "du.id", "du.username", "du.discriminator", "du.avatar", "du.roles", "du.joined_at", "du.last_seen").
		From(teamMembersTable + " tm").
		Join(discordUsersTable + " du ON du.id = tm.user_id").
		Where(squirrel.Eq{"tm.team_id": team.ID}).
		OrderBy("du.username ASC").
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

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		member := domain.TeamMember{User: &domain.DiscordUser{}}
		err := rows.Scan(
			&member.TeamID,
			&member.UserID,
			&member.User.ID,
			&member.User.Username,
			&member.User.Discriminator,
			&member.User.Avatar,
			&member.User.Roles,
			&member.User.JoinedAt,
			&member.User.LastSeen,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear membro do time: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	team.Members = members
	return team, nil
}

func (r *teamRepository) getDiscordUser(id string) (*domain.DiscordUser, error) {
	sqlQuery, args, err := squirrel.
		Select("du.id", "du.username", "du.discriminator", "du.avatar", "du.roles", "du.joined_at", "du.last_seen").
		From(discordUsersTable + " du").
		Where(squirrel.Eq{"du.id": id}).
		PlaceholderFormat(squirrel.Dollar).
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

func (r *teamRepository) selectTeam() squirrel.SelectBuilder {
	return squirrel.
		Select("t.id", "t.name", "t.description", "t.leader_id", "t.created_at", "t.updated_at").
		From(teamsTable + " t").
		PlaceholderFormat(squirrel.Dollar)
}
