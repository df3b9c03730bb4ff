package domain

import "time"

type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LeaderID    string    `json:"leader_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamMember struct {
	TeamID string       `json:"team_id"`
	UserID string       `json:"user_id"`
	User   *DiscordUser `json:"user,omitempty"`
}

type TeamWithMembers struct {
	Team
	Leader  *DiscordUser `json:"leader,omitempty"`
	Members []TeamMember `json:"members"`
}

// TeamOverview é a visão do dashboard: totais aprovados por membro e por time.
type TeamOverview struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	TeamTotal int64                `json:"teamTotal"`
	Members   []TeamMemberOverview `json:"members"`
}

type TeamMemberOverview struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Discriminator   string  `json:"discriminator"`
	Avatar          *string `json:"avatar"`
	RSN             *string `json:"rsn"`
	Note            *string `json:"duo"`
	SubmissionTotal int64   `json:"submissionTotal"`
}

type UpdateTeamRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LeaderID    *string `json:"leader_id"`
}
