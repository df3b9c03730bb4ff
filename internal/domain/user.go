package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um operador do dashboard (administração do evento), não um participante.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
	RoleID   *int    `json:"role_id"`
	Deleted  *bool   `json:"deleted"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}

// DiscordUser é um membro do servidor sincronizado por um colaborador externo
// (o gateway do Discord fica fora deste serviço; aqui apenas lemos e atualizamos).
type DiscordUser struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Discriminator string     `json:"discriminator"`
	Avatar        *string    `json:"avatar"`
	Roles         string     `json:"roles"` // JSON com os IDs de cargo, como recebido do gateway
	JoinedAt      *time.Time `json:"joined_at"`
	LastSeen      time.Time  `json:"last_seen"`
}
