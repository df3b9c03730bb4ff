package domain

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "PENDING"
	SubmissionStatusApproved SubmissionStatus = "APPROVED"
	SubmissionStatusRejected SubmissionStatus = "REJECTED"
)

// Submission é um item submetido por um participante com prova (URL de imagem).
// O valor é armazenado como texto, já normalizado pelo ValueParser na entrada;
// a agregação reparseia de forma tolerante (ver milestoning).
type Submission struct {
	ID         int              `json:"id"`
	EventID    string           `json:"event_id"`
	TeamID     string           `json:"team_id"`
	UserID     string           `json:"user_id"`
	Name       string           `json:"name"`
	Value      string           `json:"value"`
	ProofURL   string           `json:"proof_url"`
	Status     SubmissionStatus `json:"status"`
	ApproverID *string          `json:"approver_id"`
	SelfDrop   bool             `json:"self_drop"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// SubmissionRecord é a projeção mínima consumida pelo agregador de milestones.
// Quem fornece a lista garante o filtro por status APPROVED; o agregador não
// refiltra (precondição documentada).
type SubmissionRecord struct {
	Value     string
	CreatedAt time.Time
	TeamID    string
	TeamName  string
}
