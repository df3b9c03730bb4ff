// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EventParticipant vincula um usuário do Discord a um evento através do RSN.
// O campo RSN pode conter múltiplos nomes separados por vírgula (contas alternativas).
type EventParticipant struct {
	ID        int       `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	RSN       string    `json:"rsn"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// RSNList separa o campo RSN em nomes individuais normalizados.
func (p *EventParticipant) RSNList() []string {
	return SplitRSNs(p.RSN)
}
