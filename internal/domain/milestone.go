package domain

// TeamMilestone é a fatia de um time dentro de um bucket de dia.
// HourlyBreakdown, quando presente, tem sempre 24 posições (hora dentro do bucket).
type TeamMilestone struct {
	TeamID          string  `json:"teamId"`
	TeamName        string  `json:"teamName"`
	DailyTotal      int64   `json:"dailyTotal"`
	CumulativeTotal int64   `json:"cumulativeTotal"`
	HourlyBreakdown []int64 `json:"hourlyBreakdown,omitempty"`
}

// Milestone é um bucket de agregação em ordem cronológica. Day é um índice
// inteiro (política day-index) ou uma data YYYY-MM-DD (políticas de calendário).
// Times sem atividade no bucket ficam ausentes da lista, e o renderizador trata
// ausência como "sem variação", nunca como zerar o acumulado.
type Milestone struct {
	Day             any             `json:"day"`
	Teams           []TeamMilestone `json:"teams"`
	DayTotal        int64           `json:"dayTotal"`
	CumulativeTotal int64           `json:"cumulativeTotal"`
}

type MilestoneResponse struct {
	Milestones []Milestone `json:"milestones"`
}
