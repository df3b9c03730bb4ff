package domain

import "time"

// StatLine é uma linha de estatística do hiscore (ex.: {"rank": 1, "level": 99, "xp": 13034431}).
type StatLine map[string]int64

// PlayerStats é o retrato completo de um jogador no hiscore oficial,
// seccionado da mesma forma que os snapshots são armazenados.
type PlayerStats struct {
	Skills    map[string]StatLine `json:"skills"`
	Minigames map[string]StatLine `json:"minigames"`
	Bosses    map[string]StatLine `json:"bosses"`
}

// EmptyPlayerStats retorna um PlayerStats com as três seções inicializadas,
// usado como início implícito quando não há snapshot inicial para um RSN.
func EmptyPlayerStats() PlayerStats {
	return PlayerStats{
		Skills:    map[string]StatLine{},
		Minigames: map[string]StatLine{},
		Bosses:    map[string]StatLine{},
	}
}

// HiscoreSnapshot é um retrato pontual persistido pelo agendador de snapshots.
type HiscoreSnapshot struct {
	ID      int         `json:"id"`
	RSN     string      `json:"rsn"`
	TakenAt time.Time   `json:"taken_at"`
	Stats   PlayerStats `json:"stats"`
}

// EfficiencyResult agrega EHP ou EHB com o detalhamento por skill/boss.
type EfficiencyResult struct {
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// PlayerProgress é a saída do diff entre o snapshot mais antigo e o mais
// recente de um RSN dentro do evento, com as taxas de eficiência derivadas.
type PlayerProgress struct {
	RSN   string           `json:"rsn"`
	Start PlayerStats      `json:"start"`
	End   PlayerStats      `json:"end"`
	Diff  PlayerStats      `json:"diff"`
	EHB   EfficiencyResult `json:"ehb"`
	EHP   EfficiencyResult `json:"ehp"`
	Error string           `json:"error,omitempty"`
}
