package hiscoring

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

func writeRateFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRateSourceCarregaECacheia(t *testing.T) {
	dir := t.TempDir()
	writeRateFile(t, dir, "main_ehp.json", `[
		{"skill": "attack", "methods": [
			{"startExp": 0, "rate": 15000, "description": "low level"},
			{"startExp": 37224, "rate": 38000, "description": "chinning"}
		]}
	]`)
	writeRateFile(t, dir, "main_ehb.json", `[
		{"boss": "zulrah", "rate": 39}
	]`)

	rs := NewRateSource(dir, time.Hour)

	ehp, err := rs.EhpRates(AccountMain)
	require.NoError(t, err)
	require.Len(t, ehp, 1)
	assert.Equal(t, "attack", ehp[0].Skill)

	ehb, err := rs.EhbRates(AccountMain)
	require.NoError(t, err)
	require.Len(t, ehb, 1)

	// Remover o arquivo não invalida o cache dentro do TTL
	require.NoError(t, os.Remove(filepath.Join(dir, "main_ehp.json")))
	_, err = rs.EhpRates(AccountMain)
	assert.NoError(t, err)
}

func TestRateSourceRejeitaTipoDesconhecido(t *testing.T) {
	rs := NewRateSource(t.TempDir(), time.Hour)

	_, err := rs.EhpRates(AccountType("ultimate"))
	assert.Error(t, err)

	_, err = rs.EhbRates(AccountType(""))
	assert.Error(t, err)
}

func TestCalculateEhpUsaMetodoMaisRecente(t *testing.T) {
	rates := []EhpSkillRate{
		{
			Skill: "attack",
			Methods: []struct {
				StartExp    int64   `json:"startExp"`
				Rate        float64 `json:"rate"`
				Description string  `json:"description"`
			}{
				{StartExp: 0, Rate: 15000},
				{StartExp: 37224, Rate: 40000},
			},
		},
		{Skill: "sailing"}, // sem métodos, ignorada
	}

	skills := map[string]domain.StatLine{
		"attack": {"xp": 80000},
	}

	result := CalculateEhp(rates, skills)

	assert.Equal(t, 2.0, result.Breakdown["attack"])
	assert.Equal(t, 2.0, result.Total)
	assert.NotContains(t, result.Breakdown, "sailing")
}

func TestCalculateEhbCasaNomesEmSnakeCase(t *testing.T) {
	rates := []EhbBossRate{
		{Boss: "chambers_of_xeric", Rate: 3},
		{Boss: "zulrah", Rate: 39},
	}

	bosses := map[string]domain.StatLine{
		"Chambers of Xeric": {"kills": 6},
		"Zulrah":            {"kills": 78},
		"Kraken":            {"kills": 100}, // sem taxa, ignorado
	}

	result := CalculateEhb(rates, bosses)

	assert.Equal(t, 2.0, result.Breakdown["Chambers of Xeric"])
	assert.Equal(t, 2.0, result.Breakdown["Zulrah"])
	assert.Equal(t, 4.0, result.Total)
	assert.NotContains(t, result.Breakdown, "Kraken")
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "chambers_of_xeric", toSnakeCase("Chambers of Xeric"))
	assert.Equal(t, "tz_kal_zuk", toSnakeCase("TzKal-Zuk"))
	assert.Equal(t, "kree_arra", toSnakeCase("Kree'Arra"))
	assert.Equal(t, "zulrah", toSnakeCase("Zulrah"))
}
