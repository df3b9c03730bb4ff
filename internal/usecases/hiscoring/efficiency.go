package hiscoring

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/osrsclan/event-manager-api/internal/domain"
	"github.com/osrsclan/event-manager-api/pkg/utils"
)

var ratesJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// AccountType distingue as tabelas de taxa: contas iron têm rates próprios.
type AccountType string

const (
	AccountMain AccountType = "main"
	AccountIron AccountType = "iron"
)

// EhpSkillRate é a entrada de uma skill na tabela EHP do Wise Old Man: a
// lista de métodos é histórica por faixa de XP, e a taxa vigente é a última.
type EhpSkillRate struct {
	Skill   string `json:"skill"`
	Methods []struct {
		StartExp    int64   `json:"startExp"`
		Rate        float64 `json:"rate"`
		Description string  `json:"description"`
	} `json:"methods"`
}

// EhbBossRate é a entrada de um boss na tabela EHB: kills por hora.
type EhbBossRate struct {
	Boss string  `json:"boss"`
	Rate float64 `json:"rate"`
}

// RateSource carrega e cacheia as tabelas de taxa do diretório configurado.
// Os arquivos seguem o padrão <tipo>_ehp.json / <tipo>_ehb.json.
type RateSource struct {
	dir string
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	ehpCache map[AccountType]cachedEhp
	ehbCache map[AccountType]cachedEhb
}

type cachedEhp struct {
	rates    []EhpSkillRate
	loadedAt time.Time
}

type cachedEhb struct {
	rates    []EhbBossRate
	loadedAt time.Time
}

func NewRateSource(dir string, ttl time.Duration) *RateSource {
	return &RateSource{
		dir:      dir,
		ttl:      ttl,
		now:      time.Now,
		ehpCache: make(map[AccountType]cachedEhp),
		ehbCache: make(map[AccountType]cachedEhb),
	}
}

func (rs *RateSource) EhpRates(accountType AccountType) ([]EhpSkillRate, error) {
	if err := validateAccountType(accountType); err != nil {
		return nil, err
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if cached, ok := rs.ehpCache[accountType]; ok && rs.now().Sub(cached.loadedAt) < rs.ttl {
		return cached.rates, nil
	}

	path := filepath.Join(rs.dir, fmt.Sprintf("%s_ehp.json", accountType))
	var rates []EhpSkillRate
	if err := rs.readRates(path, &rates); err != nil {
		return nil, err
	}

	rs.ehpCache[accountType] = cachedEhp{rates: rates, loadedAt: rs.now()}
	return rates, nil
}

func (rs *RateSource) EhbRates(accountType AccountType) ([]EhbBossRate, error) {
	if err := validateAccountType(accountType); err != nil {
		return nil, err
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if cached, ok := rs.ehbCache[accountType]; ok && rs.now().Sub(cached.loadedAt) < rs.ttl {
		return cached.rates, nil
	}

	path := filepath.Join(rs.dir, fmt.Sprintf("%s_ehb.json", accountType))
	var rates []EhbBossRate
	if err := rs.readRates(path, &rates); err != nil {
		return nil, err
	}

	rs.ehbCache[accountType] = cachedEhb{rates: rates, loadedAt: rs.now()}
	return rates, nil
}

func (rs *RateSource) readRates(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler tabela de taxas %s: %w", path, err)
	}
	if err := ratesJSON.Unmarshal(data, out); err != nil {
		return fmt.Errorf("erro ao desserializar tabela de taxas %s: %w", path, err)
	}
	return nil
}

func validateAccountType(accountType AccountType) error {
	switch accountType {
	case AccountMain, AccountIron:
		return nil
	default:
		return fmt.Errorf("tipo de conta inválido: %s", accountType)
	}
}

// CalculateEhp converte o ganho de XP por skill em horas eficientes usando a
// taxa do método mais recente de cada skill. Skills sem taxa positiva ficam
// fora do detalhamento.
func CalculateEhp(rates []EhpSkillRate, skills map[string]domain.StatLine) domain.EfficiencyResult {
	breakdown := make(map[string]float64)
	var total float64

	for _, entry := range rates {
		if len(entry.Methods) == 0 {
			continue
		}
		rate := entry.Methods[len(entry.Methods)-1].Rate
		if rate <= 0 {
			continue
		}

		xp := skills[entry.Skill]["xp"]
		ehp := float64(xp) / rate

		breakdown[entry.Skill] = utils.RoundWithTwoDecimalPlace(ehp)
		total += ehp
	}

	return domain.EfficiencyResult{
		Total:     utils.RoundWithTwoDecimalPlace(total),
		Breakdown: breakdown,
	}
}

// CalculateEhb converte kills por boss em horas eficientes. Os nomes vindos
// do hiscore são comparados em snake_case com os da tabela.
func CalculateEhb(rates []EhbBossRate, bosses map[string]domain.StatLine) domain.EfficiencyResult {
	breakdown := make(map[string]float64)
	var total float64

	for _, entry := range rates {
		for name, line := range bosses {
			if toSnakeCase(name) != entry.Boss {
				continue
			}
			kills := line["kills"]
			ehb := float64(kills) / entry.Rate

			breakdown[name] = utils.RoundWithTwoDecimalPlace(ehb)
			total += ehb
		}
	}

	return domain.EfficiencyResult{
		Total:     utils.RoundWithTwoDecimalPlace(total),
		Breakdown: breakdown,
	}
}

var (
	camelBoundary  = regexp.MustCompile(`([a-z])([A-Z])`)
	pascalBoundary = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	nonAlnum       = regexp.MustCompile(`[^a-z0-9]+`)
)

func toSnakeCase(s string) string {
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	s = pascalBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
