// Package milestoning agrega submissões aprovadas em buckets de dia/hora para
// o gráfico de progresso dos times no dashboard.
package milestoning

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/osrsclan/event-manager-api/internal/domain"
)

// BucketingPolicy define como o instante de criação de uma submissão vira um
// bucket de dia. As três variantes históricas viraram uma única estratégia
// configurável.
type BucketingPolicy string

const (
	// BucketDayIndex: índice inteiro de dias desde o início do evento (padrão).
	BucketDayIndex BucketingPolicy = "day-index"
	// BucketCalendarDay: data de calendário UTC (YYYY-MM-DD).
	BucketCalendarDay BucketingPolicy = "calendar-day"
	// BucketCalendarDayOffset: data de calendário com virada de dia deslocada.
	// Horários antes de RolloverHour contam para a data anterior.
	BucketCalendarDayOffset BucketingPolicy = "calendar-day-offset"
)

// Options parametriza uma agregação. Epoch é o instante de início do evento,
// usado pelo day-index e pelo fatiamento horário; RolloverHour só se aplica a
// calendar-day-offset.
type Options struct {
	Policy        BucketingPolicy
	Epoch         time.Time
	RolloverHour  int
	IncludeHourly bool
}

type teamAccum struct {
	name   string
	daily  int64
	hourly [hoursPerDay]int64
}

type bucketAccum struct {
	key   string
	teams map[string]*teamAccum
	order []string // times na ordem de primeira aparição, para saída estável
}

const hoursPerDay = 24

// Aggregate agrupa as submissões em buckets cronológicos com totais diários e
// acumulados por time. Precondição: a lista já vem filtrada por status
// APPROVED; a função confia em quem chama e não refiltra. Valores não
// numéricos contribuem com 0 em vez de falhar a agregação inteira
// (disponibilidade do placar acima da correção de um registro ruim; a
// validação estrita acontece na entrada, via ParseValueInput). A função é
// pura: não muta a entrada e não tem efeitos colaterais.
func Aggregate(submissions []domain.SubmissionRecord, opts Options) []domain.Milestone {
	buckets := make(map[string]*bucketAccum)

	for _, sub := range submissions {
		key := bucketKey(sub.CreatedAt, opts)
		value := lenientValue(sub.Value)

		bucket, ok := buckets[key]
		if !ok {
			bucket = &bucketAccum{key: key, teams: make(map[string]*teamAccum)}
			buckets[key] = bucket
		}

		team, ok := bucket.teams[sub.TeamID]
		if !ok {
			team = &teamAccum{name: sub.TeamName}
			bucket.teams[sub.TeamID] = team
			bucket.order = append(bucket.order, sub.TeamID)
		}

		team.daily += value
		if opts.IncludeHourly {
			team.hourly[hourSlot(sub.CreatedAt, opts)] += value
		}
	}

	keys := sortedKeys(buckets, opts.Policy)

	milestones := make([]domain.Milestone, 0, len(keys))
	cumulativeByTeam := make(map[string]int64)
	var cumulativeOverall int64

	for _, key := range keys {
		bucket := buckets[key]

		var dayTotal int64
		teams := make([]domain.TeamMilestone, 0, len(bucket.order))
		for _, teamID := range bucket.order {
			accum := bucket.teams[teamID]
			cumulativeByTeam[teamID] += accum.daily
			dayTotal += accum.daily

			entry := domain.TeamMilestone{
				TeamID:          teamID,
				TeamName:        accum.name,
				DailyTotal:      accum.daily,
				CumulativeTotal: cumulativeByTeam[teamID],
			}
			if opts.IncludeHourly {
				entry.HourlyBreakdown = append([]int64(nil), accum.hourly[:]...)
			}
			teams = append(teams, entry)
		}

		cumulativeOverall += dayTotal

		milestones = append(milestones, domain.Milestone{
			Day:             displayDay(key, opts.Policy),
			Teams:           teams,
			DayTotal:        dayTotal,
			CumulativeTotal: cumulativeOverall,
		})
	}

	return milestones
}

func bucketKey(createdAt time.Time, opts Options) string {
	switch opts.Policy {
	case BucketCalendarDay:
		return createdAt.UTC().Format("2006-01-02")
	case BucketCalendarDayOffset:
		t := createdAt.UTC()
		if t.Hour() < opts.RolloverHour {
			t = t.AddDate(0, 0, -1)
		}
		return t.Format("2006-01-02")
	default:
		return strconv.FormatInt(dayIndex(createdAt, opts.Epoch), 10)
	}
}

// dayIndex usa divisão com piso (não truncamento) para que instantes antes do
// epoch caiam em índices negativos, e não no dia zero.
func dayIndex(createdAt, epoch time.Time) int64 {
	return floorDiv(createdAt.Sub(epoch).Nanoseconds(), int64(24*time.Hour))
}

func hourIndex(createdAt, epoch time.Time) int64 {
	return floorDiv(createdAt.Sub(epoch).Nanoseconds(), int64(time.Hour))
}

// hourSlot posiciona a submissão dentro do vetor de 24 horas do bucket. Para
// day-index o relógio é relativo ao epoch; para as políticas de calendário é
// a hora do dia (deslocada pela virada configurada).
func hourSlot(createdAt time.Time, opts Options) int {
	switch opts.Policy {
	case BucketCalendarDay:
		return createdAt.UTC().Hour()
	case BucketCalendarDayOffset:
		return ((createdAt.UTC().Hour()-opts.RolloverHour)%hoursPerDay + hoursPerDay) % hoursPerDay
	default:
		slot := hourIndex(createdAt, opts.Epoch) - dayIndex(createdAt, opts.Epoch)*hoursPerDay
		return int(slot)
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// sortedKeys ordena os buckets cronologicamente: numérico crescente para
// day-index, lexicográfico para datas YYYY-MM-DD (que já é cronológico).
func sortedKeys(buckets map[string]*bucketAccum, policy BucketingPolicy) []string {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}

	if policy == BucketCalendarDay || policy == BucketCalendarDayOffset {
		sort.Strings(keys)
		return keys
	}

	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.ParseInt(keys[i], 10, 64)
		b, _ := strconv.ParseInt(keys[j], 10, 64)
		return a < b
	})
	return keys
}

func displayDay(key string, policy BucketingPolicy) any {
	if policy == BucketCalendarDay || policy == BucketCalendarDayOffset {
		return key
	}
	idx, _ := strconv.ParseInt(key, 10, 64)
	return idx
}

// lenientValue parseia o valor armazenado sem nunca falhar: registros com
// valor ilegível contam como 0 (já foram validados na entrada; aqui o placar
// precisa continuar disponível).
func lenientValue(raw string) int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return int64(f)
	}
	return 0
}
