package milestoning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

var epoch = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func record(team, name, value string, offset time.Duration) domain.SubmissionRecord {
	return domain.SubmissionRecord{
		Value:     value,
		CreatedAt: epoch.Add(offset),
		TeamID:    team,
		TeamName:  name,
	}
}

func TestAggregateDayIndex(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "1000000", 2*time.Hour),
		record("team2", "Beta", "500000", 5*time.Hour),
		record("team1", "Alfa", "2000000", 26*time.Hour),
		record("team1", "Alfa", "500000", 30*time.Hour),
	}

	milestones := Aggregate(submissions, Options{Policy: BucketDayIndex, Epoch: epoch})
	require.Len(t, milestones, 2)

	day0 := milestones[0]
	assert.Equal(t, int64(0), day0.Day)
	assert.Equal(t, int64(1_500_000), day0.DayTotal)
	assert.Equal(t, int64(1_500_000), day0.CumulativeTotal)
	require.Len(t, day0.Teams, 2)
	assert.Equal(t, "team1", day0.Teams[0].TeamID)
	assert.Equal(t, int64(1_000_000), day0.Teams[0].DailyTotal)
	assert.Equal(t, int64(1_000_000), day0.Teams[0].CumulativeTotal)

	day1 := milestones[1]
	assert.Equal(t, int64(1), day1.Day)
	assert.Equal(t, int64(2_500_000), day1.DayTotal)
	assert.Equal(t, int64(4_000_000), day1.CumulativeTotal)

	// Beta não submeteu no dia 1: o time é omitido, não zerado
	require.Len(t, day1.Teams, 1)
	assert.Equal(t, "team1", day1.Teams[0].TeamID)
	assert.Equal(t, int64(3_500_000), day1.Teams[0].CumulativeTotal)
}

func TestAggregateAcumuladoMonotonico(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "100", 1*time.Hour),
		record("team1", "Alfa", "200", 25*time.Hour),
		record("team1", "Alfa", "300", 49*time.Hour),
		record("team2", "Beta", "50", 49*time.Hour),
	}

	milestones := Aggregate(submissions, Options{Policy: BucketDayIndex, Epoch: epoch})

	var prev int64
	var sum int64
	for _, m := range milestones {
		assert.GreaterOrEqual(t, m.CumulativeTotal, prev)
		prev = m.CumulativeTotal
		sum += m.DayTotal
	}
	// O acumulado geral do último bucket é a soma de todos os dias
	assert.Equal(t, sum, milestones[len(milestones)-1].CumulativeTotal)
	assert.Equal(t, int64(650), sum)
}

func TestAggregateEntradaVazia(t *testing.T) {
	milestones := Aggregate(nil, Options{Policy: BucketDayIndex, Epoch: epoch})
	assert.Empty(t, milestones)
}

func TestAggregateValorIlegivelContaZero(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "1000", 1*time.Hour),
		record("team1", "Alfa", "garbage", 2*time.Hour),
		record("team1", "Alfa", "", 3*time.Hour),
	}

	milestones := Aggregate(submissions, Options{Policy: BucketDayIndex, Epoch: epoch})
	require.Len(t, milestones, 1)
	assert.Equal(t, int64(1000), milestones[0].DayTotal)
}

func TestAggregateAntesDoEpochCaiEmIndiceNegativo(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "100", -2*time.Hour),
		record("team1", "Alfa", "200", 2*time.Hour),
	}

	milestones := Aggregate(submissions, Options{Policy: BucketDayIndex, Epoch: epoch})
	require.Len(t, milestones, 2)
	assert.Equal(t, int64(-1), milestones[0].Day)
	assert.Equal(t, int64(0), milestones[1].Day)
}

func TestAggregateCalendarDay(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "100", 2*time.Hour),
		record("team1", "Alfa", "200", 26*time.Hour),
	}

	milestones := Aggregate(submissions, Options{Policy: BucketCalendarDay, Epoch: epoch})
	require.Len(t, milestones, 2)
	assert.Equal(t, "2026-06-01", milestones[0].Day)
	assert.Equal(t, "2026-06-02", milestones[1].Day)
}

func TestAggregateCalendarDayOffset(t *testing.T) {
	// Com virada às 02:00, uma submissão à 01:30 do dia 2 conta para o dia 1
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "100", 23*time.Hour),              // 01/06 23:00
		record("team1", "Alfa", "200", 25*time.Hour+30*time.Minute), // 02/06 01:30
		record("team1", "Alfa", "300", 27*time.Hour),              // 02/06 03:00
	}

	milestones := Aggregate(submissions, Options{
		Policy:       BucketCalendarDayOffset,
		Epoch:        epoch,
		RolloverHour: 2,
	})

	require.Len(t, milestones, 2)
	assert.Equal(t, "2026-06-01", milestones[0].Day)
	assert.Equal(t, int64(300), milestones[0].DayTotal)
	assert.Equal(t, "2026-06-02", milestones[1].Day)
	assert.Equal(t, int64(300), milestones[1].DayTotal)
}

func TestAggregateDetalhamentoHorario(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "100", 1*time.Hour),
		record("team1", "Alfa", "200", 1*time.Hour+30*time.Minute),
		record("team1", "Alfa", "400", 23*time.Hour),
	}

	milestones := Aggregate(submissions, Options{
		Policy:        BucketDayIndex,
		Epoch:         epoch,
		IncludeHourly: true,
	})

	require.Len(t, milestones, 1)
	hourly := milestones[0].Teams[0].HourlyBreakdown
	require.Len(t, hourly, 24)
	assert.Equal(t, int64(300), hourly[1])
	assert.Equal(t, int64(400), hourly[23])
	assert.Equal(t, int64(0), hourly[0])
}

func TestAggregateDetalhamentoHorarioCalendarDay(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "100", 0),            // 01/06 00:00
		record("team1", "Alfa", "200", 13*time.Hour), // 01/06 13:00
	}

	milestones := Aggregate(submissions, Options{
		Policy:        BucketCalendarDay,
		Epoch:         epoch,
		IncludeHourly: true,
	})

	require.Len(t, milestones, 1)
	hourly := milestones[0].Teams[0].HourlyBreakdown
	require.Len(t, hourly, 24)
	assert.Equal(t, int64(100), hourly[0])
	assert.Equal(t, int64(200), hourly[13])
}

func TestAggregateDetalhamentoHorarioComViradaDeslocada(t *testing.T) {
	// Com virada às 02:00, o vetor horário começa na virada: 01:30 é a última
	// hora do dia anterior (slot 23) e 02:00 abre o dia seguinte (slot 0)
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "100", 25*time.Hour+30*time.Minute), // 02/06 01:30
		record("team1", "Alfa", "200", 26*time.Hour),                // 02/06 02:00
	}

	milestones := Aggregate(submissions, Options{
		Policy:        BucketCalendarDayOffset,
		Epoch:         epoch,
		RolloverHour:  2,
		IncludeHourly: true,
	})

	require.Len(t, milestones, 2)

	assert.Equal(t, "2026-06-01", milestones[0].Day)
	previousDay := milestones[0].Teams[0].HourlyBreakdown
	require.Len(t, previousDay, 24)
	assert.Equal(t, int64(100), previousDay[23])

	assert.Equal(t, "2026-06-02", milestones[1].Day)
	nextDay := milestones[1].Teams[0].HourlyBreakdown
	require.Len(t, nextDay, 24)
	assert.Equal(t, int64(200), nextDay[0])
}

func TestAggregateOrdemDeTimesPorPrimeiraAparicao(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team2", "Beta", "100", 1*time.Hour),
		record("team1", "Alfa", "200", 2*time.Hour),
		record("team2", "Beta", "300", 3*time.Hour),
	}

	milestones := Aggregate(submissions, Options{Policy: BucketDayIndex, Epoch: epoch})
	require.Len(t, milestones, 1)
	require.Len(t, milestones[0].Teams, 2)
	assert.Equal(t, "team2", milestones[0].Teams[0].TeamID)
	assert.Equal(t, "team1", milestones[0].Teams[1].TeamID)
}

func TestAggregateNaoMutaEntrada(t *testing.T) {
	submissions := []domain.SubmissionRecord{
		record("team1", "Alfa", "100", 1*time.Hour),
	}
	original := submissions[0]

	Aggregate(submissions, Options{Policy: BucketDayIndex, Epoch: epoch})
	assert.Equal(t, original, submissions[0])
}
