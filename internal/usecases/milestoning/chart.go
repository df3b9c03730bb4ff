package milestoning

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/osrsclan/event-manager-api/internal/domain"
	"github.com/osrsclan/event-manager-api/pkg/utils"
)

// renderCumulativeChart desenha uma linha por time com o total acumulado ao
// longo dos buckets. Times sem submissão em um bucket carregam o acumulado
// anterior, para a linha não voltar a zero.
func renderCumulativeChart(title string, milestones []domain.Milestone) ([]byte, error) {
	type teamSeries struct {
		name   string
		values []float64
	}

	order := make([]string, 0)
	seriesByTeam := make(map[string]*teamSeries)

	for i, milestone := range milestones {
		for _, team := range milestone.Teams {
			if _, ok := seriesByTeam[team.TeamID]; !ok {
				seriesByTeam[team.TeamID] = &teamSeries{
					name:   team.TeamName,
					values: make([]float64, len(milestones)),
				}
				order = append(order, team.TeamID)
			}
			seriesByTeam[team.TeamID].values[i] = float64(team.CumulativeTotal)
		}
	}

	// Carry-forward dos buckets sem submissão do time
	for _, ts := range seriesByTeam {
		for i := 1; i < len(ts.values); i++ {
			if ts.values[i] == 0 && ts.values[i-1] > 0 {
				ts.values[i] = ts.values[i-1]
			}
		}
	}

	xValues := make([]float64, len(milestones))
	xTicks := make([]chart.Tick, len(milestones))
	for i, milestone := range milestones {
		xValues[i] = float64(i)
		xTicks[i] = chart.Tick{Value: float64(i), Label: fmt.Sprintf("%v", milestone.Day)}
	}

	chartSeries := make([]chart.Series, 0, len(order))
	for _, teamID := range order {
		ts := seriesByTeam[teamID]
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    ts.name,
			XValues: xValues,
			YValues: ts.values,
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			Name:  "Dia",
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name: "Total acumulado",
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					if formatted, ok := utils.FormatValueOutput(f); ok {
						return formatted
					}
				}
				return ""
			},
		},
		Series: chartSeries,
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("erro ao renderizar gráfico: %w", err)
	}

	return buf.Bytes(), nil
}
