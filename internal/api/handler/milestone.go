package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/internal/usecases/milestoning"
	"github.com/osrsclan/event-manager-api/pkg/apiErrors"
)

// GetMilestones retorna a série de buckets diários do evento ativo,
// com totais por time e o acumulado geral
func GetMilestones(service milestoning.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetMilestones()
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, milestoning.ErrNoActiveEvent) {
				apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular milestones", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetMilestoneChart renderiza o gráfico de progresso acumulado por time em PNG
func GetMilestoneChart(service milestoning.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		png, err := service.RenderChart()
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, milestoning.ErrNoActiveEvent) {
				apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if _, err := w.Write(png); err != nil {
			logrus.WithError(err).Warn("erro ao enviar gráfico de milestones")
		}
	}
}
