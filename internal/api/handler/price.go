package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/internal/usecases/pricing"
	"github.com/osrsclan/event-manager-api/pkg/apiErrors"
)

// GetPrices retorna os preços atuais dos itens acompanhados pelo evento
func GetPrices(service pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, err := service.GetTrackedPrices()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar preços", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(prices)
	}
}
