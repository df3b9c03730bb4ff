package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/internal/usecases/hiscoring"
	"github.com/osrsclan/event-manager-api/pkg/apiErrors"
)

// GetHiscore retorna o progresso de todos os RSNs do evento ativo: diff entre
// o snapshot mais antigo e o mais recente, com EHP e EHB calculados
func GetHiscore(service hiscoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := service.LoadHiscore()
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, hiscoring.ErrNoActiveEvent) {
				apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar progresso do hiscore", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(progress)
	}
}
