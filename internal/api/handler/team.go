package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/internal/domain"
	"github.com/osrsclan/event-manager-api/internal/usecases/teaming"
	"github.com/osrsclan/event-manager-api/pkg/apiErrors"
)

type TeamMemberRequest struct {
	UserID string `json:"user_id"`
}

// GetTeamOverviews retorna os times do evento ativo com os totais aprovados,
// ordenados do maior para o menor. É a rota do placar do dashboard.
func GetTeamOverviews(service teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overviews, err := service.GetTeamOverviews()
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, teaming.ErrNoActiveEvent) {
				apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar placar dos times", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overviews)
	}
}

// CreateTeam cria um novo time
func CreateTeam(service teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTeam")

		var team *domain.Team
		if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if team.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do time é obrigatório", nil)
			return
		}

		team, err := service.CreateTeam(team)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar time", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(team)
	}
}

// GetTeam retorna um time com líder e membros
func GetTeam(service teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do time não fornecido", nil)
			return
		}

		team, err := service.GetTeamByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar time", nil)
			return
		}
		if team == nil {
			apiErrors.WriteError(w, apiErrors.ErrTeamNotFound, "Time não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(team)
	}
}

// UpdateTeam atualiza nome, descrição ou líder de um time
func UpdateTeam(service teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateTeam")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do time não fornecido", nil)
			return
		}

		var req domain.UpdateTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = id

		if err := service.UpdateTeam(&req); err != nil {
			logrus.Error(err)
			if errors.Is(err, teaming.ErrTeamNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrTeamNotFound, "Time não encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar time", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// DeleteTeam remove um time e seus vínculos de membro
func DeleteTeam(service teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteTeam")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do time não fornecido", nil)
			return
		}

		if err := service.DeleteTeam(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover time", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AddTeamMember adiciona um usuário a um time, removendo-o de qualquer outro
func AddTeamMember(service teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddTeamMember")

		teamID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req TeamMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if teamID == "" || req.UserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do time e do usuário são obrigatórios", nil)
			return
		}

		if err := service.AddMember(teamID, req.UserID); err != nil {
			logrus.Error(err)
			if errors.Is(err, teaming.ErrTeamNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrTeamNotFound, "Time não encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao adicionar membro", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// RemoveTeamMember remove um usuário de um time
func RemoveTeamMember(service teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RemoveTeamMember")

		params := httprouter.ParamsFromContext(r.Context())
		teamID := params.ByName("id")
		userID := params.ByName("user_id")

		if teamID == "" || userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do time e do usuário são obrigatórios", nil)
			return
		}

		if err := service.RemoveMember(teamID, userID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover membro", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
