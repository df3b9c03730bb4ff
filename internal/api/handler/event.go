package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/internal/domain"
	"github.com/osrsclan/event-manager-api/internal/usecases/eventing"
	"github.com/osrsclan/event-manager-api/pkg/apiErrors"
)

type RegisterParticipantRequest struct {
	UserID string  `json:"user_id"`
	RSN    string  `json:"rsn"`
	Note   *string `json:"note"`
}

// GetActiveEvent retorna o evento ativo, consumido pelo bot e pelo dashboard
func GetActiveEvent(service eventing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := service.GetActiveEvent()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar evento ativo", nil)
			return
		}

		if event == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(event)
	}
}

// CreateEvent cria um novo evento (inativo até ser ativado)
func CreateEvent(service eventing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEvent")

		var event *domain.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if event.Name == "" || event.StartDate.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e data de início são obrigatórios", nil)
			return
		}

		event, err := service.CreateEvent(event)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar evento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(event)
	}
}

// ActivateEvent ativa um evento, desativando qualquer outro que esteja ativo
func ActivateEvent(service eventing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ActivateEvent")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do evento não fornecido", nil)
			return
		}

		event, err := service.ActivateEvent(id)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, eventing.ErrEventNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrEventNotFound, "Evento não encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao ativar evento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(event)
	}
}

// ListParticipants lista os participantes do evento ativo
func ListParticipants(service eventing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := service.GetActiveEvent()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar evento ativo", nil)
			return
		}
		if event == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)
			return
		}

		participants, err := service.ListParticipants(event.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar participantes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(participants)
	}
}

// RegisterParticipant registra (ou atualiza) os RSNs de um usuário no evento ativo
func RegisterParticipant(service eventing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterParticipant")

		var req RegisterParticipantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.UserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		participant, err := service.RegisterParticipant(req.UserID, req.RSN, req.Note)
		if err != nil {
			handleRegistrationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(participant)
	}
}

// SyncMember recebe do gateway o estado atual de um membro do servidor
func SyncMember(service eventing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var member *domain.DiscordUser
		if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.SyncMember(member); err != nil {
			logrus.Error(err)
			if errors.Is(err, eventing.ErrInvalidMember) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID e username são obrigatórios", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao sincronizar membro", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListMembers lista os membros do servidor conhecidos, para o dashboard
func ListMembers(service eventing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.ListMembers()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar membros", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(members)
	}
}

func handleRegistrationError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, eventing.ErrNoActiveEvent):
		apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)

	case errors.Is(err, eventing.ErrEmptyRSN):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "RSN não fornecido", nil)

	case errors.Is(err, eventing.ErrRSNTaken):
		apiErrors.WriteError(w, apiErrors.ErrRSNTaken, "RSN já registrado por outro participante", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar participante", nil)
	}
}
