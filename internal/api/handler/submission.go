package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/internal/domain"
	"github.com/osrsclan/event-manager-api/internal/usecases/submitting"
	"github.com/osrsclan/event-manager-api/pkg/apiErrors"
	"github.com/osrsclan/event-manager-api/pkg/middleware"
)

// AddSubmission recebe um drop do bot: nome do item, valor em formato livre
// ("2.5m", "750k", "12,5m") e a URL da prova
func AddSubmission(service submitting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddSubmission")

		var req submitting.AddSubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.UserID == "" || req.Name == "" || req.Value == "" || req.ProofURL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário, item, valor e prova são obrigatórios", nil)
			return
		}

		submission, err := service.AddSubmission(&req)
		if err != nil {
			handleSubmissionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(submission)
	}
}

// ListPendingSubmissions lista as submissões aguardando revisão no evento ativo
func ListPendingSubmissions(service submitting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := service.ListPendingSubmissions()
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, submitting.ErrNoActiveEvent) {
				apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar submissões pendentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(submissions)
	}
}

// ApproveSubmission aprova uma submissão pendente
func ApproveSubmission(service submitting.Service) http.HandlerFunc {
	return reviewSubmission(service.ApproveSubmission)
}

// RejectSubmission rejeita uma submissão pendente
func RejectSubmission(service submitting.Service) http.HandlerFunc {
	return reviewSubmission(service.RejectSubmission)
}

func reviewSubmission(review func(id int, approverID string) (*domain.Submission, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da submissão não fornecido", nil)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da submissão inválido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		submission, err := review(id, strconv.Itoa(userClaims.UserID))
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, submitting.ErrSubmissionNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrSubmissionNotFound, "Submissão não encontrada", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao revisar submissão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(submission)
	}
}

func handleSubmissionError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, submitting.ErrNoActiveEvent):
		apiErrors.WriteError(w, apiErrors.ErrNoActiveEvent, "Nenhum evento ativo", nil)

	case errors.Is(err, submitting.ErrEventClosed):
		apiErrors.WriteError(w, apiErrors.ErrEventClosed, "Evento fora da janela de submissão", nil)

	case errors.Is(err, submitting.ErrNotRegistered):
		apiErrors.WriteError(w, apiErrors.ErrNotRegistered, "Usuário não registrado no evento", nil)

	case errors.Is(err, submitting.ErrNotInTeam):
		apiErrors.WriteError(w, apiErrors.ErrNotInTeam, "Usuário não pertence a nenhum time", nil)

	case errors.Is(err, submitting.ErrInvalidValue):
		apiErrors.WriteError(w, apiErrors.ErrInvalidValue, "Valor fora do formato aceito (ex.: 500k, 2.5m, 1b)", nil)

	case errors.Is(err, submitting.ErrValueTooHigh):
		apiErrors.WriteError(w, apiErrors.ErrValueTooHigh, "Valor acima do limite permitido", nil)

	case errors.Is(err, submitting.ErrDuplicateProof):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateProof, "Prova já utilizada em outra submissão", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar submissão", nil)
	}
}
