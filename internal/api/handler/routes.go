package handler

import (
	"net/http"

	"github.com/osrsclan/event-manager-api/internal/api/handler/router"
	"github.com/osrsclan/event-manager-api/internal/usecases/authenticating"
	"github.com/osrsclan/event-manager-api/internal/usecases/eventing"
	"github.com/osrsclan/event-manager-api/internal/usecases/hiscoring"
	"github.com/osrsclan/event-manager-api/internal/usecases/milestoning"
	"github.com/osrsclan/event-manager-api/internal/usecases/pricing"
	"github.com/osrsclan/event-manager-api/internal/usecases/submitting"
	"github.com/osrsclan/event-manager-api/internal/usecases/teaming"
	"github.com/osrsclan/event-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Events retorna as rotas de evento. A consulta do evento ativo e o registro
// de participantes são públicos (consumidos pelo bot); a administração exige
// perfil de moderador ou superior.
func Events(service eventing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/event",
			Method:  http.MethodGet,
			Handler: GetActiveEvent(service),
		},
		{
			Path:    "/v1/event",
			Method:  http.MethodPost,
			Handler: RegisterParticipant(service),
		},
		{
			Path:        "/v1/events",
			Method:      http.MethodPost,
			Handler:     CreateEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/events/:id/activate",
			Method:      http.MethodPost,
			Handler:     ActivateEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/events/participants",
			Method:      http.MethodGet,
			Handler:     ListParticipants(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:    "/v1/members",
			Method:  http.MethodPost,
			Handler: SyncMember(service),
		},
		{
			Path:        "/v1/members",
			Method:      http.MethodGet,
			Handler:     ListMembers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
	}
}

func Teams(service teaming.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/teams",
			Method:  http.MethodGet,
			Handler: GetTeamOverviews(service),
		},
		{
			Path:        "/v1/teams",
			Method:      http.MethodPost,
			Handler:     CreateTeam(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/teams/:id",
			Method:      http.MethodGet,
			Handler:     GetTeam(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTeam(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/teams/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTeam(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/teams/:id/members",
			Method:      http.MethodPost,
			Handler:     AddTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/teams/:id/members/:user_id",
			Method:      http.MethodDelete,
			Handler:     RemoveTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
	}
}

// Submissions retorna as rotas de submissão de drops. A entrada é pública
// (o bot submete em nome do participante); a revisão exige moderador.
func Submissions(service submitting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/submit",
			Method:  http.MethodPost,
			Handler: AddSubmission(service),
		},
		{
			Path:        "/v1/submissions/pending",
			Method:      http.MethodGet,
			Handler:     ListPendingSubmissions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/submissions/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveSubmission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/submissions/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectSubmission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
	}
}

func Milestones(service milestoning.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/milestones",
			Method:  http.MethodGet,
			Handler: GetMilestones(service),
		},
		{
			Path:    "/v1/milestones/chart",
			Method:  http.MethodGet,
			Handler: GetMilestoneChart(service),
		},
	}
}

func Hiscore(service hiscoring.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/hiscore",
			Method:  http.MethodGet,
			Handler: GetHiscore(service),
		},
	}
}

func Prices(service pricing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/prices",
			Method:  http.MethodGet,
			Handler: GetPrices(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
