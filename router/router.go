package router

import (
	"faction-api/common"
	"faction-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "faction-api/docs"
)

// NewRouter builds the full route table. Auth endpoints and health are
// public; every faction route sits behind the bearer-token middleware.
func NewRouter(userHandler *handler.UserHandler, factionHandler *handler.FactionHandler, authMiddleware func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Public auth surface.
	mux.Handle("POST /api/login", handler.ErrorHandlingMiddleware(userHandler.Login))
	mux.Handle("POST /api/refresh", handler.ErrorHandlingMiddleware(userHandler.Refresh))
	mux.Handle("POST /api/users", handler.ErrorHandlingMiddleware(userHandler.Register))

	protected := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return authMiddleware(handler.ErrorHandlingMiddleware(h))
	}

	mux.Handle("GET /api/users", protected(userHandler.ListUsers))
	mux.Handle("GET /api/users/{username}", protected(userHandler.GetUser))

	mux.Handle("GET /api/membrifactiune", protected(factionHandler.ListMembers))
	mux.Handle("POST /api/membrifactiune/{id}/rank", protected(factionHandler.UpdateMemberRank))
	mux.Handle("GET /api/jucatoriacc", protected(factionHandler.ListPlayerAccounts))

	mux.Handle("POST /api/invoire", protected(factionHandler.CreateLeaveRequest))
	mux.Handle("GET /api/invoire/{discordId}", protected(factionHandler.GetLeaveRequest))

	mux.Handle("POST /api/codes", protected(factionHandler.AddCode))
	mux.Handle("GET /api/codes/{code}", protected(factionHandler.CheckCode))
	mux.Handle("DELETE /api/codes/{code}", protected(factionHandler.DeleteCode))

	mux.Handle("GET /api/statistici", protected(factionHandler.GetStatistics))
	mux.Handle("GET /api/stuff/version", protected(factionHandler.GetVersion))

	return mux
}
