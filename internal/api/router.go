package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/monstermint/backend/internal/api/handler"
	apimiddleware "github.com/monstermint/backend/internal/api/middleware"
	"github.com/monstermint/backend/internal/api/response"
	"github.com/monstermint/backend/internal/middleware"
	"github.com/monstermint/backend/internal/services/account"
	"github.com/monstermint/backend/internal/services/assets"
	"github.com/monstermint/backend/internal/services/gamestate"
	"github.com/monstermint/backend/internal/services/token"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AccountService   *account.Service
	TokenService     *token.Service
	AssetsService    *assets.Service
	GameStateService *gamestate.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AccountService, cfg.TokenService)
	assetsHandler := handler.NewAssetsHandler(cfg.AssetsService)
	gameStateHandler := handler.NewGameStateHandler(cfg.GameStateService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Account routes
	api.HandleFunc("/accounts", accountHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/accounts", accountHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{account_id}", accountHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{account_id}/authenticate", accountHandler.Authenticate).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{account_id}/session", accountHandler.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{account_id}/session/refresh", accountHandler.RefreshSession).Methods(http.MethodPost)

	// Asset routes
	api.HandleFunc("/accounts/{account_id}/assets", assetsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{account_id}/assets", assetsHandler.Award).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{account_id}/assets", assetsHandler.BurnAll).Methods(http.MethodDelete)

	// Game state routes
	api.HandleFunc("/accounts/{account_id}/winner", gameStateHandler.GetWinner).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{account_id}/winner", gameStateHandler.SetWinner).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{account_id}/last-award", gameStateHandler.GetLastAward).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{account_id}/last-award", gameStateHandler.SetLastAward).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
