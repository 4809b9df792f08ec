package handler

import (
	"encoding/json"
	"net/http"

	"github.com/monstermint/backend/internal/api/request"
	"github.com/monstermint/backend/internal/api/response"
	"github.com/monstermint/backend/internal/services/gamestate"
)

// GameStateHandler handles winner and award-timer endpoints
type GameStateHandler struct {
	gameStateService *gamestate.Service
}

// NewGameStateHandler creates a new game state handler
func NewGameStateHandler(gameStateService *gamestate.Service) *GameStateHandler {
	return &GameStateHandler{
		gameStateService: gameStateService,
	}
}

// GetWinner handles GET /api/v1/accounts/{account_id}/winner
func (h *GameStateHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	king, err := h.gameStateService.KingAsset(r.Context(), accountID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	var resp response.WinnerResponse
	if king != nil {
		asset := response.AssetFromModel(king)
		resp.KingAsset = &asset
	}
	response.JSON(w, http.StatusOK, resp)
}

// SetWinner handles PUT /api/v1/accounts/{account_id}/winner
func (h *GameStateHandler) SetWinner(w http.ResponseWriter, r *http.Request) {
	if err := h.gameStateService.SetWinner(r.Context(), accountID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// GetLastAward handles GET /api/v1/accounts/{account_id}/last-award
func (h *GameStateHandler) GetLastAward(w http.ResponseWriter, r *http.Request) {
	t, err := h.gameStateService.LastAward(r.Context(), accountID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LastAwardResponse{LastAward: t})
}

// SetLastAward handles PUT /api/v1/accounts/{account_id}/last-award
func (h *GameStateHandler) SetLastAward(w http.ResponseWriter, r *http.Request) {
	var req request.SetLastAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.LastAward.IsZero() {
		WriteError(w, NewInvalidRequestError("last_award is required"))
		return
	}

	if err := h.gameStateService.SetLastAward(r.Context(), accountID(r), req.LastAward); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
