package handler

import (
	"encoding/json"
	"net/http"

	"github.com/monstermint/backend/internal/api/request"
	"github.com/monstermint/backend/internal/api/response"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/services/assets"
)

// AssetsHandler handles asset-related endpoints
type AssetsHandler struct {
	assetsService *assets.Service
}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler(assetsService *assets.Service) *AssetsHandler {
	return &AssetsHandler{
		assetsService: assetsService,
	}
}

// List handles GET /api/v1/accounts/{account_id}/assets
//
// By default the local model answers; ?source=ledger queries the
// ledger directly instead.
func (h *AssetsHandler) List(w http.ResponseWriter, r *http.Request) {
	id := accountID(r)

	var (
		owned []*model.Asset
		err   error
	)
	switch source := r.URL.Query().Get("source"); source {
	case "", "local":
		owned, err = h.assetsService.Owned(r.Context(), id)
	case "ledger":
		owned, err = h.assetsService.OwnedRemote(r.Context(), id)
	default:
		WriteError(w, NewInvalidRequestError("source must be 'local' or 'ledger'"))
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AssetsFromModels(owned))
}

// Award handles POST /api/v1/accounts/{account_id}/assets
func (h *AssetsHandler) Award(w http.ResponseWriter, r *http.Request) {
	var req request.AwardAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.AssetID == "" {
		WriteError(w, NewInvalidRequestError("asset_id is required"))
		return
	}

	asset := &model.Asset{ID: model.AssetID(req.AssetID), Name: req.Name}
	if err := h.assetsService.Award(r.Context(), accountID(r), asset); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AssetFromModel(asset))
}

// BurnAll handles DELETE /api/v1/accounts/{account_id}/assets
func (h *AssetsHandler) BurnAll(w http.ResponseWriter, r *http.Request) {
	if err := h.assetsService.BurnAll(r.Context(), accountID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
