package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/monstermint/backend/internal/api/request"
	"github.com/monstermint/backend/internal/api/response"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/services/account"
	"github.com/monstermint/backend/internal/services/token"
)

// AccountHandler handles account-related endpoints
type AccountHandler struct {
	accountService *account.Service
	tokenService   *token.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *account.Service, tokenService *token.Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		tokenService:   tokenService,
	}
}

// accountID extracts the account id path variable
func accountID(r *http.Request) model.AccountID {
	return model.AccountID(mux.Vars(r)["account_id"])
}

// List handles GET /api/v1/accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.accountService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	accounts := make([]string, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, string(id))
	}
	response.JSON(w, http.StatusOK, response.AccountListResponse{Accounts: accounts})
}

// Create handles POST /api/v1/accounts
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.AccountID == "" {
		WriteError(w, NewInvalidRequestError("account_id is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	created, err := h.accountService.Create(r.Context(), model.AccountID(req.AccountID), req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AccountFromModel(created))
}

// Get handles GET /api/v1/accounts/{account_id}
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	acc, err := h.accountService.Get(r.Context(), accountID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountFromModel(acc))
}

// Authenticate handles POST /api/v1/accounts/{account_id}/authenticate
func (h *AccountHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req request.AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	ok, err := h.accountService.VerifyCredentials(r.Context(), accountID(r), req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthenticateResponse{Authenticated: ok})
}

// GetSession handles GET /api/v1/accounts/{account_id}/session
func (h *AccountHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	tok, err := h.tokenService.SessionToken(r.Context(), accountID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionResponse{SessionToken: tok})
}

// RefreshSession handles POST /api/v1/accounts/{account_id}/session/refresh
func (h *AccountHandler) RefreshSession(w http.ResponseWriter, r *http.Request) {
	tok, err := h.tokenService.Refresh(r.Context(), accountID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionResponse{SessionToken: tok})
}
