package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdAccount, err := h.services.AccountService.CreateAccount(ctx, account)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error creating account")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Int64("id", createdAccount.ID).Msg("account created")

	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", createdAccount.ID))
	utils.WriteJSON(w, createdAccount, http.StatusCreated)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, err := accountIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAccount").Msg("invalid account id in url")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	foundAccount, err := h.services.AccountService.GetAccount(ctx, accountID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getAccount").Int64("id", accountID).Msg("error getting account")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, foundAccount, http.StatusOK)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := store.AccountFilter{Name: r.URL.Query().Get("name")}

	accounts, err := h.services.AccountService.ListAccounts(ctx, filter)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error listing accounts")
		http.Error(w, http.StatusText(status), status)
		return
	}

	// an empty result must serialize as [], not null
	if accounts == nil {
		accounts = []models.Account{}
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, err := accountIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("invalid account id in url")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// the URL, not the body, identifies the record
	account.ID = accountID

	updatedAccount, err := h.services.AccountService.UpdateAccount(ctx, account)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.updateAccount").Int64("id", accountID).Msg("error updating account")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, updatedAccount, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, err := accountIDFromURL(r)
	if err != nil {
		// deletion is idempotent: an id that cannot exist is already gone
		log.Debug().Str("func", "*Handler.deleteAccount").Str("id", chi.URLParam(r, "id")).Msg("invalid account id in url")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.services.AccountService.DeleteAccount(ctx, accountID); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.deleteAccount").Int64("id", accountID).Msg("error deleting account")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// accountIDFromURL extracts the {id} route parameter as a positive int64.
func accountIDFromURL(r *http.Request) (int64, error) {
	rawID := chi.URLParam(r, "id")

	accountID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing account id %q: %w", rawID, err)
	}
	if accountID <= 0 {
		return 0, errors.New("account id must be positive")
	}

	return accountID, nil
}
