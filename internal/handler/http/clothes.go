// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/press-pay/internal/service"
	"github.com/MKhiriev/press-pay/internal/utils"
	"github.com/MKhiriev/press-pay/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		respondError(w, r, ErrNoIdentity, "identity missing")
		return
	}

	var request models.CreateEntryRequest
	if err := decodeJSON(r, &request); err != nil {
		respondError(w, r, err, "invalid JSON was passed")
		return
	}

	entry, err := h.services.EntryService.CreateEntry(ctx, caller, request)
	if err != nil {
		respondError(w, r, err, "clothes entry creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.EntryResponse{OK: true, Entry: entry}, http.StatusOK)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		respondError(w, r, ErrNoIdentity, "identity missing")
		return
	}

	entries, err := h.services.EntryService.ListEntries(ctx, caller)
	if err != nil {
		respondError(w, r, err, "listing clothes entries failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.EntriesResponse{OK: true, Entries: entries}, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		respondError(w, r, ErrNoIdentity, "identity missing")
		return
	}

	id, err := entryID(r)
	if err != nil {
		respondError(w, r, err, "invalid entry id")
		return
	}

	var request models.UpdateEntryRequest
	if err = decodeJSON(r, &request); err != nil {
		respondError(w, r, err, "invalid JSON was passed")
		return
	}

	entry, err := h.services.EntryService.UpdateEntry(ctx, caller, id, request)
	if err != nil {
		respondError(w, r, err, "clothes entry update failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.EntryResponse{OK: true, Entry: entry}, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		respondError(w, r, ErrNoIdentity, "identity missing")
		return
	}

	id, err := entryID(r)
	if err != nil {
		respondError(w, r, err, "invalid entry id")
		return
	}

	if err = h.services.EntryService.DeleteEntry(ctx, caller, id); err != nil {
		respondError(w, r, err, "clothes entry deletion failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{OK: true}, http.StatusOK)
}

// entryID parses the {id} path parameter as a positive integer.
func entryID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidID
	}
	return id, nil
}
