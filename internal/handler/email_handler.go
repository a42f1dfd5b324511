package handler

import (
	"encoding/json"
	"net/http"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

func (h *Handler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	provider, err := h.service.Email.CreateProvider(&req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusCreated, provider)
}

func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.Email.ListProviders()
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, providers)
}

func (h *Handler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid provider id")
		return
	}

	provider, err := h.service.Email.GetProvider(id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, provider)
}

func (h *Handler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid provider id")
		return
	}

	var req models.UpdateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	provider, err := h.service.Email.UpdateProvider(id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, provider)
}

func (h *Handler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid provider id")
		return
	}

	if err := h.service.Email.DeleteProvider(id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, map[string]interface{}{"deleted": true})
}

func (h *Handler) CheckProviderHealth(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid provider id")
		return
	}

	log, err := h.service.Email.CheckProviderHealth(id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, log)
}

func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req models.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	resp, err := h.service.Email.Send(&req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, resp)
}
