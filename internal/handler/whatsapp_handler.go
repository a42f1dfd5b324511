package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	account, err := h.service.WhatsApp.CreateAccount(&req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusCreated, account)
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.WhatsApp.ListAccounts()
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, accounts)
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid account id")
		return
	}

	account, err := h.service.WhatsApp.GetAccount(id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, account)
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid account id")
		return
	}

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	account, err := h.service.WhatsApp.UpdateAccount(id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, account)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid account id")
		return
	}

	if err := h.service.WhatsApp.DeleteAccount(id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, map[string]interface{}{"deleted": true})
}

func (h *Handler) CheckAccountHealth(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid account id")
		return
	}

	log, err := h.service.WhatsApp.CheckAccountHealth(id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, log)
}

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	template, err := h.service.WhatsApp.CreateTemplate(&req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusCreated, template)
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(r.URL.Query().Get("account_id"), 10, 64)
	if err != nil || accountID <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "account_id query parameter is required")
		return
	}

	templates, err := h.service.WhatsApp.ListTemplates(accountID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, templates)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	resp, err := h.service.WhatsApp.SendMessage(&req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, resp)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(r.URL.Query().Get("account_id"), 10, 64)
	if err != nil || accountID <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "account_id query parameter is required")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.service.WhatsApp.ListMessages(accountID, page, limit)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, result)
}

// VerifyWebhook answers the Graph API subscription handshake. On success the
// challenge is echoed back as plain text, not wrapped in the JSON envelope.
func (h *Handler) VerifyWebhook(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	challenge, err := h.service.WhatsApp.VerifyWebhook(
		query.Get("hub.mode"),
		query.Get("hub.verify_token"),
		query.Get("hub.challenge"),
	)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(challenge))
}

func (h *Handler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "empty request body")
		return
	}

	event, err := h.service.WhatsApp.ProcessWebhook(body)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, map[string]interface{}{
		"event_id":   event.ID,
		"event_type": event.EventType,
	})
}
