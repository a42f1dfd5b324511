package handler

import (
	"encoding/json"
	"net/http"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

func (h *Handler) OutstandingSummary(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid case id")
		return
	}

	summary, err := h.service.Payment.OutstandingSummary(caseID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusOK, summary)
}

func (h *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid case id")
		return
	}

	var req models.PaymentInitiationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	resp, err := h.service.Payment.InitiatePayment(caseID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusCreated, resp)
}

func (h *Handler) SetupPaymentPlan(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid case id")
		return
	}

	var req models.PaymentPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "invalid JSON body")
		return
	}

	resp, err := h.service.Payment.SetupPaymentPlan(caseID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendData(w, r, http.StatusCreated, resp)
}
