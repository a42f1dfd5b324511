// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/middleware"
	"github.com/renewalhq/renewal-gateway/internal/repository"
	"github.com/renewalhq/renewal-gateway/internal/scheduler"
	"github.com/renewalhq/renewal-gateway/internal/service"
)

const (
	errorCodeInvalidRequest          = "INVALID_REQUEST"
	errorCodeNotFound                = "NOT_FOUND"
	errorCodeVerifyFailed            = "WEBHOOK_VERIFY_FAILED"
	errorCodeAccountNotSendable      = "ACCOUNT_NOT_SENDABLE"
	errorCodeDailyLimitExceeded      = "DAILY_LIMIT_EXCEEDED"
	errorCodeMonthlyLimitExceeded    = "MONTHLY_LIMIT_EXCEEDED"
	errorCodeRateLimited             = "RATE_LIMIT_EXCEEDED"
	errorCodeSendFailed              = "PROVIDER_SEND_FAILED"
	errorCodeNoProviderAvailable     = "NO_PROVIDER_AVAILABLE"
	errorCodeInstallmentAlreadyPaid  = "INSTALLMENT_ALREADY_PAID"
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Routes builds the versioned API route table.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/whatsapp", func(r chi.Router) {
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.CreateAccount)
				r.Get("/", h.ListAccounts)
				r.Get("/{id}", h.GetAccount)
				r.Put("/{id}", h.UpdateAccount)
				r.Delete("/{id}", h.DeleteAccount)
				r.Post("/{id}/health-check", h.CheckAccountHealth)
			})
			r.Route("/templates", func(r chi.Router) {
				r.Post("/", h.CreateTemplate)
				r.Get("/", h.ListTemplates)
			})
			r.Post("/messages/send", h.SendMessage)
			r.Get("/messages", h.ListMessages)
			r.Get("/webhook", h.VerifyWebhook)
			r.Post("/webhook", h.ReceiveWebhook)
		})

		r.Route("/email", func(r chi.Router) {
			r.Route("/providers", func(r chi.Router) {
				r.Post("/", h.CreateProvider)
				r.Get("/", h.ListProviders)
				r.Get("/{id}", h.GetProvider)
				r.Put("/{id}", h.UpdateProvider)
				r.Delete("/{id}", h.DeleteProvider)
				r.Post("/{id}/health-check", h.CheckProviderHealth)
			})
			r.Post("/send", h.SendEmail)
		})

		r.Route("/cases/{caseID}/outstanding-amounts", func(r chi.Router) {
			r.Get("/summary", h.OutstandingSummary)
			r.Post("/pay", h.InitiatePayment)
			r.Post("/setup-payment-plan", h.SetupPaymentPlan)
		})

		r.Post("/scheduler/start", h.StartScheduler)
		r.Post("/scheduler/stop", h.StopScheduler)
		r.Get("/health", h.HealthCheck)
	})

	return r
}

func (h *Handler) sendData(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, map[string]interface{}{
		"success": false,
		"error":   errorCode,
		"message": message,
	})
}

// handleServiceError maps service and repository sentinels onto HTTP status
// codes; anything unmapped is logged and reported as a 500.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrTemplateNotApproved):
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrVerifyTokenMismatch):
		h.sendError(w, r, http.StatusForbidden, errorCodeVerifyFailed, err.Error())
	case errors.Is(err, service.ErrAccountNotSendable):
		h.sendError(w, r, http.StatusForbidden, errorCodeAccountNotSendable, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "resource not found")
	case errors.Is(err, repository.ErrInstallmentAlreadyPaid):
		h.sendError(w, r, http.StatusConflict, errorCodeInstallmentAlreadyPaid, err.Error())
	case errors.Is(err, service.ErrDailyLimitExceeded):
		h.sendError(w, r, http.StatusTooManyRequests, errorCodeDailyLimitExceeded, err.Error())
	case errors.Is(err, service.ErrMonthlyLimitExceeded):
		h.sendError(w, r, http.StatusTooManyRequests, errorCodeMonthlyLimitExceeded, err.Error())
	case errors.Is(err, service.ErrRateLimited):
		h.sendError(w, r, http.StatusTooManyRequests, errorCodeRateLimited, err.Error())
	case errors.Is(err, service.ErrSendFailed):
		h.sendError(w, r, http.StatusBadGateway, errorCodeSendFailed, err.Error())
	case errors.Is(err, service.ErrNoProviderAvailable):
		h.sendError(w, r, http.StatusBadGateway, errorCodeNoProviderAvailable, err.Error())
	case errors.Is(err, scheduler.ErrSchedulerAlreadyRunning):
		h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, err.Error())
	case errors.Is(err, scheduler.ErrSchedulerNotRunning):
		h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, err.Error())
	default:
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Unhandled service error",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
