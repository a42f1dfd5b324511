package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/models"
	"github.com/renewalhq/renewal-gateway/internal/repository"
)

const maxPlanInstallments = 60

type paymentService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewPaymentService(repo repository.Repository, logger *zap.Logger) PaymentService {
	return &paymentService{
		repo:   repo,
		logger: logger,
	}
}

// OutstandingSummary aggregates a case's unpaid installments. Days overdue
// are computed against today, regardless of the stored status.
func (s *paymentService) OutstandingSummary(caseID int64) (*models.OutstandingSummary, error) {
	installments, err := s.repo.Payment().UnpaidInstallments(caseID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &models.OutstandingSummary{
		CaseID:        caseID,
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
		Installments:  make([]models.OutstandingInstallment, 0, len(installments)),
	}

	for _, inst := range installments {
		summary.TotalAmount = summary.TotalAmount.Add(inst.Amount)
		summary.Installments = append(summary.Installments, models.OutstandingInstallment{
			ID:                inst.ID,
			InstallmentNumber: inst.InstallmentNumber,
			Amount:            inst.Amount,
			DueDate:           inst.DueDate,
			Status:            string(inst.Status),
			DaysOverdue:       inst.DaysOverdue(now),
		})
	}

	summary.Count = len(installments)
	if summary.Count > 0 {
		summary.AverageAmount = summary.TotalAmount.DivRound(decimal.NewFromInt(int64(summary.Count)), 2)
		// Rows arrive ordered by due date ascending.
		oldest := installments[0].DueDate
		newest := installments[len(installments)-1].DueDate
		summary.OldestDueDate = &oldest
		summary.NewestDueDate = &newest
	}

	return summary, nil
}

// InitiatePayment settles the listed installments under a single generated
// transaction. All listed installments must exist, belong to the case and
// still be unpaid.
func (s *paymentService) InitiatePayment(caseID int64, req *models.PaymentInitiationRequest) (*models.PaymentInitiationResponse, error) {
	if len(req.InstallmentIDs) == 0 {
		return nil, fmt.Errorf("%w: installment_ids must not be empty", ErrInvalidRequest)
	}

	installments, err := s.repo.Payment().InstallmentsByIDs(caseID, req.InstallmentIDs)
	if err != nil {
		return nil, err
	}
	if len(installments) != len(req.InstallmentIDs) {
		return nil, fmt.Errorf("%w: one or more installments not found for case %d", ErrInvalidRequest, caseID)
	}

	total := decimal.Zero
	for _, inst := range installments {
		if inst.Status == models.InstallmentStatusPaid {
			return nil, repository.ErrInstallmentAlreadyPaid
		}
		total = total.Add(inst.Amount)
	}

	method := req.PaymentMode
	if method == "" {
		method = "manual"
	}

	payment := &models.Payment{
		CaseID:        caseID,
		TransactionID: newTransactionID(),
		Amount:        total,
		Method:        method,
		Status:        models.PaymentStatusCompleted,
	}
	if req.PaymentNotes != "" {
		payment.Notes.String = req.PaymentNotes
		payment.Notes.Valid = true
	}

	if err := s.repo.Payment().CreatePaymentForInstallments(payment, req.InstallmentIDs); err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.Int64("caseID", caseID),
		zap.String("transactionID", payment.TransactionID),
		zap.Int("installments", len(req.InstallmentIDs)))

	return &models.PaymentInitiationResponse{
		TransactionID:  payment.TransactionID,
		Amount:         total,
		InstallmentIDs: req.InstallmentIDs,
	}, nil
}

// SetupPaymentPlan splits a total into equal installments. Rounding drift
// from the division lands on the last installment so the plan always sums
// to the requested total.
func (s *paymentService) SetupPaymentPlan(caseID int64, req *models.PaymentPlanRequest) (*models.PaymentPlanResponse, error) {
	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total_amount must be positive", ErrInvalidRequest)
	}
	if req.InstallmentCount < 1 || req.InstallmentCount > maxPlanInstallments {
		return nil, fmt.Errorf("%w: installment_count must be between 1 and %d", ErrInvalidRequest, maxPlanInstallments)
	}
	if req.FirstDueDate.IsZero() {
		return nil, fmt.Errorf("%w: first_due_date is required", ErrInvalidRequest)
	}

	frequency := models.ScheduleFrequency(req.Frequency)
	switch frequency {
	case models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyHalfYearly, models.FrequencyYearly:
	case "":
		frequency = models.FrequencyMonthly
	default:
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidRequest, req.Frequency)
	}

	method := req.PaymentMethod
	if method == "" {
		method = "manual"
	}

	count := int64(req.InstallmentCount)
	per := req.TotalAmount.DivRound(decimal.NewFromInt(count), 2)
	last := req.TotalAmount.Sub(per.Mul(decimal.NewFromInt(count - 1)))

	stepDays := frequency.Days()
	schedules := make([]*models.PaymentSchedule, 0, req.InstallmentCount)
	for i := 0; i < req.InstallmentCount; i++ {
		amount := per
		if i == req.InstallmentCount-1 {
			amount = last
		}
		schedules = append(schedules, &models.PaymentSchedule{
			CaseID:            caseID,
			InstallmentNumber: i + 1,
			TotalInstallments: req.InstallmentCount,
			AmountDue:         amount,
			DueDate:           req.FirstDueDate.AddDate(0, 0, i*stepDays),
			Frequency:         frequency,
			Method:            method,
			AutoDebit:         req.AutoDebit,
			Status:            models.ScheduleStatusScheduled,
		})
	}

	if err := s.repo.Payment().CreateSchedules(schedules); err != nil {
		return nil, err
	}

	s.logger.Info("Payment plan created",
		zap.Int64("caseID", caseID),
		zap.Int("installments", req.InstallmentCount),
		zap.String("frequency", string(frequency)))

	return &models.PaymentPlanResponse{
		TotalAmount:       req.TotalAmount,
		InstallmentAmount: per,
		Schedules:         schedules,
	}, nil
}

func (s *paymentService) SweepOverdue() (int64, error) {
	count, err := s.repo.Payment().MarkOverdue(time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info("Installments marked overdue", zap.Int64("count", count))
	}
	return count, nil
}

func newTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.New().String())
}
