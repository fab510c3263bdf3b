package payment

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/cache"
	"gymdesk/internal/installment"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/metrics"
	"gymdesk/internal/stats"
)

// RecordResult is the outcome of recording a payment: the stored row plus,
// for installment members, what the settlement did to their schedule.
type RecordResult struct {
	Payment    Payment                  `json:"payment"`
	Settlement *installment.ApplyResult `json:"settlement,omitempty"`
}

type Service interface {
	List(ctx context.Context, gymID int, f Filter, now time.Time) ([]PaymentWithMember, int, error)
	ListByMember(ctx context.Context, gymID, memberID int) ([]Payment, error)
	Get(ctx context.Context, gymID, id int) (*PaymentWithMember, error)
	Record(ctx context.Context, gymID int, req CreatePaymentRequest) (*RecordResult, error)
	Update(ctx context.Context, gymID, id int, req UpdatePaymentRequest) (*Payment, error)
	Delete(ctx context.Context, gymID, id int) error
	MonthlySeries(ctx context.Context, gymID, months int, now time.Time) ([]stats.MonthBucket, error)
}

type service struct {
	repo       Repository
	memberRepo member.Repository
	cache      *cache.Cache
}

func NewService(repo Repository, memberRepo member.Repository, c *cache.Cache) Service {
	return &service{repo: repo, memberRepo: memberRepo, cache: c}
}

func (s *service) snapshot(ctx context.Context, gymID int) ([]PaymentWithMember, error) {
	var payments []PaymentWithMember
	if s.cache.Get(ctx, gymID, cache.EntityPayments, &payments) {
		return payments, nil
	}

	payments, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, gymID, cache.EntityPayments, payments)
	return payments, nil
}

func (s *service) List(ctx context.Context, gymID int, f Filter, now time.Time) ([]PaymentWithMember, int, error) {
	payments, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	return f.Apply(payments, now), len(payments), nil
}

func (s *service) ListByMember(ctx context.Context, gymID, memberID int) ([]Payment, error) {
	return s.repo.ListByMember(ctx, gymID, memberID)
}

func (s *service) Get(ctx context.Context, gymID, id int) (*PaymentWithMember, error) {
	return s.repo.GetByID(ctx, gymID, id)
}

// Record stores the payment and, when the member is on an installment
// schedule, settles the next due installment with it. The payment row is the
// source of truth; the schedule update is best-effort and logged on failure
// rather than rolling the payment back.
func (s *service) Record(ctx context.Context, gymID int, req CreatePaymentRequest) (*RecordResult, error) {
	m, err := s.memberRepo.GetByID(ctx, gymID, req.MemberID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, Payment{
		GymID:       gymID,
		MemberID:    req.MemberID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		PaymentMode: req.PaymentMode,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(req.PaymentMode)
	result := &RecordResult{Payment: *created}

	if m.InstallmentPlan.Enabled {
		result.Settlement = s.settleInstallment(ctx, gymID, m, *created)
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityPayments, cache.EntityMembers)
	return result, nil
}

func (s *service) settleInstallment(ctx context.Context, gymID int, m *member.MemberWithDetails, p Payment) *installment.ApplyResult {
	updated, res, err := installment.ApplyPayment(m.InstallmentPlan, p.Amount, p.PaymentDate, p.ID)
	if err != nil {
		if errors.Is(err, installment.ErrNoUnpaid) {
			logger.Info("payment recorded against settled schedule",
				"gym_id", gymID, "member_id", m.ID, "payment_id", p.ID)
			return nil
		}
		logger.Error("installment settlement failed",
			"gym_id", gymID, "member_id", m.ID, "payment_id", p.ID, "error", err)
		return nil
	}

	if err := s.memberRepo.UpdateInstallmentPlan(ctx, gymID, m.ID, updated); err != nil {
		logger.Error("persisting installment schedule failed",
			"gym_id", gymID, "member_id", m.ID, "payment_id", p.ID, "error", err)
		return nil
	}

	metrics.RecordInstallmentSettled()
	if res.Residual != 0 {
		logger.Warn("installment residual not redistributed",
			"gym_id", gymID, "member_id", m.ID, "payment_id", p.ID, "residual", res.Residual)
	}

	return &res
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdatePaymentRequest) (*Payment, error) {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	p := existing.Payment
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		p.PaymentDate = *req.PaymentDate
	}
	if req.PaymentMode != nil {
		p.PaymentMode = *req.PaymentMode
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	updated, err := s.repo.Update(ctx, gymID, id, p)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityPayments, cache.EntityMembers)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	if err := s.repo.Delete(ctx, gymID, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityPayments, cache.EntityMembers)
	return nil
}

// MonthlySeries buckets the tenant's payments into the trailing N calendar
// months for the revenue chart.
func (s *service) MonthlySeries(ctx context.Context, gymID, months int, now time.Time) ([]stats.MonthBucket, error) {
	payments, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, err
	}

	points := make([]stats.Point, len(payments))
	for i, p := range payments {
		points[i] = stats.Point{Date: p.PaymentDate, Amount: p.Amount}
	}

	return stats.MonthlySeries(points, months, now), nil
}
