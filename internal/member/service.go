package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymdesk/internal/cache"
	"gymdesk/internal/installment"
	"gymdesk/internal/plan"
	"gymdesk/internal/status"
)

var (
	ErrEndBeforeStart = errors.New("membership end date is before its start date")
	ErrNoEndDate      = errors.New("either an end date or a plan with a duration is required")
	ErrUnknownStatus  = errors.New("unknown member status")
)

type Service interface {
	List(ctx context.Context, gymID int, f Filter, now time.Time) ([]MemberView, int, error)
	Get(ctx context.Context, gymID, id int, now time.Time) (*MemberView, error)
	Enroll(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error)
	Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error)
	Renew(ctx context.Context, gymID, id int, req RenewRequest, now time.Time) error
	Quit(ctx context.Context, gymID, id int) error
	Expiring(ctx context.Context, gymID, withinDays int, now time.Time) ([]MemberView, error)
}

type service struct {
	repo     Repository
	planRepo plan.Repository
	cache    *cache.Cache
}

func NewService(repo Repository, planRepo plan.Repository, c *cache.Cache) Service {
	return &service{repo: repo, planRepo: planRepo, cache: c}
}

// snapshot returns the full tenant member list, from cache when warm.
func (s *service) snapshot(ctx context.Context, gymID int) ([]MemberWithDetails, error) {
	var members []MemberWithDetails
	if s.cache.Get(ctx, gymID, cache.EntityMembers, &members) {
		return members, nil
	}

	members, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, gymID, cache.EntityMembers, members)
	return members, nil
}

func (s *service) List(ctx context.Context, gymID int, f Filter, now time.Time) ([]MemberView, int, error) {
	members, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	filtered := f.Apply(members, now)
	views := make([]MemberView, len(filtered))
	for i, m := range filtered {
		views[i] = newView(m, now)
	}

	return views, len(members), nil
}

func (s *service) Get(ctx context.Context, gymID, id int, now time.Time) (*MemberView, error) {
	m, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	view := newView(*m, now)
	return &view, nil
}

func (s *service) Enroll(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	endDate, err := s.resolveEndDate(ctx, gymID, req)
	if err != nil {
		return nil, err
	}

	m := Member{
		GymID:     gymID,
		PlanID:    req.PlanID,
		StartDate: req.StartDate,
		EndDate:   endDate,
		Status:    StatusActive,
		Profile:   req.Profile,
	}

	if req.Installment != nil && req.Installment.Enabled {
		schedule, err := installment.NewSchedule(
			req.Installment.TotalAmount,
			req.Installment.DownPayment,
			req.Installment.NumInstallments,
			req.StartDate,
		)
		if err != nil {
			return nil, err
		}
		m.InstallmentPlan = schedule
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityMembers)
	return created, nil
}

// resolveEndDate prefers an explicit end date and falls back to start plus
// the plan duration. Lifetime plans get the far-future sentinel the source
// app used rather than a nullable column.
func (s *service) resolveEndDate(ctx context.Context, gymID int, req CreateMemberRequest) (time.Time, error) {
	if req.EndDate != nil {
		if req.EndDate.Before(req.StartDate) {
			return time.Time{}, ErrEndBeforeStart
		}
		return *req.EndDate, nil
	}

	if req.PlanID == nil {
		return time.Time{}, ErrNoEndDate
	}

	p, err := s.planRepo.GetByID(ctx, gymID, *req.PlanID)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolving plan duration: %w", err)
	}

	days := p.DurationDays()
	if days == 0 {
		return req.StartDate.AddDate(100, 0, 0), nil
	}
	return req.StartDate.AddDate(0, 0, days), nil
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error) {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	m := existing.Member
	if req.PlanID != nil {
		m.PlanID = req.PlanID
	}
	if req.StartDate != nil {
		m.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		m.EndDate = *req.EndDate
	}
	if req.Status != nil {
		if !isKnownStatus(*req.Status) {
			return nil, ErrUnknownStatus
		}
		m.Status = *req.Status
	}
	if req.Profile != nil {
		m.Profile = *req.Profile
	}

	if m.EndDate.Before(m.StartDate) {
		return nil, ErrEndBeforeStart
	}

	updated, err := s.repo.Update(ctx, gymID, id, m)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityMembers)
	return updated, nil
}

func (s *service) Renew(ctx context.Context, gymID, id int, req RenewRequest, now time.Time) error {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return err
	}

	endDate, err := s.resolveRenewalEnd(ctx, gymID, existing, req, now)
	if err != nil {
		return err
	}

	if err := s.repo.Renew(ctx, gymID, id, req.PlanID, endDate); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityMembers)
	return nil
}

// resolveRenewalEnd extends from the current end date when the membership is
// still running, from today when it already lapsed.
func (s *service) resolveRenewalEnd(ctx context.Context, gymID int, existing *MemberWithDetails, req RenewRequest, now time.Time) (time.Time, error) {
	if req.EndDate != nil {
		return *req.EndDate, nil
	}

	planID := existing.PlanID
	if req.PlanID != nil {
		planID = req.PlanID
	}
	if planID == nil {
		return time.Time{}, ErrNoEndDate
	}

	p, err := s.planRepo.GetByID(ctx, gymID, *planID)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolving plan duration: %w", err)
	}

	base := now
	if existing.EndDate.After(base) {
		base = existing.EndDate
	}

	days := p.DurationDays()
	if days == 0 {
		return base.AddDate(100, 0, 0), nil
	}
	return base.AddDate(0, 0, days), nil
}

// Quit is a soft transition. Member rows are never hard-deleted.
func (s *service) Quit(ctx context.Context, gymID, id int) error {
	if err := s.repo.UpdateStatus(ctx, gymID, id, StatusQuit); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityMembers)
	return nil
}

// Expiring returns members already expired or expiring within the window,
// quit members excluded.
func (s *service) Expiring(ctx context.Context, gymID, withinDays int, now time.Time) ([]MemberView, error) {
	members, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, err
	}

	var out []MemberView
	for _, m := range members {
		if m.Status == StatusQuit {
			continue
		}
		days := status.DaysLeft(m.EndDate, now)
		if days <= withinDays {
			out = append(out, newView(m, now))
		}
	}

	return out, nil
}

func newView(m MemberWithDetails, now time.Time) MemberView {
	return MemberView{
		MemberWithDetails: m,
		Expiry:            status.ClassifyExpiry(m.EndDate, now),
		FullyPaid:         m.IsFullyPaid(),
	}
}

func isKnownStatus(s string) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}
