package expense

import (
	"context"
	"time"

	"gymdesk/internal/cache"
	"gymdesk/internal/stats"
)

type Service interface {
	List(ctx context.Context, gymID int, f Filter, now time.Time) ([]Expense, int, error)
	Get(ctx context.Context, gymID, id int) (*Expense, error)
	Create(ctx context.Context, gymID int, req CreateExpenseRequest) (*Expense, error)
	Update(ctx context.Context, gymID, id int, req UpdateExpenseRequest) (*Expense, error)
	Delete(ctx context.Context, gymID, id int) error
	MonthlySeries(ctx context.Context, gymID, months int, now time.Time) ([]stats.MonthBucket, error)
	CategoryBreakdown(ctx context.Context, gymID int) ([]stats.Entry, error)
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) snapshot(ctx context.Context, gymID int) ([]Expense, error) {
	var expenses []Expense
	if s.cache.Get(ctx, gymID, cache.EntityExpenses, &expenses) {
		return expenses, nil
	}

	expenses, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, gymID, cache.EntityExpenses, expenses)
	return expenses, nil
}

func (s *service) List(ctx context.Context, gymID int, f Filter, now time.Time) ([]Expense, int, error) {
	expenses, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	return f.Apply(expenses, now), len(expenses), nil
}

func (s *service) Get(ctx context.Context, gymID, id int) (*Expense, error) {
	return s.repo.GetByID(ctx, gymID, id)
}

func (s *service) Create(ctx context.Context, gymID int, req CreateExpenseRequest) (*Expense, error) {
	created, err := s.repo.Create(ctx, Expense{
		GymID:       gymID,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityExpenses)
	return created, nil
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdateExpenseRequest) (*Expense, error) {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	e := *existing
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.ExpenseDate != nil {
		e.ExpenseDate = *req.ExpenseDate
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}

	updated, err := s.repo.Update(ctx, gymID, id, e)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityExpenses)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	if err := s.repo.Delete(ctx, gymID, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityExpenses)
	return nil
}

func (s *service) MonthlySeries(ctx context.Context, gymID, months int, now time.Time) ([]stats.MonthBucket, error) {
	expenses, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, err
	}

	points := make([]stats.Point, len(expenses))
	for i, e := range expenses {
		points[i] = stats.Point{Date: e.ExpenseDate, Amount: e.Amount}
	}

	return stats.MonthlySeries(points, months, now), nil
}

// CategoryBreakdown groups spend by category, largest first.
func (s *service) CategoryBreakdown(ctx context.Context, gymID int) ([]stats.Entry, error) {
	expenses, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, err
	}

	keyed := make([]stats.Keyed, len(expenses))
	for i, e := range expenses {
		keyed[i] = stats.Keyed{Key: e.Category, Amount: e.Amount}
	}

	return stats.Breakdown(keyed), nil
}
