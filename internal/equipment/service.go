package equipment

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/cache"
	"gymdesk/internal/stats"
	"gymdesk/internal/status"
)

var ErrUnknownStatus = errors.New("unknown equipment status")

// EquipmentView is the list-screen row: the record plus its derived labels.
type EquipmentView struct {
	Equipment
	WarrantyStatus    status.Label `json:"warranty_status"`
	MaintenanceStatus status.Label `json:"maintenance_status"`
}

type Service interface {
	List(ctx context.Context, gymID int, f Filter, now time.Time) ([]EquipmentView, int, error)
	Get(ctx context.Context, gymID, id int, now time.Time) (*EquipmentView, error)
	Create(ctx context.Context, gymID int, req CreateEquipmentRequest) (*Equipment, error)
	Update(ctx context.Context, gymID, id int, req UpdateEquipmentRequest) (*Equipment, error)
	Delete(ctx context.Context, gymID, id int) error
	NeedsAttention(ctx context.Context, gymID int, now time.Time) ([]EquipmentView, error)
	CategoryBreakdown(ctx context.Context, gymID int) ([]stats.Entry, error)
	StatusBreakdown(ctx context.Context, gymID int) ([]stats.Entry, error)
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) snapshot(ctx context.Context, gymID int) ([]Equipment, error) {
	var items []Equipment
	if s.cache.Get(ctx, gymID, cache.EntityEquipment, &items) {
		return items, nil
	}

	items, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, gymID, cache.EntityEquipment, items)
	return items, nil
}

func (s *service) List(ctx context.Context, gymID int, f Filter, now time.Time) ([]EquipmentView, int, error) {
	items, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, 0, err
	}

	filtered := f.Apply(items, now)
	views := make([]EquipmentView, len(filtered))
	for i, e := range filtered {
		views[i] = newView(e, now)
	}

	return views, len(items), nil
}

func (s *service) Get(ctx context.Context, gymID, id int, now time.Time) (*EquipmentView, error) {
	e, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	view := newView(*e, now)
	return &view, nil
}

func (s *service) Create(ctx context.Context, gymID int, req CreateEquipmentRequest) (*Equipment, error) {
	st := req.Status
	if st == "" {
		st = StatusActive
	}
	if !isKnownStatus(st) {
		return nil, ErrUnknownStatus
	}

	created, err := s.repo.Create(ctx, Equipment{
		GymID:           gymID,
		Name:            req.Name,
		Category:        req.Category,
		SerialNumber:    req.SerialNumber,
		Status:          st,
		Cost:            req.Cost,
		PurchaseDate:    req.PurchaseDate,
		WarrantyExpires: req.WarrantyExpires,
		MaintenanceDue:  req.MaintenanceDue,
		Notes:           req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityEquipment)
	return created, nil
}

func (s *service) Update(ctx context.Context, gymID, id int, req UpdateEquipmentRequest) (*Equipment, error) {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	e := *existing
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.SerialNumber != nil {
		e.SerialNumber = *req.SerialNumber
	}
	if req.Status != nil {
		if !isKnownStatus(*req.Status) {
			return nil, ErrUnknownStatus
		}
		e.Status = *req.Status
	}
	if req.Cost != nil {
		e.Cost = *req.Cost
	}
	if req.PurchaseDate != nil {
		e.PurchaseDate = req.PurchaseDate
	}
	if req.WarrantyExpires != nil {
		e.WarrantyExpires = req.WarrantyExpires
	}
	if req.MaintenanceDue != nil {
		e.MaintenanceDue = req.MaintenanceDue
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}

	updated, err := s.repo.Update(ctx, gymID, id, e)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityEquipment)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, gymID, id int) error {
	if err := s.repo.Delete(ctx, gymID, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, gymID, cache.EntityEquipment)
	return nil
}

// NeedsAttention returns equipment whose warranty or maintenance label is
// Expired or ExpiringSoon, retired items excluded.
func (s *service) NeedsAttention(ctx context.Context, gymID int, now time.Time) ([]EquipmentView, error) {
	items, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, err
	}

	var out []EquipmentView
	for _, e := range items {
		if e.Status == StatusRetired {
			continue
		}
		view := newView(e, now)
		if needsAttention(view.WarrantyStatus) || needsAttention(view.MaintenanceStatus) {
			out = append(out, view)
		}
	}

	return out, nil
}

func (s *service) CategoryBreakdown(ctx context.Context, gymID int) ([]stats.Entry, error) {
	items, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, err
	}

	keyed := make([]stats.Keyed, len(items))
	for i, e := range items {
		keyed[i] = stats.Keyed{Key: e.Category, Amount: e.Cost}
	}

	return stats.Breakdown(keyed), nil
}

func (s *service) StatusBreakdown(ctx context.Context, gymID int) ([]stats.Entry, error) {
	items, err := s.snapshot(ctx, gymID)
	if err != nil {
		return nil, err
	}

	keyed := make([]stats.Keyed, len(items))
	for i, e := range items {
		keyed[i] = stats.Keyed{Key: e.Status, Amount: e.Cost}
	}

	return stats.Breakdown(keyed), nil
}

func newView(e Equipment, now time.Time) EquipmentView {
	return EquipmentView{
		Equipment:         e,
		WarrantyStatus:    status.Classify(e.WarrantyExpires, now, status.WarrantySoonDays),
		MaintenanceStatus: status.Classify(e.MaintenanceDue, now, status.MaintenanceSoonDays),
	}
}

func needsAttention(l status.Label) bool {
	return l == status.Expired || l == status.ExpiringSoon
}

func isKnownStatus(s string) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}
