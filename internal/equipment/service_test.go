package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/status"
)

type MockEquipmentRepo struct{ mock.Mock }

func (m *MockEquipmentRepo) ListByGym(ctx context.Context, gymID int) ([]Equipment, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, gymID, id int) (*Equipment, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) Create(ctx context.Context, e Equipment) (*Equipment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) Update(ctx context.Context, gymID, id int, e Equipment) (*Equipment, error) {
	args := m.Called(ctx, gymID, id, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) Delete(ctx context.Context, gymID, id int) error {
	return m.Called(ctx, gymID, id).Error(0)
}

func TestListAddsDerivedLabels(t *testing.T) {
	repo := new(MockEquipmentRepo)
	svc := NewService(repo, nil)
	ctx := context.Background()

	past := testNow.AddDate(0, 0, -1)
	e := testEquipment("Treadmill", "cardio")
	e.WarrantyExpires = &past
	repo.On("ListByGym", ctx, 7).Return([]Equipment{e}, nil)

	views, total, err := svc.List(ctx, 7, Filter{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, views, 1)
	assert.Equal(t, status.Expired, views[0].WarrantyStatus)
	assert.Equal(t, status.NotScheduled, views[0].MaintenanceStatus)
}

func TestCreateDefaultsStatus(t *testing.T) {
	repo := new(MockEquipmentRepo)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(e Equipment) bool {
		return e.GymID == 7 && e.Status == StatusActive
	})).Return(&Equipment{ID: 1, GymID: 7, Status: StatusActive}, nil)

	created, err := svc.Create(ctx, 7, CreateEquipmentRequest{Name: "Treadmill"})
	require.NoError(t, err)
	assert.Equal(t, StatusActive, created.Status)
	repo.AssertExpectations(t)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := NewService(new(MockEquipmentRepo), nil)

	_, err := svc.Create(context.Background(), 7, CreateEquipmentRequest{
		Name:   "Treadmill",
		Status: "melted",
	})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestNeedsAttentionSkipsRetired(t *testing.T) {
	repo := new(MockEquipmentRepo)
	svc := NewService(repo, nil)
	ctx := context.Background()

	past := testNow.AddDate(0, 0, -10)
	in3 := testNow.AddDate(0, 0, 3)
	in90 := testNow.AddDate(0, 0, 90)

	outOfWarranty := testEquipment("Old treadmill", "cardio")
	outOfWarranty.WarrantyExpires = &past

	maintenanceDue := testEquipment("Rower", "cardio")
	maintenanceDue.MaintenanceDue = &in3

	fine := testEquipment("New bike", "cardio")
	fine.WarrantyExpires = &in90

	retired := testEquipment("Scrapped rack", "strength")
	retired.Status = StatusRetired
	retired.WarrantyExpires = &past

	repo.On("ListByGym", ctx, 7).
		Return([]Equipment{outOfWarranty, maintenanceDue, fine, retired}, nil)

	views, err := svc.NeedsAttention(ctx, 7, testNow)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Old treadmill", views[0].Name)
	assert.Equal(t, "Rower", views[1].Name)
}

func TestCategoryBreakdownByCost(t *testing.T) {
	repo := new(MockEquipmentRepo)
	svc := NewService(repo, nil)
	ctx := context.Background()

	cardioA := testEquipment("Treadmill", "cardio")
	cardioA.Cost = 80000
	cardioB := testEquipment("Rower", "cardio")
	cardioB.Cost = 40000
	strength := testEquipment("Rack", "strength")
	strength.Cost = 30000

	repo.On("ListByGym", ctx, 7).Return([]Equipment{strength, cardioA, cardioB}, nil)

	entries, err := svc.CategoryBreakdown(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "cardio", entries[0].Key)
	assert.Equal(t, 120000.0, entries[0].Total)
	assert.Equal(t, 2, entries[0].Count)
}

func TestStatusBreakdown(t *testing.T) {
	repo := new(MockEquipmentRepo)
	svc := NewService(repo, nil)
	ctx := context.Background()

	working := testEquipment("Treadmill", "cardio")
	working.Cost = 80000
	down := testEquipment("Rower", "cardio")
	down.Status = StatusBroken
	down.Cost = 40000

	repo.On("ListByGym", ctx, 7).Return([]Equipment{working, down}, nil)

	entries, err := svc.StatusBreakdown(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, StatusActive, entries[0].Key)
	assert.Equal(t, 1, entries[0].Count)
	assert.Equal(t, StatusBroken, entries[1].Key)
}
