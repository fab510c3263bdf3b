package plan

import "context"

type Repository interface {
	ListByGym(ctx context.Context, gymID int) ([]Plan, error)
	GetByID(ctx context.Context, gymID, id int) (*Plan, error)
	Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error)
	Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error)
}
