package equipment

import "context"

type Repository interface {
	ListByGym(ctx context.Context, gymID int) ([]Equipment, error)
	GetByID(ctx context.Context, gymID, id int) (*Equipment, error)
	Create(ctx context.Context, e Equipment) (*Equipment, error)
	Update(ctx context.Context, gymID, id int, e Equipment) (*Equipment, error)
	Delete(ctx context.Context, gymID, id int) error
}
