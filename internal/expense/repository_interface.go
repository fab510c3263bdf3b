package expense

import "context"

type Repository interface {
	ListByGym(ctx context.Context, gymID int) ([]Expense, error)
	GetByID(ctx context.Context, gymID, id int) (*Expense, error)
	Create(ctx context.Context, e Expense) (*Expense, error)
	Update(ctx context.Context, gymID, id int, e Expense) (*Expense, error)
	Delete(ctx context.Context, gymID, id int) error
}
