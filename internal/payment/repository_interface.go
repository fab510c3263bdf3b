package payment

import "context"

type Repository interface {
	ListByGym(ctx context.Context, gymID int) ([]PaymentWithMember, error)
	ListByMember(ctx context.Context, gymID, memberID int) ([]Payment, error)
	GetByID(ctx context.Context, gymID, id int) (*PaymentWithMember, error)
	Create(ctx context.Context, p Payment) (*Payment, error)
	Update(ctx context.Context, gymID, id int, p Payment) (*Payment, error)
	Delete(ctx context.Context, gymID, id int) error
}
