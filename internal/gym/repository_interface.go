package gym

import "context"

type Repository interface {
	Create(ctx context.Context, name string) (*Gym, error)
	GetByID(ctx context.Context, id int) (*Gym, error)
	Update(ctx context.Context, id int, name, address, phone string) (*Gym, error)
}
