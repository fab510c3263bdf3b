package gym

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrGymNotFound = errors.New("gym not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string) (*Gym, error) {
	query := `
		INSERT INTO gyms (name)
		VALUES ($1)
		RETURNING id, name, address, phone, created_at
	`

	var gym Gym
	if err := r.db.GetContext(ctx, &gym, query, name); err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Gym, error) {
	query := `
		SELECT id, name, address, phone, created_at
		FROM gyms
		WHERE id = $1
	`

	var gym Gym
	if err := r.db.GetContext(ctx, &gym, query, id); err != nil {
		return nil, ErrGymNotFound
	}

	return &gym, nil
}

func (r *repository) Update(ctx context.Context, id int, name, address, phone string) (*Gym, error) {
	query := `
		UPDATE gyms
		SET name = $2, address = $3, phone = $4
		WHERE id = $1
		RETURNING id, name, address, phone, created_at
	`

	var gym Gym
	if err := r.db.GetContext(ctx, &gym, query, id, name, address, phone); err != nil {
		return nil, ErrGymNotFound
	}

	return &gym, nil
}
