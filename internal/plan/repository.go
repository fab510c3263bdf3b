package plan

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrPlanNotFound = errors.New("plan not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const planColumns = `id, gym_id, name, price, duration_value, duration_type, features, status, is_popular, created_at`

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM membership_plans
		WHERE gym_id = $1
		ORDER BY is_popular DESC, price ASC
	`

	plans := []Plan{}
	if err := r.db.SelectContext(ctx, &plans, query, gymID); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM membership_plans
		WHERE gym_id = $1 AND id = $2
	`

	var p Plan
	if err := r.db.GetContext(ctx, &p, query, gymID, id); err != nil {
		return nil, ErrPlanNotFound
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error) {
	query := `
		INSERT INTO membership_plans (gym_id, name, price, duration_value, duration_type, features, is_popular, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'active')
		RETURNING ` + planColumns + `
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query,
		gymID, req.Name, req.Price, req.DurationValue, req.DurationType,
		pq.Array(req.Features), req.IsPopular)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, gymID, id int, req UpdatePlanRequest) (*Plan, error) {
	query := `
		UPDATE membership_plans
		SET name = $3, price = $4, duration_value = $5, duration_type = $6,
		    features = $7, status = $8, is_popular = $9
		WHERE gym_id = $1 AND id = $2
		RETURNING ` + planColumns + `
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query,
		gymID, id, req.Name, req.Price, req.DurationValue, req.DurationType,
		pq.Array(req.Features), req.Status, req.IsPopular)
	if err != nil {
		return nil, ErrPlanNotFound
	}

	return &p, nil
}
