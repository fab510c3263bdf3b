package member

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"gymdesk/internal/installment"
)

var ErrMemberNotFound = errors.New("member not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// detailColumns joins the plan and sums payments so TotalPaid stays derived.
const detailColumns = `
	m.id, m.gym_id, m.plan_id, m.start_date, m.end_date, m.status,
	m.profile, m.installment_plan, m.created_at,
	p.name AS plan_name,
	COALESCE(p.price, 0) AS plan_price,
	COALESCE((SELECT SUM(amount) FROM payments WHERE member_id = m.id), 0) AS total_paid
`

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]MemberWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM members m
		LEFT JOIN membership_plans p ON p.id = m.plan_id
		WHERE m.gym_id = $1
		ORDER BY m.created_at DESC
	`

	members := []MemberWithDetails{}
	if err := r.db.SelectContext(ctx, &members, query, gymID); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*MemberWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM members m
		LEFT JOIN membership_plans p ON p.id = m.plan_id
		WHERE m.gym_id = $1 AND m.id = $2
	`

	var m MemberWithDetails
	if err := r.db.GetContext(ctx, &m, query, gymID, id); err != nil {
		return nil, ErrMemberNotFound
	}

	return &m, nil
}

func (r *repository) Create(ctx context.Context, m Member) (*Member, error) {
	query := `
		INSERT INTO members (gym_id, plan_id, start_date, end_date, status, profile, installment_plan)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, gym_id, plan_id, start_date, end_date, status, profile, installment_plan, created_at
	`

	var created Member
	err := r.db.GetContext(ctx, &created, query,
		m.GymID, m.PlanID, m.StartDate, m.EndDate, m.Status, m.Profile, m.InstallmentPlan)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) Update(ctx context.Context, gymID, id int, m Member) (*Member, error) {
	query := `
		UPDATE members
		SET plan_id = $3, start_date = $4, end_date = $5, status = $6, profile = $7
		WHERE gym_id = $1 AND id = $2
		RETURNING id, gym_id, plan_id, start_date, end_date, status, profile, installment_plan, created_at
	`

	var updated Member
	err := r.db.GetContext(ctx, &updated, query,
		gymID, id, m.PlanID, m.StartDate, m.EndDate, m.Status, m.Profile)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	return &updated, nil
}

func (r *repository) UpdateStatus(ctx context.Context, gymID, id int, memberStatus string) error {
	query := `
		UPDATE members
		SET status = $3
		WHERE gym_id = $1 AND id = $2
	`

	result, err := r.db.ExecContext(ctx, query, gymID, id, memberStatus)
	if err != nil {
		return err
	}

	return requireRow(result.RowsAffected())
}

func (r *repository) Renew(ctx context.Context, gymID, id int, planID *int, endDate time.Time) error {
	query := `
		UPDATE members
		SET plan_id = COALESCE($3, plan_id), end_date = $4, status = 'active'
		WHERE gym_id = $1 AND id = $2
	`

	result, err := r.db.ExecContext(ctx, query, gymID, id, planID, endDate)
	if err != nil {
		return err
	}

	return requireRow(result.RowsAffected())
}

func (r *repository) UpdateInstallmentPlan(ctx context.Context, gymID, id int, plan installment.Plan) error {
	query := `
		UPDATE members
		SET installment_plan = $3
		WHERE gym_id = $1 AND id = $2
	`

	result, err := r.db.ExecContext(ctx, query, gymID, id, plan)
	if err != nil {
		return err
	}

	return requireRow(result.RowsAffected())
}

func requireRow(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMemberNotFound
	}
	return nil
}
