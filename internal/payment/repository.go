package payment

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrPaymentNotFound = errors.New("payment not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const detailColumns = `
	pay.id, pay.gym_id, pay.member_id, pay.amount, pay.payment_date,
	pay.payment_mode, pay.notes, pay.created_at,
	COALESCE(m.profile->>'full_name', '') AS member_name
`

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]PaymentWithMember, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM payments pay
		LEFT JOIN members m ON m.id = pay.member_id
		WHERE pay.gym_id = $1
		ORDER BY pay.payment_date DESC, pay.id DESC
	`

	payments := []PaymentWithMember{}
	if err := r.db.SelectContext(ctx, &payments, query, gymID); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) ListByMember(ctx context.Context, gymID, memberID int) ([]Payment, error) {
	query := `
		SELECT id, gym_id, member_id, amount, payment_date, payment_mode, notes, created_at
		FROM payments
		WHERE gym_id = $1 AND member_id = $2
		ORDER BY payment_date DESC, id DESC
	`

	payments := []Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, gymID, memberID); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*PaymentWithMember, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM payments pay
		LEFT JOIN members m ON m.id = pay.member_id
		WHERE pay.gym_id = $1 AND pay.id = $2
	`

	var p PaymentWithMember
	if err := r.db.GetContext(ctx, &p, query, gymID, id); err != nil {
		return nil, ErrPaymentNotFound
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, p Payment) (*Payment, error) {
	query := `
		INSERT INTO payments (gym_id, member_id, amount, payment_date, payment_mode, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, gym_id, member_id, amount, payment_date, payment_mode, notes, created_at
	`

	var created Payment
	err := r.db.GetContext(ctx, &created, query,
		p.GymID, p.MemberID, p.Amount, p.PaymentDate, p.PaymentMode, p.Notes)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) Update(ctx context.Context, gymID, id int, p Payment) (*Payment, error) {
	query := `
		UPDATE payments
		SET amount = $3, payment_date = $4, payment_mode = $5, notes = $6
		WHERE gym_id = $1 AND id = $2
		RETURNING id, gym_id, member_id, amount, payment_date, payment_mode, notes, created_at
	`

	var updated Payment
	err := r.db.GetContext(ctx, &updated, query,
		gymID, id, p.Amount, p.PaymentDate, p.PaymentMode, p.Notes)
	if err != nil {
		return nil, ErrPaymentNotFound
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE gym_id = $1 AND id = $2`, gymID, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
