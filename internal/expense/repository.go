package expense

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrExpenseNotFound = errors.New("expense not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const expenseColumns = `id, gym_id, description, category, amount, expense_date, notes, created_at`

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE gym_id = $1
		ORDER BY expense_date DESC, id DESC
	`

	expenses := []Expense{}
	if err := r.db.SelectContext(ctx, &expenses, query, gymID); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE gym_id = $1 AND id = $2
	`

	var e Expense
	if err := r.db.GetContext(ctx, &e, query, gymID, id); err != nil {
		return nil, ErrExpenseNotFound
	}

	return &e, nil
}

func (r *repository) Create(ctx context.Context, e Expense) (*Expense, error) {
	query := `
		INSERT INTO expenses (gym_id, description, category, amount, expense_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + expenseColumns + `
	`

	var created Expense
	err := r.db.GetContext(ctx, &created, query,
		e.GymID, e.Description, e.Category, e.Amount, e.ExpenseDate, e.Notes)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) Update(ctx context.Context, gymID, id int, e Expense) (*Expense, error) {
	query := `
		UPDATE expenses
		SET description = $3, category = $4, amount = $5, expense_date = $6, notes = $7
		WHERE gym_id = $1 AND id = $2
		RETURNING ` + expenseColumns + `
	`

	var updated Expense
	err := r.db.GetContext(ctx, &updated, query,
		gymID, id, e.Description, e.Category, e.Amount, e.ExpenseDate, e.Notes)
	if err != nil {
		return nil, ErrExpenseNotFound
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE gym_id = $1 AND id = $2`, gymID, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
