package expense

import "time"

// Common expense categories. The column stays an open string so gyms can
// type their own; Breakdown groups whatever is stored.
const (
	CategoryRent        = "rent"
	CategorySalary      = "salary"
	CategoryEquipment   = "equipment"
	CategoryUtilities   = "utilities"
	CategoryMaintenance = "maintenance"
	CategoryOther       = "other"
)

type Expense struct {
	ID          int       `db:"id" json:"id"`
	GymID       int       `db:"gym_id" json:"gym_id"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Amount      float64   `db:"amount" json:"amount"`
	ExpenseDate time.Time `db:"expense_date" json:"expense_date"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateExpenseRequest struct {
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	ExpenseDate time.Time `json:"expense_date" binding:"required" time_format:"2006-01-02"`
	Notes       string    `json:"notes"`
}

type UpdateExpenseRequest struct {
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	ExpenseDate *time.Time `json:"expense_date" time_format:"2006-01-02"`
	Notes       *string    `json:"notes"`
}
