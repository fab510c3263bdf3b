package payment

import "time"

// Payment modes the UI offers. The column is an open string like member
// status: rows imported from the source app carry other spellings, so the
// filter treats mode as a vocabulary, not an enum.
const (
	ModeCash         = "cash"
	ModeCard         = "card"
	ModeUPI          = "upi"
	ModeBankTransfer = "bank_transfer"
	ModeCheque       = "cheque"
	ModeOnline       = "online"
)

type Payment struct {
	ID          int       `db:"id" json:"id"`
	GymID       int       `db:"gym_id" json:"gym_id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	Amount      float64   `db:"amount" json:"amount"`
	PaymentDate time.Time `db:"payment_date" json:"payment_date"`
	PaymentMode string    `db:"payment_mode" json:"payment_mode"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// PaymentWithMember carries the joined member name the payments screen shows.
type PaymentWithMember struct {
	Payment
	MemberName string `db:"member_name" json:"member_name"`
}

type CreatePaymentRequest struct {
	MemberID    int       `json:"member_id" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	PaymentDate time.Time `json:"payment_date" binding:"required" time_format:"2006-01-02"`
	PaymentMode string    `json:"payment_mode" binding:"required"`
	Notes       string    `json:"notes"`
}

type UpdatePaymentRequest struct {
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	PaymentDate *time.Time `json:"payment_date" time_format:"2006-01-02"`
	PaymentMode *string    `json:"payment_mode"`
	Notes       *string    `json:"notes"`
}
