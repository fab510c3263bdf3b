package gym

import "time"

// Gym is the tenant. Every member, payment, expense and equipment row hangs
// off exactly one gym, and repositories always filter by gym id before any
// snapshot reaches the aggregation layer.
type Gym struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type UpdateGymRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
