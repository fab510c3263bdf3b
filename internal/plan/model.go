package plan

import (
	"time"

	"github.com/lib/pq"
)

// Duration types a plan can be sold in.
const (
	DurationDaily    = "daily"
	DurationWeekly   = "weekly"
	DurationMonthly  = "monthly"
	DurationYearly   = "yearly"
	DurationLifetime = "lifetime"
)

// Plan is a membership product: a price for a duration. The source data has
// both duration-in-days and duration-in-months records, so the model stores
// a value plus a unit and derives days on demand.
type Plan struct {
	ID            int            `db:"id" json:"id"`
	GymID         int            `db:"gym_id" json:"gym_id"`
	Name          string         `db:"name" json:"name"`
	Price         float64        `db:"price" json:"price"`
	DurationValue int            `db:"duration_value" json:"duration_value"`
	DurationType  string         `db:"duration_type" json:"duration_type"`
	Features      pq.StringArray `db:"features" json:"features"`
	Status        string         `db:"status" json:"status"`
	IsPopular     bool           `db:"is_popular" json:"is_popular"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// DurationDays converts the stored duration to days. Lifetime plans report
// 0: callers treat that as "no end date".
func (p Plan) DurationDays() int {
	switch p.DurationType {
	case DurationDaily:
		return p.DurationValue
	case DurationWeekly:
		return p.DurationValue * 7
	case DurationMonthly:
		return p.DurationValue * 30
	case DurationYearly:
		return p.DurationValue * 365
	case DurationLifetime:
		return 0
	default:
		return p.DurationValue
	}
}

type CreatePlanRequest struct {
	Name          string   `json:"name" binding:"required"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DurationValue int      `json:"duration_value" binding:"required,min=1"`
	DurationType  string   `json:"duration_type" binding:"required,oneof=daily weekly monthly yearly lifetime"`
	Features      []string `json:"features"`
	IsPopular     bool     `json:"is_popular"`
}

type UpdatePlanRequest struct {
	Name          string   `json:"name" binding:"required"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DurationValue int      `json:"duration_value" binding:"required,min=1"`
	DurationType  string   `json:"duration_type" binding:"required,oneof=daily weekly monthly yearly lifetime"`
	Features      []string `json:"features"`
	Status        string   `json:"status" binding:"required"`
	IsPopular     bool     `json:"is_popular"`
}
