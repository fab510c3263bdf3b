package member

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gymdesk/internal/installment"
	"gymdesk/internal/status"
)

// Stored member statuses. This is the vocabulary the member screens write;
// other parts of the source app used active/inactive/expired/suspended for
// the same column, so Status stays an open string and handlers validate
// against this list instead of a DB enum. Display labels (Expired,
// ExpiringSoon, ...) are derived per render by internal/status and never
// stored.
const (
	StatusActive  = "active"
	StatusOverdue = "overdue"
	StatusQuit    = "quit"
)

// KnownStatuses is the allowed-values list for the member screens.
var KnownStatuses = []string{StatusActive, StatusOverdue, StatusQuit}

// Profile is the denormalized personal-details blob stored as JSONB. It
// stays nested (not flattened into columns) because the filter layer depends
// on "field absent means the predicate can't match" semantics per field.
type Profile struct {
	FullName         string     `json:"full_name"`
	Phone            string     `json:"phone,omitempty"`
	Email            string     `json:"email,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	Address          string     `json:"address,omitempty"`
	Pincode          string     `json:"pincode,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	EmergencyPhone   string     `json:"emergency_phone,omitempty"`
	PhotoURL         string     `json:"photo_url,omitempty"`
}

func (p Profile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Profile) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = Profile{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into member.Profile", src)
	}
}

type Member struct {
	ID              int              `db:"id" json:"id"`
	GymID           int              `db:"gym_id" json:"gym_id"`
	PlanID          *int             `db:"plan_id" json:"plan_id,omitempty"`
	StartDate       time.Time        `db:"start_date" json:"start_date"`
	EndDate         time.Time        `db:"end_date" json:"end_date"`
	Status          string           `db:"status" json:"status"`
	Profile         Profile          `db:"profile" json:"profile"`
	InstallmentPlan installment.Plan `db:"installment_plan" json:"installment_plan"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
}

// MemberWithDetails adds the joined plan columns and the derived total-paid
// sum the list and detail screens show. TotalPaid is computed, never stored.
type MemberWithDetails struct {
	Member
	PlanName  *string `db:"plan_name" json:"plan_name,omitempty"`
	PlanPrice float64 `db:"plan_price" json:"plan_price"`
	TotalPaid float64 `db:"total_paid" json:"total_paid"`
}

// IsFullyPaid picks the completeness rule by whether the member is on an
// installment schedule. The two rules are genuinely different: a schedule is
// complete when every installment is settled, a plain membership when the
// paid total reaches the plan price.
func (m MemberWithDetails) IsFullyPaid() bool {
	if m.InstallmentPlan.Enabled {
		return installment.IsFullyPaid(m.InstallmentPlan)
	}
	return installment.FullyPaidByTotal(m.TotalPaid, m.PlanPrice)
}

// MemberView is the list-screen row: the record plus its derived badges.
type MemberView struct {
	MemberWithDetails
	Expiry    status.Expiry `json:"expiry"`
	FullyPaid bool          `json:"fully_paid"`
}

type InstallmentRequest struct {
	Enabled         bool    `json:"enabled"`
	TotalAmount     float64 `json:"total_amount" binding:"omitempty,gt=0"`
	NumInstallments int     `json:"num_installments" binding:"omitempty,min=1,max=24"`
	DownPayment     float64 `json:"down_payment" binding:"omitempty,gte=0"`
}

type CreateMemberRequest struct {
	PlanID      *int                `json:"plan_id"`
	StartDate   time.Time           `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate     *time.Time          `json:"end_date" time_format:"2006-01-02"`
	Profile     Profile             `json:"profile" binding:"required"`
	Installment *InstallmentRequest `json:"installment"`
}

type UpdateMemberRequest struct {
	PlanID    *int       `json:"plan_id"`
	StartDate *time.Time `json:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `json:"end_date" time_format:"2006-01-02"`
	Status    *string    `json:"status"`
	Profile   *Profile   `json:"profile"`
}

type RenewRequest struct {
	PlanID  *int       `json:"plan_id"`
	EndDate *time.Time `json:"end_date" time_format:"2006-01-02"`
}
