package member

import (
	"context"
	"time"

	"gymdesk/internal/installment"
)

type Repository interface {
	ListByGym(ctx context.Context, gymID int) ([]MemberWithDetails, error)
	GetByID(ctx context.Context, gymID, id int) (*MemberWithDetails, error)
	Create(ctx context.Context, m Member) (*Member, error)
	Update(ctx context.Context, gymID, id int, m Member) (*Member, error)
	UpdateStatus(ctx context.Context, gymID, id int, memberStatus string) error
	Renew(ctx context.Context, gymID, id int, planID *int, endDate time.Time) error
	UpdateInstallmentPlan(ctx context.Context, gymID, id int, plan installment.Plan) error
}
