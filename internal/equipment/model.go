package equipment

import "time"

// Operational condition of a piece of equipment, set by staff. Distinct from
// the derived warranty/maintenance labels, which come from dates.
const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusBroken      = "broken"
	StatusRetired     = "retired"
)

var KnownStatuses = []string{StatusActive, StatusMaintenance, StatusBroken, StatusRetired}

type Equipment struct {
	ID              int        `db:"id" json:"id"`
	GymID           int        `db:"gym_id" json:"gym_id"`
	Name            string     `db:"name" json:"name"`
	Category        string     `db:"category" json:"category,omitempty"`
	SerialNumber    string     `db:"serial_number" json:"serial_number,omitempty"`
	Status          string     `db:"status" json:"status"`
	Cost            float64    `db:"cost" json:"cost"`
	PurchaseDate    *time.Time `db:"purchase_date" json:"purchase_date,omitempty"`
	WarrantyExpires *time.Time `db:"warranty_expires" json:"warranty_expires,omitempty"`
	MaintenanceDue  *time.Time `db:"maintenance_due" json:"maintenance_due,omitempty"`
	Notes           string     `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

type CreateEquipmentRequest struct {
	Name            string     `json:"name" binding:"required"`
	Category        string     `json:"category"`
	SerialNumber    string     `json:"serial_number"`
	Status          string     `json:"status"`
	Cost            float64    `json:"cost" binding:"omitempty,gte=0"`
	PurchaseDate    *time.Time `json:"purchase_date" time_format:"2006-01-02"`
	WarrantyExpires *time.Time `json:"warranty_expires" time_format:"2006-01-02"`
	MaintenanceDue  *time.Time `json:"maintenance_due" time_format:"2006-01-02"`
	Notes           string     `json:"notes"`
}

type UpdateEquipmentRequest struct {
	Name            *string    `json:"name"`
	Category        *string    `json:"category"`
	SerialNumber    *string    `json:"serial_number"`
	Status          *string    `json:"status"`
	Cost            *float64   `json:"cost" binding:"omitempty,gte=0"`
	PurchaseDate    *time.Time `json:"purchase_date" time_format:"2006-01-02"`
	WarrantyExpires *time.Time `json:"warranty_expires" time_format:"2006-01-02"`
	MaintenanceDue  *time.Time `json:"maintenance_due" time_format:"2006-01-02"`
	Notes           *string    `json:"notes"`
}
