package equipment

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const equipmentColumns = `
	id, gym_id, name, category, serial_number, status, cost,
	purchase_date, warranty_expires, maintenance_due, notes, created_at
`

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment
		WHERE gym_id = $1
		ORDER BY name ASC, id ASC
	`

	items := []Equipment{}
	if err := r.db.SelectContext(ctx, &items, query, gymID); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment
		WHERE gym_id = $1 AND id = $2
	`

	var e Equipment
	if err := r.db.GetContext(ctx, &e, query, gymID, id); err != nil {
		return nil, ErrEquipmentNotFound
	}

	return &e, nil
}

func (r *repository) Create(ctx context.Context, e Equipment) (*Equipment, error) {
	query := `
		INSERT INTO equipment (gym_id, name, category, serial_number, status, cost,
			purchase_date, warranty_expires, maintenance_due, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + equipmentColumns + `
	`

	var created Equipment
	err := r.db.GetContext(ctx, &created, query,
		e.GymID, e.Name, e.Category, e.SerialNumber, e.Status, e.Cost,
		e.PurchaseDate, e.WarrantyExpires, e.MaintenanceDue, e.Notes)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) Update(ctx context.Context, gymID, id int, e Equipment) (*Equipment, error) {
	query := `
		UPDATE equipment
		SET name = $3, category = $4, serial_number = $5, status = $6, cost = $7,
			purchase_date = $8, warranty_expires = $9, maintenance_due = $10, notes = $11
		WHERE gym_id = $1 AND id = $2
		RETURNING ` + equipmentColumns + `
	`

	var updated Equipment
	err := r.db.GetContext(ctx, &updated, query,
		gymID, id, e.Name, e.Category, e.SerialNumber, e.Status, e.Cost,
		e.PurchaseDate, e.WarrantyExpires, e.MaintenanceDue, e.Notes)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE gym_id = $1 AND id = $2`, gymID, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}
