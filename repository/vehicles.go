package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/apollomotors/vehicleapi/data"
)

type vehicles interface {
	CreateVehicle(vehicle *data.Vehicle) error
	GetVehicle(vin string) (*data.Vehicle, error)
	GetAllVehicles() ([]*data.Vehicle, error)
	UpdateVehicle(vehicle *data.Vehicle) error
	DeleteVehicle(vin string) (bool, error)
}

// CreateVehicle inserts a new vehicle record inside its own unit of work.
// The primary key constraint is the last line of defense for VIN
// uniqueness: under concurrent creates with the same normalized VIN,
// exactly one insert succeeds and the other returns ErrDuplicateRecord.
func (r *repository) CreateVehicle(vehicle *data.Vehicle) error {
	query := `
		INSERT INTO vehicles (vin, manufacturer_name, description, horse_power, model_name, model_year, purchase_price, fuel_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	args := []interface{}{
		vehicle.VIN,
		vehicle.ManufacturerName,
		vehicle.Description,
		vehicle.HorsePower,
		vehicle.ModelName,
		vehicle.ModelYear,
		vehicle.PurchasePrice,
		vehicle.FuelType,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	err = tx.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID, &vehicle.CreatedAt)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "vehicles_pkey"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return tx.Commit()
}

// GetVehicle retrieves a vehicle record by its normalized VIN.
func (r *repository) GetVehicle(vin string) (*data.Vehicle, error) {
	if vin == "" {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT vin, manufacturer_name, description, horse_power, model_name, model_year, purchase_price, fuel_type, id, created_at
		FROM vehicles
		WHERE vin = $1`
	var vehicle data.Vehicle
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, vin).Scan(
		&vehicle.VIN,
		&vehicle.ManufacturerName,
		&vehicle.Description,
		&vehicle.HorsePower,
		&vehicle.ModelName,
		&vehicle.ModelYear,
		&vehicle.PurchasePrice,
		&vehicle.FuelType,
		&vehicle.ID,
		&vehicle.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &vehicle, nil
}

// GetAllVehicles retrieves all vehicle records ordered by manufacturer
// name ascending, with insertion order as the tie-break.
func (r *repository) GetAllVehicles() ([]*data.Vehicle, error) {
	query := `
		SELECT vin, manufacturer_name, description, horse_power, model_name, model_year, purchase_price, fuel_type, id, created_at
		FROM vehicles
		ORDER BY manufacturer_name ASC, id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	vehicles := []*data.Vehicle{}
	for rows.Next() {
		var vehicle data.Vehicle
		err := rows.Scan(
			&vehicle.VIN,
			&vehicle.ManufacturerName,
			&vehicle.Description,
			&vehicle.HorsePower,
			&vehicle.ModelName,
			&vehicle.ModelYear,
			&vehicle.PurchasePrice,
			&vehicle.FuelType,
			&vehicle.ID,
			&vehicle.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &vehicle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateVehicle replaces every mutable column of an existing record in
// one unit of work. The VIN is never updated. Returns ErrRecordNotFound
// if no row matches; a full update never creates a record.
func (r *repository) UpdateVehicle(vehicle *data.Vehicle) error {
	query := `
		UPDATE vehicles
		SET manufacturer_name = $1, description = $2, horse_power = $3, model_name = $4, model_year = $5, purchase_price = $6, fuel_type = $7
		WHERE vin = $8
		RETURNING id, created_at`
	args := []interface{}{
		vehicle.ManufacturerName,
		vehicle.Description,
		vehicle.HorsePower,
		vehicle.ModelName,
		vehicle.ModelYear,
		vehicle.PurchasePrice,
		vehicle.FuelType,
		vehicle.VIN,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	err = tx.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID, &vehicle.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return tx.Commit()
}

// DeleteVehicle removes a vehicle record by its normalized VIN. Deleting
// an absent key is not exceptional: it reports false with a nil error.
func (r *repository) DeleteVehicle(vin string) (bool, error) {
	if vin == "" {
		return false, nil
	}
	query := `
		DELETE FROM vehicles
		WHERE vin = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()
	result, err := tx.ExecContext(ctx, query, vin)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
