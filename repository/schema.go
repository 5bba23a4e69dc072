package repository

import (
	"context"
	"time"
)

type schema interface {
	EnsureSchema() error
}

// The id column makes the insertion-order tie-break for listings
// deterministic; it is bookkeeping only and never leaves the store.
const createVehiclesTable = `
	CREATE TABLE IF NOT EXISTS vehicles (
		vin varchar(17) PRIMARY KEY,
		manufacturer_name varchar(50) NOT NULL,
		description text,
		horse_power integer NOT NULL,
		model_name varchar(100) NOT NULL,
		model_year integer NOT NULL,
		purchase_price numeric(12,2) NOT NULL,
		fuel_type varchar(50) NOT NULL,
		id bigserial UNIQUE,
		created_at timestamptz NOT NULL DEFAULT now()
	)`

// EnsureSchema creates the vehicles table at startup if it doesn't exist.
func (r *repository) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, createVehiclesTable)
	return err
}
