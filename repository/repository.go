package repository

import (
	"database/sql"
)

// Repository defines the app's repository layer.
type Repository interface {
	vehicles
	schema
}

type repository struct {
	db *sql.DB
}

// New creates a new instance of Repository.
func New(db *sql.DB) *repository {
	return &repository{db: db}
}
