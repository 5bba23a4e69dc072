package data

import (
	"strings"
	"time"

	"github.com/apollomotors/vehicleapi/internal/validator"
)

// VIN length bounds enforced by the validation layer. The store's
// varchar(17) column is a defensive backstop only.
const (
	VINMinLength = 5
	VINMaxLength = 17
)

// Vehicle defines a vehicle record. The VIN is the natural key, stored
// in its lowercased form. ID and CreatedAt are internal bookkeeping
// columns and never render externally.
type Vehicle struct {
	VIN              string    `json:"vin"`
	ManufacturerName string    `json:"manufacturer_name"`
	Description      *string   `json:"description"`
	HorsePower       int       `json:"horse_power"`
	ModelName        string    `json:"model_name"`
	ModelYear        int       `json:"model_year"`
	PurchasePrice    Price     `json:"purchase_price"`
	FuelType         string    `json:"fuel_type"`
	ID               int64     `json:"-"`
	CreatedAt        time.Time `json:"-"`
}

// NormalizeVIN converts a VIN to its canonical lowercase form. Every
// compare, lookup and store goes through this function; two VINs that
// differ only in case always collide.
func NormalizeVIN(vin string) string {
	return strings.ToLower(vin)
}

const maxPriceCents = 1_000_000_000_000 // 10 integer digits

// ValidateVehicle runs constraint checks on a canonical vehicle,
// collecting every violation rather than stopping at the first.
func ValidateVehicle(v *validator.Validator, vehicle *Vehicle) {
	v.Check(vehicle.VIN != "", "vin", "must be provided")
	v.Check(len(vehicle.VIN) >= VINMinLength, "vin", "must be at least 5 characters long")
	v.Check(len(vehicle.VIN) <= VINMaxLength, "vin", "must not be more than 17 characters long")
	ValidateVehicleFields(v, vehicle)
}

// ValidateVehicleFields checks the mutable (non-VIN) fields only. Full
// updates use this directly: the VIN of an update comes from the request
// path and resolves to either an existing record or a not-found outcome,
// never to a field error.
func ValidateVehicleFields(v *validator.Validator, vehicle *Vehicle) {
	v.Check(vehicle.ManufacturerName != "", "manufacturer_name", "must be provided")
	v.Check(len(vehicle.ManufacturerName) <= 50, "manufacturer_name", "must not be more than 50 characters long")
	v.Check(vehicle.ModelName != "", "model_name", "must be provided")
	v.Check(len(vehicle.ModelName) <= 100, "model_name", "must not be more than 100 characters long")
	v.Check(vehicle.FuelType != "", "fuel_type", "must be provided")
	v.Check(len(vehicle.FuelType) <= 50, "fuel_type", "must not be more than 50 characters long")
	v.Check(vehicle.PurchasePrice.Valid(), "purchase_price", "must be a valid amount with at most 2 decimal places")
	v.Check(vehicle.PurchasePrice.Cents() > -maxPriceCents && vehicle.PurchasePrice.Cents() < maxPriceCents,
		"purchase_price", "must not have more than 10 digits before the decimal point")
}
