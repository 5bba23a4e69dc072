// Package dto defines the request bodies accepted by the service layer.
package dto

import "github.com/apollomotors/vehicleapi/data"

// CreateVehicleRequestBody defines the request body for CreateVehicle.
// Fields are pointers so the service can distinguish an absent or null
// field from a zero value and report every missing required field.
type CreateVehicleRequestBody struct {
	VIN              *string     `json:"vin"`
	ManufacturerName *string     `json:"manufacturer_name"`
	Description      *string     `json:"description"`
	HorsePower       *int        `json:"horse_power"`
	ModelName        *string     `json:"model_name"`
	ModelYear        *int        `json:"model_year"`
	PurchasePrice    *data.Price `json:"purchase_price"`
	FuelType         *string     `json:"fuel_type"`
}

// UpdateVehicleRequestBody defines the request body for UpdateVehicle.
// A full update replaces every mutable field, so all required fields
// must be present; the VIN comes from the request path and is immutable.
type UpdateVehicleRequestBody struct {
	ManufacturerName *string     `json:"manufacturer_name"`
	Description      *string     `json:"description"`
	HorsePower       *int        `json:"horse_power"`
	ModelName        *string     `json:"model_name"`
	ModelYear        *int        `json:"model_year"`
	PurchasePrice    *data.Price `json:"purchase_price"`
	FuelType         *string     `json:"fuel_type"`
}
