package service

import (
	"errors"

	"github.com/apollomotors/vehicleapi/data"
	"github.com/apollomotors/vehicleapi/data/dto"
	"github.com/apollomotors/vehicleapi/internal/validator"
	"github.com/apollomotors/vehicleapi/repository"
)

type vehicles interface {
	CreateVehicle(requestBody dto.CreateVehicleRequestBody) (*data.Vehicle, error)
	GetVehicle(vin string) (*data.Vehicle, error)
	ListVehicles() ([]*data.Vehicle, error)
	UpdateVehicle(vin string, requestBody dto.UpdateVehicleRequestBody) (*data.Vehicle, error)
	DeleteVehicle(vin string) error
}

// applyVehicleFields copies the mutable fields of a request body onto a
// vehicle, recording a field error for every required field that is
// absent or null. Description is the only optional field.
func applyVehicleFields(v *validator.Validator, vehicle *data.Vehicle, requestBody dto.UpdateVehicleRequestBody) {
	if requestBody.ManufacturerName != nil {
		vehicle.ManufacturerName = *requestBody.ManufacturerName
	} else {
		v.AddError("manufacturer_name", "must be provided")
	}
	vehicle.Description = requestBody.Description
	if requestBody.HorsePower != nil {
		vehicle.HorsePower = *requestBody.HorsePower
	} else {
		v.AddError("horse_power", "must be provided")
	}
	if requestBody.ModelName != nil {
		vehicle.ModelName = *requestBody.ModelName
	} else {
		v.AddError("model_name", "must be provided")
	}
	if requestBody.ModelYear != nil {
		vehicle.ModelYear = *requestBody.ModelYear
	} else {
		v.AddError("model_year", "must be provided")
	}
	if requestBody.PurchasePrice != nil {
		vehicle.PurchasePrice = *requestBody.PurchasePrice
	} else {
		v.AddError("purchase_price", "must be provided")
	}
	if requestBody.FuelType != nil {
		vehicle.FuelType = *requestBody.FuelType
	} else {
		v.AddError("fuel_type", "must be provided")
	}
}

// CreateVehicle validates a create request into a canonical vehicle and
// inserts it. The VIN is normalized to lowercase before any comparison
// or store, so two creates differing only in VIN case collide.
func (s *service) CreateVehicle(requestBody dto.CreateVehicleRequestBody) (*data.Vehicle, error) {
	v := validator.New()
	vehicle := &data.Vehicle{}
	if requestBody.VIN != nil {
		vehicle.VIN = data.NormalizeVIN(*requestBody.VIN)
	} else {
		v.AddError("vin", "must be provided")
	}
	applyVehicleFields(v, vehicle, dto.UpdateVehicleRequestBody{
		ManufacturerName: requestBody.ManufacturerName,
		Description:      requestBody.Description,
		HorsePower:       requestBody.HorsePower,
		ModelName:        requestBody.ModelName,
		ModelYear:        requestBody.ModelYear,
		PurchasePrice:    requestBody.PurchasePrice,
		FuelType:         requestBody.FuelType,
	})
	if data.ValidateVehicle(v, vehicle); !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}
	err := s.repo.CreateVehicle(vehicle)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, &DuplicateVINError{VIN: vehicle.VIN}
		default:
			return nil, err
		}
	}
	return vehicle, nil
}

// GetVehicle retrieves a vehicle by VIN. The lookup key is normalized
// first, so a get with any casing of a stored VIN finds the record.
func (s *service) GetVehicle(vin string) (*data.Vehicle, error) {
	vehicle, err := s.repo.GetVehicle(data.NormalizeVIN(vin))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return vehicle, nil
}

// ListVehicles retrieves all vehicles ordered by manufacturer name.
func (s *service) ListVehicles() ([]*data.Vehicle, error) {
	return s.repo.GetAllVehicles()
}

// UpdateVehicle replaces every mutable field of an existing vehicle.
// PUT semantics: the full field set is required, the VIN comes from the
// request path and cannot change, and an absent VIN never creates a
// record.
func (s *service) UpdateVehicle(vin string, requestBody dto.UpdateVehicleRequestBody) (*data.Vehicle, error) {
	v := validator.New()
	vehicle := &data.Vehicle{VIN: data.NormalizeVIN(vin)}
	applyVehicleFields(v, vehicle, requestBody)
	if data.ValidateVehicleFields(v, vehicle); !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}
	err := s.repo.UpdateVehicle(vehicle)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle by VIN. The repository reports an
// absent key as an unsuccessful delete rather than a failure; it is
// mapped to ErrRecordNotFound here so the HTTP surface can render 404.
func (s *service) DeleteVehicle(vin string) error {
	deleted, err := s.repo.DeleteVehicle(data.NormalizeVIN(vin))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}
