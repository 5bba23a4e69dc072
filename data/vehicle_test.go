package data

import (
	"strings"
	"testing"

	"github.com/apollomotors/vehicleapi/internal/validator"
	"github.com/stretchr/testify/assert"
)

func validVehicle() *Vehicle {
	return &Vehicle{
		VIN:              "1hgbh41jxmn109186",
		ManufacturerName: "Toyota",
		HorsePower:       180,
		ModelName:        "Camry",
		ModelYear:        2023,
		PurchasePrice:    PriceFromCents(2500000),
		FuelType:         "Gasoline",
	}
}

func TestNormalizeVIN(t *testing.T) {
	assert.Equal(t, "uppercase12345678", NormalizeVIN("UPPERCASE12345678"))
	assert.Equal(t, "1hgbh41jxmn109186", NormalizeVIN("1HGBH41JXMN109186"))
	assert.Equal(t, "already-lower", NormalizeVIN("already-lower"))
}

func TestValidateVehicle(t *testing.T) {
	t.Run("valid vehicle passes", func(t *testing.T) {
		v := validator.New()
		ValidateVehicle(v, validVehicle())
		assert.True(t, v.Valid(), "errors: %v", v.Errors)
	})

	t.Run("vin too short", func(t *testing.T) {
		v := validator.New()
		vehicle := validVehicle()
		vehicle.VIN = "abc"
		ValidateVehicle(v, vehicle)
		assert.Contains(t, v.Errors, "vin")
	})

	t.Run("vin too long", func(t *testing.T) {
		v := validator.New()
		vehicle := validVehicle()
		vehicle.VIN = strings.Repeat("a", 18)
		ValidateVehicle(v, vehicle)
		assert.Contains(t, v.Errors, "vin")
	})

	t.Run("vin length bounds accepted", func(t *testing.T) {
		for _, vin := range []string{"abcde", strings.Repeat("a", 17)} {
			v := validator.New()
			vehicle := validVehicle()
			vehicle.VIN = vin
			ValidateVehicle(v, vehicle)
			assert.True(t, v.Valid(), "vin %q should be accepted", vin)
		}
	})

	t.Run("all violations collected", func(t *testing.T) {
		v := validator.New()
		ValidateVehicle(v, &Vehicle{VIN: "ab", PurchasePrice: PriceFromCents(0)})
		assert.Contains(t, v.Errors, "vin")
		assert.Contains(t, v.Errors, "manufacturer_name")
		assert.Contains(t, v.Errors, "model_name")
		assert.Contains(t, v.Errors, "fuel_type")
	})

	t.Run("manufacturer name too long", func(t *testing.T) {
		v := validator.New()
		vehicle := validVehicle()
		vehicle.ManufacturerName = strings.Repeat("x", 51)
		ValidateVehicle(v, vehicle)
		assert.Contains(t, v.Errors, "manufacturer_name")
	})

	t.Run("price over 10 integer digits", func(t *testing.T) {
		v := validator.New()
		vehicle := validVehicle()
		vehicle.PurchasePrice = PriceFromCents(1_000_000_000_000)
		ValidateVehicle(v, vehicle)
		assert.Contains(t, v.Errors, "purchase_price")
	})

	t.Run("update validation skips the vin", func(t *testing.T) {
		v := validator.New()
		vehicle := validVehicle()
		vehicle.VIN = ""
		ValidateVehicleFields(v, vehicle)
		assert.True(t, v.Valid())
	})
}
