package service

import (
	"os"
	"sort"
	"testing"

	"github.com/apollomotors/vehicleapi/config"
	"github.com/apollomotors/vehicleapi/data"
	"github.com/apollomotors/vehicleapi/data/dto"
	"github.com/apollomotors/vehicleapi/internal/jsonlog"
	"github.com/apollomotors/vehicleapi/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory stand-in for the PostgreSQL repository.
// Keys are assumed to be normalized already, matching the contract the
// service upholds before every store call.
type fakeRepository struct {
	vehicles map[string]*data.Vehicle
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{vehicles: make(map[string]*data.Vehicle)}
}

func (f *fakeRepository) EnsureSchema() error { return nil }

func (f *fakeRepository) CreateVehicle(vehicle *data.Vehicle) error {
	if _, exists := f.vehicles[vehicle.VIN]; exists {
		return repository.ErrDuplicateRecord
	}
	f.nextID++
	vehicle.ID = f.nextID
	clone := *vehicle
	f.vehicles[vehicle.VIN] = &clone
	return nil
}

func (f *fakeRepository) GetVehicle(vin string) (*data.Vehicle, error) {
	vehicle, exists := f.vehicles[vin]
	if !exists {
		return nil, repository.ErrRecordNotFound
	}
	clone := *vehicle
	return &clone, nil
}

func (f *fakeRepository) GetAllVehicles() ([]*data.Vehicle, error) {
	all := make([]*data.Vehicle, 0, len(f.vehicles))
	for _, vehicle := range f.vehicles {
		clone := *vehicle
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].ManufacturerName != all[j].ManufacturerName {
			return all[i].ManufacturerName < all[j].ManufacturerName
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (f *fakeRepository) UpdateVehicle(vehicle *data.Vehicle) error {
	existing, exists := f.vehicles[vehicle.VIN]
	if !exists {
		return repository.ErrRecordNotFound
	}
	vehicle.ID = existing.ID
	vehicle.CreatedAt = existing.CreatedAt
	clone := *vehicle
	f.vehicles[vehicle.VIN] = &clone
	return nil
}

func (f *fakeRepository) DeleteVehicle(vin string) (bool, error) {
	if _, exists := f.vehicles[vin]; !exists {
		return false, nil
	}
	delete(f.vehicles, vin)
	return true, nil
}

func newTestService(t *testing.T) (Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	logger := jsonlog.New(os.Stdout, jsonlog.LevelOff)
	return New(config.Config{}, logger, repo), repo
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func createBody() dto.CreateVehicleRequestBody {
	price := data.PriceFromCents(2500000)
	return dto.CreateVehicleRequestBody{
		VIN:              strptr("1HGBH41JXMN109186"),
		ManufacturerName: strptr("Toyota"),
		Description:      strptr("A reliable sedan"),
		HorsePower:       intptr(180),
		ModelName:        strptr("Camry"),
		ModelYear:        intptr(2023),
		PurchasePrice:    &price,
		FuelType:         strptr("Gasoline"),
	}
}

func updateBody() dto.UpdateVehicleRequestBody {
	body := createBody()
	return dto.UpdateVehicleRequestBody{
		ManufacturerName: body.ManufacturerName,
		Description:      body.Description,
		HorsePower:       body.HorsePower,
		ModelName:        body.ModelName,
		ModelYear:        body.ModelYear,
		PurchasePrice:    body.PurchasePrice,
		FuelType:         body.FuelType,
	}
}

func TestCreateVehicle(t *testing.T) {
	t.Run("stores the VIN lowercased", func(t *testing.T) {
		s, _ := newTestService(t)
		vehicle, err := s.CreateVehicle(createBody())
		require.NoError(t, err)
		assert.Equal(t, "1hgbh41jxmn109186", vehicle.VIN)
	})

	t.Run("duplicate VIN differing only in case collides", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.CreateVehicle(createBody())
		require.NoError(t, err)

		body := createBody()
		body.VIN = strptr("1hgbh41jxmn109186")
		_, err = s.CreateVehicle(body)
		require.ErrorIs(t, err, ErrDuplicateRecord)
		assert.Contains(t, err.Error(), "1hgbh41jxmn109186")
	})

	t.Run("missing required fields are all reported", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.CreateVehicle(dto.CreateVehicleRequestBody{VIN: strptr("ABCDE12345")})
		require.ErrorIs(t, err, ErrFailedValidation)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		for _, field := range []string{"manufacturer_name", "horse_power", "model_name", "model_year", "purchase_price", "fuel_type"} {
			assert.Contains(t, verr.Fields, field)
		}
	})

	t.Run("VIN length out of range is rejected", func(t *testing.T) {
		s, _ := newTestService(t)
		for _, vin := range []string{"abc", "aaaaaaaaaaaaaaaaaa"} {
			body := createBody()
			body.VIN = strptr(vin)
			_, err := s.CreateVehicle(body)
			require.ErrorIs(t, err, ErrFailedValidation, "vin %q", vin)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, "vin")
		}
	})

	t.Run("description is optional", func(t *testing.T) {
		s, _ := newTestService(t)
		body := createBody()
		body.Description = nil
		vehicle, err := s.CreateVehicle(body)
		require.NoError(t, err)
		assert.Nil(t, vehicle.Description)
	})

	t.Run("invalid price is a field error", func(t *testing.T) {
		s, _ := newTestService(t)
		body := createBody()
		var bad data.Price
		require.NoError(t, bad.UnmarshalJSON([]byte(`"not a price"`)))
		body.PurchasePrice = &bad
		_, err := s.CreateVehicle(body)
		require.ErrorIs(t, err, ErrFailedValidation)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "purchase_price")
	})
}

func TestGetVehicle(t *testing.T) {
	t.Run("lookup is case-insensitive", func(t *testing.T) {
		s, _ := newTestService(t)
		created, err := s.CreateVehicle(createBody())
		require.NoError(t, err)

		vehicle, err := s.GetVehicle("1HGBH41JXMN109186")
		require.NoError(t, err)
		assert.Equal(t, created.VIN, vehicle.VIN)
	})

	t.Run("absent VIN returns not found", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.GetVehicle("nonexistent")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestListVehicles(t *testing.T) {
	t.Run("sorted by manufacturer name for any insertion order", func(t *testing.T) {
		s, _ := newTestService(t)
		for i, name := range []string{"Volvo", "Audi", "Mazda"} {
			body := createBody()
			vin := "vin0000000" + string(rune('a'+i))
			body.VIN = &vin
			body.ManufacturerName = strptr(name)
			_, err := s.CreateVehicle(body)
			require.NoError(t, err)
		}
		vehicles, err := s.ListVehicles()
		require.NoError(t, err)
		require.Len(t, vehicles, 3)
		assert.Equal(t, "Audi", vehicles[0].ManufacturerName)
		assert.Equal(t, "Mazda", vehicles[1].ManufacturerName)
		assert.Equal(t, "Volvo", vehicles[2].ManufacturerName)
	})

	t.Run("equal manufacturer names keep insertion order", func(t *testing.T) {
		s, _ := newTestService(t)
		for _, vin := range []string{"vinaaaaaa1", "vinaaaaaa2"} {
			body := createBody()
			v := vin
			body.VIN = &v
			_, err := s.CreateVehicle(body)
			require.NoError(t, err)
		}
		vehicles, err := s.ListVehicles()
		require.NoError(t, err)
		require.Len(t, vehicles, 2)
		assert.Equal(t, "vinaaaaaa1", vehicles[0].VIN)
		assert.Equal(t, "vinaaaaaa2", vehicles[1].VIN)
	})
}

func TestUpdateVehicle(t *testing.T) {
	t.Run("replaces every mutable field", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.CreateVehicle(createBody())
		require.NoError(t, err)

		body := updateBody()
		body.ManufacturerName = strptr("Honda")
		vehicle, err := s.UpdateVehicle("1HGBH41JXMN109186", body)
		require.NoError(t, err)
		assert.Equal(t, "Honda", vehicle.ManufacturerName)
		assert.Equal(t, "1hgbh41jxmn109186", vehicle.VIN)
	})

	t.Run("absent VIN never creates a record", func(t *testing.T) {
		s, repo := newTestService(t)
		_, err := s.UpdateVehicle("nonexistent12345", updateBody())
		require.ErrorIs(t, err, ErrRecordNotFound)
		assert.Empty(t, repo.vehicles)
	})

	t.Run("missing required field leaves the record unchanged", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.CreateVehicle(createBody())
		require.NoError(t, err)

		body := updateBody()
		body.FuelType = nil
		_, err = s.UpdateVehicle("1hgbh41jxmn109186", body)
		require.ErrorIs(t, err, ErrFailedValidation)

		vehicle, err := s.GetVehicle("1hgbh41jxmn109186")
		require.NoError(t, err)
		assert.Equal(t, "Gasoline", vehicle.FuelType)
		assert.Equal(t, "Toyota", vehicle.ManufacturerName)
	})
}

func TestDeleteVehicle(t *testing.T) {
	t.Run("removes the record", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.CreateVehicle(createBody())
		require.NoError(t, err)

		require.NoError(t, s.DeleteVehicle("1HGBH41JXMN109186"))
		_, err = s.GetVehicle("1hgbh41jxmn109186")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("second delete reports not found, not a crash", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.CreateVehicle(createBody())
		require.NoError(t, err)

		require.NoError(t, s.DeleteVehicle("1hgbh41jxmn109186"))
		assert.ErrorIs(t, s.DeleteVehicle("1hgbh41jxmn109186"), ErrRecordNotFound)
	})
}

func TestPriceRoundTrip(t *testing.T) {
	s, _ := newTestService(t)
	created, err := s.CreateVehicle(createBody())
	require.NoError(t, err)
	assert.Equal(t, int64(2500000), created.PurchasePrice.Cents())

	vehicle, err := s.GetVehicle(created.VIN)
	require.NoError(t, err)
	assert.Equal(t, "25000.00", vehicle.PurchasePrice.String())
}
