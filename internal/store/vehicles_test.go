package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-labs/garagelog/internal/qr"
	"github.com/gearbox-labs/garagelog/pkg/types"
)

func TestAddVehicleDuplicatePlateRejected(t *testing.T) {
	b, dir := newTestBackend(t)

	require.NoError(t, b.AddVehicle(testVehicle("B1234XYZ")))
	csvBefore, err := os.ReadFile(filepath.Join(dir, vehiclesCSV))
	require.NoError(t, err)

	dup := testVehicle("B1234XYZ")
	dup.Brand = "Yamaha"
	err = b.AddVehicle(dup)
	assert.ErrorIs(t, err, types.ErrDuplicatePlate)

	vehicles, err := b.Vehicles()
	require.NoError(t, err)
	assert.Len(t, vehicles, 1, "vehicle count must be unchanged")
	assert.Equal(t, "Honda", vehicles[0].Brand, "original row must be untouched")

	csvAfter, err := os.ReadFile(filepath.Join(dir, vehiclesCSV))
	require.NoError(t, err)
	assert.Equal(t, csvBefore, csvAfter, "no storage write may occur on rejection")
}

func TestAddVehicleInvalidRejectedBeforeWrite(t *testing.T) {
	b, dir := newTestBackend(t)

	bad := testVehicle("B1234XYZ")
	bad.Year = 1979
	assert.ErrorIs(t, b.AddVehicle(bad), types.ErrYearOutOfRange)

	data, err := os.ReadFile(filepath.Join(dir, vehiclesCSV))
	require.NoError(t, err)
	assert.Equal(t, "plate,brand,model,year,category,color,last_odometer,notes,registered_at\n", string(data))
}

func TestAddVehicleStampsRegisteredAt(t *testing.T) {
	b, _ := newTestBackend(t)

	v := testVehicle("B1234XYZ")
	require.True(t, v.RegisteredAt.IsZero())
	require.NoError(t, b.AddVehicle(v))
	assert.False(t, v.RegisteredAt.IsZero())

	got, err := b.GetVehicle("B1234XYZ")
	require.NoError(t, err)
	assert.False(t, got.RegisteredAt.IsZero())
}

func TestGetVehicleNotFound(t *testing.T) {
	b, _ := newTestBackend(t)
	_, err := b.GetVehicle("ZZ999")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateVehicle(t *testing.T) {
	b, _ := newTestBackend(t)
	require.NoError(t, b.AddVehicle(testVehicle("B1234XYZ")))

	color := "red"
	year := 2022
	require.NoError(t, b.UpdateVehicle("B1234XYZ", types.VehiclePatch{Color: &color, Year: &year}))

	got, err := b.GetVehicle("B1234XYZ")
	require.NoError(t, err)
	assert.Equal(t, "red", got.Color)
	assert.Equal(t, 2022, got.Year)
	assert.Equal(t, "Honda", got.Brand, "unpatched fields keep their values")
}

func TestUpdateVehicleNotFound(t *testing.T) {
	b, _ := newTestBackend(t)
	color := "red"
	err := b.UpdateVehicle("ZZ999", types.VehiclePatch{Color: &color})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateVehicleRejectsInvalidPatch(t *testing.T) {
	b, _ := newTestBackend(t)
	require.NoError(t, b.AddVehicle(testVehicle("B1234XYZ")))

	year := 1950
	assert.ErrorIs(t, b.UpdateVehicle("B1234XYZ", types.VehiclePatch{Year: &year}), types.ErrYearOutOfRange)

	got, err := b.GetVehicle("B1234XYZ")
	require.NoError(t, err)
	assert.Equal(t, 2020, got.Year, "rejected patch must not persist")
}

func TestDeleteVehicleCascades(t *testing.T) {
	b, dir := newTestBackend(t)

	require.NoError(t, b.AddVehicle(testVehicle("B1234XYZ")))
	require.NoError(t, b.AddVehicle(testVehicle("B5678ABC")))
	for _, date := range []string{"2025-01-10", "2025-02-10"} {
		_, err := b.AddService(testService("B1234XYZ", date, 50000))
		require.NoError(t, err)
	}
	_, err := b.AddService(testService("B5678ABC", "2025-03-10", 75000))
	require.NoError(t, err)

	// Pre-create the QR image so the cascade has something to remove.
	imagePath, err := qr.Encode(qr.Dir(dir), "B1234XYZ")
	require.NoError(t, err)

	require.NoError(t, b.DeleteVehicle("B1234XYZ"))

	_, err = b.GetVehicle("B1234XYZ")
	assert.ErrorIs(t, err, types.ErrNotFound)

	services, err := b.Services()
	require.NoError(t, err)
	require.Len(t, services, 1, "only the other vehicle's service survives")
	assert.Equal(t, "B5678ABC", services[0].Plate)

	orphans, err := b.VehicleServices("B1234XYZ")
	require.NoError(t, err)
	assert.Empty(t, orphans, "no orphaned service events may persist")

	_, err = os.Stat(imagePath)
	assert.True(t, os.IsNotExist(err), "qr image must be removed")
}

func TestDeleteVehicleMissingImageIsFine(t *testing.T) {
	b, _ := newTestBackend(t)
	require.NoError(t, b.AddVehicle(testVehicle("B1234XYZ")))
	assert.NoError(t, b.DeleteVehicle("B1234XYZ"))
}

func TestDeleteVehicleNotFound(t *testing.T) {
	b, _ := newTestBackend(t)
	assert.ErrorIs(t, b.DeleteVehicle("ZZ999"), types.ErrNotFound)
}

func TestSearchVehicles(t *testing.T) {
	b, _ := newTestBackend(t)

	honda := testVehicle("B1234XYZ")
	toyota := testVehicle("B5678ABC")
	toyota.Brand = "Toyota"
	toyota.Model = "Avanza"
	toyota.Category = types.CategoryCar
	require.NoError(t, b.AddVehicle(honda))
	require.NoError(t, b.AddVehicle(toyota))

	t.Run("empty term returns all", func(t *testing.T) {
		got, err := b.SearchVehicles("")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("case-insensitive brand match", func(t *testing.T) {
		got, err := b.SearchVehicles("HONDA")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "B1234XYZ", got[0].Plate)
	})

	t.Run("plate substring match", func(t *testing.T) {
		got, err := b.SearchVehicles("5678")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "B5678ABC", got[0].Plate)
	})

	t.Run("model match", func(t *testing.T) {
		got, err := b.SearchVehicles("avanza")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Toyota", got[0].Brand)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := b.SearchVehicles("suzuki")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
