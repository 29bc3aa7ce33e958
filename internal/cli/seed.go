package cli

import (
	"context"
	"errors"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/internal/models"
	"vehicle-auction/utils"
)

type vehicleRegistrar interface {
	RegisterVehicle(ctx context.Context, vehicle models.Vehicle) (int64, error)
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// sampleVehicles is demo inventory, one vehicle per type
func sampleVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: 1, Type: models.Sedan, Manufacturer: "Toyota", Model: "Corolla", Year: 2019, StartingBid: 12000, DoorNumber: intPtr(4)},
		{ID: 2, Type: models.Hatchback, Manufacturer: "Volkswagen", Model: "Golf", Year: 2020, StartingBid: 14000, DoorNumber: intPtr(5)},
		{ID: 3, Type: models.SUV, Manufacturer: "Kia", Model: "Sorento", Year: 2021, StartingBid: 26000, SeatNumber: intPtr(7)},
		{ID: 4, Type: models.Truck, Manufacturer: "Volvo", Model: "FH16", Year: 2017, StartingBid: 55000, LoadCapacity: floatPtr(18000)},
	}
}

// seedVehicles registers the sample inventory, skipping vehicles already present
func seedVehicles(ctx context.Context, svc vehicleRegistrar) (int, error) {
	added := 0
	for _, v := range sampleVehicles() {
		if _, err := svc.RegisterVehicle(ctx, v); err != nil {
			if errors.Is(err, auctionerrors.ErrVehicleExists) {
				continue
			}
			return added, err
		}
		added++
	}
	utils.Info("sample inventory seeded", map[string]any{"added": added})
	return added, nil
}
