package auction

import (
	"context"
	"fmt"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/internal/models"
)

// RegisterVehicle adds a vehicle to the inventory and returns its ID
func (s *AuctionService) RegisterVehicle(ctx context.Context, vehicle models.Vehicle) (int64, error) {
	if vehicle.ID <= 0 {
		return 0, auctionerrors.ErrInvalidVehicleID
	}

	exists, err := s.vehicles.ExistsVehicle(ctx, models.VehicleFilter{ID: vehicle.ID})
	if err != nil {
		return 0, fmt.Errorf("service: failed to check vehicle %d: %w", vehicle.ID, err)
	}
	if exists {
		return 0, auctionerrors.ErrVehicleExists
	}

	created, err := s.vehicles.CreateVehicle(ctx, vehicle)
	if err != nil {
		return 0, fmt.Errorf("service: failed to create vehicle %d: %w", vehicle.ID, err)
	}

	return created.ID, nil
}

// ListVehicles returns the vehicles matching the filter
func (s *AuctionService) ListVehicles(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error) {
	vehicles, err := s.vehicles.FindVehicles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list vehicles: %w", err)
	}
	return vehicles, nil
}
