package auction

import (
	"context"
	"fmt"
	"time"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/internal/models"
)

// PlaceBid validates and records a customer's bid for a vehicle under auction.
// The active auction is checked before the vehicle itself.
func (s *AuctionService) PlaceBid(ctx context.Context, vehicleID, customerID int64, value float64) (int64, error) {
	// zero is the "any vehicle" filter value, never a real vehicle
	if vehicleID <= 0 {
		return 0, auctionerrors.ErrActiveAuctionNotFound
	}

	active, err := s.auctions.ExistsAuction(ctx, models.ActiveAuctionFor(vehicleID))
	if err != nil {
		return 0, fmt.Errorf("service: failed to check auctions for vehicle %d: %w", vehicleID, err)
	}
	if !active {
		return 0, auctionerrors.ErrActiveAuctionNotFound
	}

	vehicle, err := s.vehicles.FindVehicle(ctx, models.VehicleFilter{ID: vehicleID})
	if err != nil {
		return 0, fmt.Errorf("service: failed to load vehicle %d: %w", vehicleID, err)
	}
	if vehicle == nil {
		return 0, auctionerrors.ErrVehicleNotFound
	}

	floor, err := s.bidFloor(ctx, *vehicle)
	if err != nil {
		return 0, err
	}
	// equal to the floor is accepted
	if value < floor {
		return 0, auctionerrors.ErrBidTooLow
	}

	bid, err := s.bids.CreateBid(ctx, models.Bid{
		VehicleID:  vehicleID,
		CustomerID: customerID,
		Value:      value,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("service: failed to record bid for vehicle %d by customer %d: %w", vehicleID, customerID, err)
	}

	return bid.ID, nil
}

// bidFloor returns the highest positive bid for the vehicle, or its starting bid
func (s *AuctionService) bidFloor(ctx context.Context, vehicle models.Vehicle) (float64, error) {
	highest, err := s.bids.MaxBidValue(ctx, vehicle.ID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to check highest bid for vehicle %d: %w", vehicle.ID, err)
	}
	if highest != nil && *highest > 0 {
		return *highest, nil
	}
	return vehicle.StartingBid, nil
}

// GetBidsForVehicle returns all bids currently recorded for a vehicle
func (s *AuctionService) GetBidsForVehicle(ctx context.Context, vehicleID int64) ([]models.Bid, error) {
	if vehicleID <= 0 {
		return []models.Bid{}, nil
	}

	bids, err := s.bids.FindBids(ctx, models.BidFilter{VehicleID: vehicleID})
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for vehicle %d: %w", vehicleID, err)
	}
	return bids, nil
}
