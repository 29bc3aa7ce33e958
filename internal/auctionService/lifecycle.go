package auction

import (
	"context"
	"fmt"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/internal/models"
)

// StartAuction opens a new active auction for a registered vehicle
func (s *AuctionService) StartAuction(ctx context.Context, vehicleID int64) (int64, error) {
	if vehicleID <= 0 {
		return 0, auctionerrors.ErrVehicleNotFound
	}

	exists, err := s.vehicles.ExistsVehicle(ctx, models.VehicleFilter{ID: vehicleID})
	if err != nil {
		return 0, fmt.Errorf("service: failed to check vehicle %d: %w", vehicleID, err)
	}
	if !exists {
		return 0, auctionerrors.ErrVehicleNotFound
	}

	started, err := s.auctions.ExistsAuction(ctx, models.ActiveAuctionFor(vehicleID))
	if err != nil {
		return 0, fmt.Errorf("service: failed to check auctions for vehicle %d: %w", vehicleID, err)
	}
	if started {
		return 0, auctionerrors.ErrAuctionAlreadyStarted
	}

	auction, err := s.auctions.CreateAuction(ctx, models.Auction{VehicleID: vehicleID, IsActive: true})
	if err != nil {
		return 0, fmt.Errorf("service: failed to start auction for vehicle %d: %w", vehicleID, err)
	}

	return auction.ID, nil
}

// CloseAuction deactivates the vehicle's active auction and discards its bids.
// The auction stays closed if the bid cleanup fails afterwards.
func (s *AuctionService) CloseAuction(ctx context.Context, vehicleID int64) (int64, error) {
	if vehicleID <= 0 {
		return 0, auctionerrors.ErrActiveAuctionNotFound
	}

	auction, err := s.auctions.FindAuction(ctx, models.ActiveAuctionFor(vehicleID))
	if err != nil {
		return 0, fmt.Errorf("service: failed to find active auction for vehicle %d: %w", vehicleID, err)
	}
	if auction == nil {
		return 0, auctionerrors.ErrActiveAuctionNotFound
	}

	closed := *auction
	closed.IsActive = false
	if _, err := s.auctions.UpdateAuction(ctx, closed); err != nil {
		return 0, fmt.Errorf("service: failed to close auction %d: %w", auction.ID, err)
	}

	bids, err := s.bids.FindBids(ctx, models.BidFilter{VehicleID: vehicleID})
	if err != nil {
		return 0, fmt.Errorf("service: failed to load bids for closed auction %d: %w", auction.ID, err)
	}
	if len(bids) > 0 {
		if err := s.bids.DeleteBids(ctx, bids); err != nil {
			return 0, fmt.Errorf("service: failed to delete bids for closed auction %d: %w", auction.ID, err)
		}
	}

	return auction.ID, nil
}
