package auction

import (
	"vehicle-auction/internal/repository"
)

// AuctionService holds the business rules for vehicle registration, the
// auction lifecycle and bid acceptance. It keeps no state of its own; every
// operation reads fresh data from the stores.
type AuctionService struct {
	vehicles repository.VehicleCatalog
	auctions repository.AuctionStore
	bids     repository.BidStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(vehicles repository.VehicleCatalog, auctions repository.AuctionStore, bids repository.BidStore) *AuctionService {
	return &AuctionService{
		vehicles: vehicles,
		auctions: auctions,
		bids:     bids,
	}
}
