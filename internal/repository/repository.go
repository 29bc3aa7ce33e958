package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"vehicle-auction/internal/auctionerrors"
	model "vehicle-auction/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// VehicleCatalog defines the vehicle inventory storage
type VehicleCatalog interface {
	ExistsVehicle(ctx context.Context, filter model.VehicleFilter) (bool, error)
	FindVehicle(ctx context.Context, filter model.VehicleFilter) (*model.Vehicle, error)
	FindVehicles(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, error)
}

// AuctionStore defines the auction storage. CreateAuction must reject a second
// active auction for the same vehicle with auctionerrors.ErrAuctionAlreadyStarted.
type AuctionStore interface {
	ExistsAuction(ctx context.Context, filter model.AuctionFilter) (bool, error)
	FindAuction(ctx context.Context, filter model.AuctionFilter) (*model.Auction, error)
	CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error)
	UpdateAuction(ctx context.Context, auction model.Auction) (model.Auction, error)
}

// BidStore defines the bid storage
type BidStore interface {
	FindBids(ctx context.Context, filter model.BidFilter) ([]model.Bid, error)
	MaxBidValue(ctx context.Context, vehicleID int64) (*float64, error)
	CreateBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	DeleteBids(ctx context.Context, bids []model.Bid) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of all three stores
type MemoryRepo struct {
	mu            sync.RWMutex
	vehicles      map[int64]model.Vehicle // key: vehicleID
	auctions      map[int64]model.Auction // key: auctionID
	bids          map[int64]model.Bid     // key: bidID
	nextAuctionID int64
	nextBidID     int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		vehicles: make(map[int64]model.Vehicle),
		auctions: make(map[int64]model.Auction),
		bids:     make(map[int64]model.Bid),
	}
}

// ExistsVehicle reports whether any vehicle matches the filter
func (r *MemoryRepo) ExistsVehicle(_ context.Context, filter model.VehicleFilter) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if filter.ID != 0 {
		v, ok := r.vehicles[filter.ID]
		return ok && filter.Matches(v), nil
	}
	for _, v := range r.vehicles {
		if filter.Matches(v) {
			return true, nil
		}
	}
	return false, nil
}

// FindVehicle returns the first vehicle matching the filter, or nil
func (r *MemoryRepo) FindVehicle(ctx context.Context, filter model.VehicleFilter) (*model.Vehicle, error) {
	vehicles, err := r.FindVehicles(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, nil
	}
	return &vehicles[0], nil
}

// FindVehicles returns all vehicles matching the filter ordered by ID
func (r *MemoryRepo) FindVehicles(_ context.Context, filter model.VehicleFilter) ([]model.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicles := make([]model.Vehicle, 0)
	for _, v := range r.vehicles {
		if filter.Matches(v) {
			vehicles = append(vehicles, v)
		}
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}

// CreateVehicle stores a vehicle under its caller-supplied ID
func (r *MemoryRepo) CreateVehicle(_ context.Context, vehicle model.Vehicle) (model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[vehicle.ID]; ok {
		return model.Vehicle{}, fmt.Errorf("create vehicle %d: %w", vehicle.ID, auctionerrors.ErrVehicleExists)
	}
	r.vehicles[vehicle.ID] = vehicle
	return vehicle, nil
}

// ExistsAuction reports whether any auction matches the filter
func (r *MemoryRepo) ExistsAuction(_ context.Context, filter model.AuctionFilter) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.auctions {
		if filter.Matches(a) {
			return true, nil
		}
	}
	return false, nil
}

// FindAuction returns the single auction matching the filter, or nil.
// More than one match is reported as ErrMultipleActiveAuctions.
func (r *MemoryRepo) FindAuction(_ context.Context, filter model.AuctionFilter) (*model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *model.Auction
	for _, a := range r.auctions {
		if !filter.Matches(a) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("find auction for vehicle %d: %w", filter.VehicleID, auctionerrors.ErrMultipleActiveAuctions)
		}
		a := a
		found = &a
	}
	return found, nil
}

// CreateAuction assigns an ID and stores the auction. Only one active auction
// per vehicle is accepted.
func (r *MemoryRepo) CreateAuction(_ context.Context, auction model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.IsActive {
		for _, a := range r.auctions {
			if a.VehicleID == auction.VehicleID && a.IsActive {
				return model.Auction{}, fmt.Errorf("create auction for vehicle %d: %w", auction.VehicleID, auctionerrors.ErrAuctionAlreadyStarted)
			}
		}
	}

	r.nextAuctionID++
	auction.ID = r.nextAuctionID
	r.auctions[auction.ID] = auction
	return auction, nil
}

// UpdateAuction replaces a stored auction. A closed auction stays closed.
func (r *MemoryRepo) UpdateAuction(_ context.Context, auction model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.auctions[auction.ID]
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %d: %w", auction.ID, auctionerrors.ErrAuctionMissing)
	}
	if !stored.IsActive && auction.IsActive {
		return model.Auction{}, fmt.Errorf("update auction %d: %w", auction.ID, auctionerrors.ErrAuctionReactivation)
	}
	r.auctions[auction.ID] = auction
	return auction, nil
}

// FindBids returns all bids matching the filter ordered by ID
func (r *MemoryRepo) FindBids(_ context.Context, filter model.BidFilter) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if filter.Matches(b) {
			bids = append(bids, b)
		}
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].ID < bids[j].ID })
	return bids, nil
}

// MaxBidValue returns the highest bid value for a vehicle, or nil when it has no bids
func (r *MemoryRepo) MaxBidValue(_ context.Context, vehicleID int64) (*float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var highest *float64
	for _, b := range r.bids {
		if b.VehicleID != vehicleID {
			continue
		}
		if highest == nil || b.Value > *highest {
			v := b.Value
			highest = &v
		}
	}
	return highest, nil
}

// CreateBid assigns an ID and stores the bid
func (r *MemoryRepo) CreateBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextBidID++
	bid.ID = r.nextBidID
	r.bids[bid.ID] = bid
	return bid, nil
}

// DeleteBids removes the given bids in one step. Unknown IDs are ignored.
func (r *MemoryRepo) DeleteBids(_ context.Context, bids []model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bids {
		delete(r.bids, b.ID)
	}
	return nil
}

// AddVehicle seeds a vehicle, replacing any existing entry. Intended for tests and demo data.
func (r *MemoryRepo) AddVehicle(vehicle model.Vehicle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[vehicle.ID] = vehicle
}
