package helpers

import (
	"time"

	"vehicle-auction/internal/models"
)

// Request DTOs
type CreateVehicleRequest struct {
	ID           int64              `json:"id" binding:"required,gt=0"`
	Type         models.VehicleType `json:"type" binding:"required,oneof=Sedan Hatchback SUV Truck"`
	Manufacturer string             `json:"manufacturer" binding:"required,max=128"`
	Model        string             `json:"model" binding:"required,max=128"`
	Year         int                `json:"year" binding:"required,gt=1850"`
	StartingBid  float64            `json:"starting_bid" binding:"required,gt=0,lt=1000000000"`
	DoorNumber   *int               `json:"door_number" binding:"omitempty,gt=0,lt=10"`
	SeatNumber   *int               `json:"seat_number" binding:"omitempty,gt=0,lt=10"`
	LoadCapacity *float64           `json:"load_capacity" binding:"omitempty,gt=0,lt=1000000"`
}

// ToVehicle maps the request onto the domain model
func (r CreateVehicleRequest) ToVehicle() models.Vehicle {
	return models.Vehicle{
		ID:           r.ID,
		Type:         r.Type,
		Manufacturer: r.Manufacturer,
		Model:        r.Model,
		Year:         r.Year,
		StartingBid:  r.StartingBid,
		DoorNumber:   r.DoorNumber,
		SeatNumber:   r.SeatNumber,
		LoadCapacity: r.LoadCapacity,
	}
}

type ListVehiclesRequest struct {
	Type         models.VehicleType `form:"type" binding:"omitempty,oneof=Sedan Hatchback SUV Truck"`
	Manufacturer string             `form:"manufacturer" binding:"max=128"`
	Model        string             `form:"model" binding:"max=128"`
	Year         int                `form:"year" binding:"omitempty,gt=1850"`
}

// ToFilter maps the query onto a vehicle filter; blank fields match anything
func (r ListVehiclesRequest) ToFilter() models.VehicleFilter {
	return models.VehicleFilter{
		Type:         r.Type,
		Manufacturer: r.Manufacturer,
		Model:        r.Model,
		Year:         r.Year,
	}
}

type AuctionRequest struct {
	VehicleID int64 `json:"vehicle_id" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	VehicleID  int64   `json:"vehicle_id" binding:"required,gt=0"`
	CustomerID int64   `json:"customer_id" binding:"required,gt=0"`
	Value      float64 `json:"value" binding:"required,gt=0"`
}

type VehicleURI struct {
	VehicleID int64 `uri:"vehicle_id" binding:"required,gt=0"`
}

// Response DTOs
type VehicleResponse struct {
	VehicleID int64 `json:"vehicle_id"`
}

type VehicleListResponse struct {
	Items []models.Vehicle `json:"items"`
}

type AuctionResponse struct {
	AuctionID int64 `json:"auction_id"`
	VehicleID int64 `json:"vehicle_id"`
}

type BidResponse struct {
	BidID      int64   `json:"bid_id"`
	VehicleID  int64   `json:"vehicle_id"`
	CustomerID int64   `json:"customer_id"`
	Value      float64 `json:"value"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// NewBidResponse maps a stored bid onto its response shape
func NewBidResponse(bid models.Bid) BidResponse {
	resp := BidResponse{
		BidID:      bid.ID,
		VehicleID:  bid.VehicleID,
		CustomerID: bid.CustomerID,
		Value:      bid.Value,
	}
	if !bid.CreatedAt.IsZero() {
		resp.CreatedAt = bid.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
