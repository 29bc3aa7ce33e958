package models

import "time"

// VehicleType is the closed set of vehicle categories accepted by the inventory
type VehicleType string

const (
	Sedan     VehicleType = "Sedan"
	Hatchback VehicleType = "Hatchback"
	SUV       VehicleType = "SUV"
	Truck     VehicleType = "Truck"
)

// Valid reports whether t is one of the known vehicle types
func (t VehicleType) Valid() bool {
	switch t {
	case Sedan, Hatchback, SUV, Truck:
		return true
	}
	return false
}

// Vehicle represents an inventory entry. ID is assigned by the caller.
type Vehicle struct {
	ID           int64       `json:"id"`
	Type         VehicleType `json:"type"`
	Manufacturer string      `json:"manufacturer"`
	Model        string      `json:"model"`
	Year         int         `json:"year"`
	StartingBid  float64     `json:"starting_bid"`
	DoorNumber   *int        `json:"door_number,omitempty"`
	SeatNumber   *int        `json:"seat_number,omitempty"`
	LoadCapacity *float64    `json:"load_capacity,omitempty"`
}

// Auction represents one auction instance for a vehicle
type Auction struct {
	ID        int64 `json:"id"`
	VehicleID int64 `json:"vehicle_id"`
	IsActive  bool  `json:"is_active"`
}

// Bid represents a customer's bid on a vehicle
type Bid struct {
	ID         int64     `json:"id"`
	VehicleID  int64     `json:"vehicle_id"`
	CustomerID int64     `json:"customer_id"`
	Value      float64   `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
}
