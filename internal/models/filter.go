package models

// VehicleFilter selects vehicles. Zero-valued fields match anything.
type VehicleFilter struct {
	ID           int64
	Type         VehicleType
	Manufacturer string
	Model        string
	Year         int
}

// Matches reports whether v satisfies every set field of f
func (f VehicleFilter) Matches(v Vehicle) bool {
	if f.ID != 0 && v.ID != f.ID {
		return false
	}
	if f.Type != "" && v.Type != f.Type {
		return false
	}
	if f.Manufacturer != "" && v.Manufacturer != f.Manufacturer {
		return false
	}
	if f.Model != "" && v.Model != f.Model {
		return false
	}
	if f.Year != 0 && v.Year != f.Year {
		return false
	}
	return true
}

// AuctionFilter selects auctions. A nil Active matches both states.
type AuctionFilter struct {
	VehicleID int64
	Active    *bool
}

// ActiveAuctionFor selects the active auction of a vehicle
func ActiveAuctionFor(vehicleID int64) AuctionFilter {
	active := true
	return AuctionFilter{VehicleID: vehicleID, Active: &active}
}

func (f AuctionFilter) Matches(a Auction) bool {
	if f.VehicleID != 0 && a.VehicleID != f.VehicleID {
		return false
	}
	if f.Active != nil && a.IsActive != *f.Active {
		return false
	}
	return true
}

type BidFilter struct {
	VehicleID int64
}

func (f BidFilter) Matches(b Bid) bool {
	return f.VehicleID == 0 || b.VehicleID == f.VehicleID
}
