package helpers

import (
	"sync"
	"time"

	"vehicle-auction/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the cross-field request rules on gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterStructValidation(createVehicleStructLevel, CreateVehicleRequest{})
		v.RegisterStructValidation(listVehiclesStructLevel, ListVehiclesRequest{})
	})
}

// createVehicleStructLevel enforces the per-type attribute rules:
// doors for sedans and hatchbacks, seats for SUVs, load capacity for trucks.
func createVehicleStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateVehicleRequest)

	if req.Year > time.Now().Year() {
		sl.ReportError(req.Year, "year", "Year", "notfuture", "")
	}

	requireFor(sl, req.DoorNumber != nil, req.Type == models.Sedan || req.Type == models.Hatchback, req.DoorNumber, "door_number", "DoorNumber")
	requireFor(sl, req.SeatNumber != nil, req.Type == models.SUV, req.SeatNumber, "seat_number", "SeatNumber")
	requireFor(sl, req.LoadCapacity != nil, req.Type == models.Truck, req.LoadCapacity, "load_capacity", "LoadCapacity")
}

func requireFor(sl validator.StructLevel, present, wanted bool, field any, name, structName string) {
	switch {
	case wanted && !present:
		sl.ReportError(field, name, structName, "required_for_type", "")
	case !wanted && present:
		sl.ReportError(field, name, structName, "excluded_for_type", "")
	}
}

func listVehiclesStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(ListVehiclesRequest)
	if req.Year > time.Now().Year() {
		sl.ReportError(req.Year, "year", "Year", "notfuture", "")
	}
}
