package postgres

import (
	"context"
	"fmt"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vehicleColumns = `id, type, manufacturer, model, year, starting_bid, door_number, seat_number, load_capacity`

// VehicleRepository is the Postgres vehicle catalog
type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

func (r *VehicleRepository) ExistsVehicle(ctx context.Context, filter models.VehicleFilter) (bool, error) {
	conds := vehicleConditions(filter)
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vehicles`+conds.where()+`)`, conds.args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("vehicle exists: %w", err)
	}
	return exists, nil
}

func (r *VehicleRepository) FindVehicle(ctx context.Context, filter models.VehicleFilter) (*models.Vehicle, error) {
	conds := vehicleConditions(filter)
	row := r.pool.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles`+conds.where()+` ORDER BY id LIMIT 1`, conds.args...)

	v, err := scanVehicle(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepository) FindVehicles(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error) {
	conds := vehicleConditions(filter)
	rows, err := r.pool.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles`+conds.where()+` ORDER BY id`, conds.args...)
	if err != nil {
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]models.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	return vehicles, nil
}

// CreateVehicle inserts the vehicle under its caller-supplied ID. A duplicate
// ID surfaces as auctionerrors.ErrVehicleExists.
func (r *VehicleRepository) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	const stmt = `
INSERT INTO vehicles (id, type, manufacturer, model, year, starting_bid, door_number, seat_number, load_capacity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, stmt,
		v.ID,
		string(v.Type),
		v.Manufacturer,
		v.Model,
		v.Year,
		v.StartingBid,
		v.DoorNumber,
		v.SeatNumber,
		v.LoadCapacity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Vehicle{}, fmt.Errorf("create vehicle %d: %w", v.ID, auctionerrors.ErrVehicleExists)
		}
		return models.Vehicle{}, fmt.Errorf("create vehicle %d: %w", v.ID, err)
	}
	return v, nil
}

func vehicleConditions(f models.VehicleFilter) *conditions {
	c := &conditions{}
	if f.ID != 0 {
		c.add("id", f.ID)
	}
	if f.Type != "" {
		c.add("type", string(f.Type))
	}
	if f.Manufacturer != "" {
		c.add("manufacturer", f.Manufacturer)
	}
	if f.Model != "" {
		c.add("model", f.Model)
	}
	if f.Year != 0 {
		c.add("year", f.Year)
	}
	return c
}

func scanVehicle(row pgx.Row) (models.Vehicle, error) {
	var v models.Vehicle
	var vehicleType string
	err := row.Scan(
		&v.ID,
		&vehicleType,
		&v.Manufacturer,
		&v.Model,
		&v.Year,
		&v.StartingBid,
		&v.DoorNumber,
		&v.SeatNumber,
		&v.LoadCapacity,
	)
	v.Type = models.VehicleType(vehicleType)
	return v, err
}
