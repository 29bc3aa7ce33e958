package postgres

import (
	"context"
	"fmt"

	"vehicle-auction/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BidRepository struct {
	pool *pgxpool.Pool
}

func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

func (r *BidRepository) FindBids(ctx context.Context, filter models.BidFilter) ([]models.Bid, error) {
	conds := &conditions{}
	if filter.VehicleID != 0 {
		conds.add("vehicle_id", filter.VehicleID)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, vehicle_id, customer_id, value, created_at FROM bids`+conds.where()+` ORDER BY id`,
		conds.args...)
	if err != nil {
		return nil, fmt.Errorf("find bids: %w", err)
	}
	defer rows.Close()

	bids := make([]models.Bid, 0)
	for rows.Next() {
		var b models.Bid
		if err := rows.Scan(&b.ID, &b.VehicleID, &b.CustomerID, &b.Value, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find bids: %w", err)
	}
	return bids, nil
}

// MaxBidValue returns the highest bid for a vehicle, nil when there are none
func (r *BidRepository) MaxBidValue(ctx context.Context, vehicleID int64) (*float64, error) {
	var highest *float64
	err := r.pool.QueryRow(ctx, `SELECT MAX(value) FROM bids WHERE vehicle_id = $1`, vehicleID).Scan(&highest)
	if err != nil {
		return nil, fmt.Errorf("max bid for vehicle %d: %w", vehicleID, err)
	}
	return highest, nil
}

func (r *BidRepository) CreateBid(ctx context.Context, bid models.Bid) (models.Bid, error) {
	const stmt = `
INSERT INTO bids (vehicle_id, customer_id, value, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

	err := r.pool.QueryRow(ctx, stmt, bid.VehicleID, bid.CustomerID, bid.Value, bid.CreatedAt).Scan(&bid.ID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("create bid for vehicle %d: %w", bid.VehicleID, err)
	}
	return bid, nil
}

// DeleteBids removes the given bids in a single statement
func (r *BidRepository) DeleteBids(ctx context.Context, bids []models.Bid) error {
	if len(bids) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(bids))
	for _, b := range bids {
		ids = append(ids, b.ID)
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM bids WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("delete %d bids: %w", len(ids), err)
	}
	return nil
}
