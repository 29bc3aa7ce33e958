package postgres

import (
	"context"
	"fmt"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuctionRepository is the Postgres auction store. The partial unique index
// auctions_one_active_per_vehicle guarantees at most one active row per vehicle.
type AuctionRepository struct {
	pool *pgxpool.Pool
}

func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

func (r *AuctionRepository) ExistsAuction(ctx context.Context, filter models.AuctionFilter) (bool, error) {
	conds := auctionConditions(filter)
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM auctions`+conds.where()+`)`, conds.args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("auction exists: %w", err)
	}
	return exists, nil
}

// FindAuction returns the single matching auction or nil. Two or more matches
// are reported as auctionerrors.ErrMultipleActiveAuctions.
func (r *AuctionRepository) FindAuction(ctx context.Context, filter models.AuctionFilter) (*models.Auction, error) {
	conds := auctionConditions(filter)
	rows, err := r.pool.Query(ctx, `SELECT id, vehicle_id, is_active FROM auctions`+conds.where()+` ORDER BY id LIMIT 2`, conds.args...)
	if err != nil {
		return nil, fmt.Errorf("find auction: %w", err)
	}
	defer rows.Close()

	var found []models.Auction
	for rows.Next() {
		var a models.Auction
		if err := rows.Scan(&a.ID, &a.VehicleID, &a.IsActive); err != nil {
			return nil, fmt.Errorf("scan auction: %w", err)
		}
		found = append(found, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find auction: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("find auction for vehicle %d: %w", filter.VehicleID, auctionerrors.ErrMultipleActiveAuctions)
	}
}

func (r *AuctionRepository) CreateAuction(ctx context.Context, auction models.Auction) (models.Auction, error) {
	const stmt = `INSERT INTO auctions (vehicle_id, is_active) VALUES ($1, $2) RETURNING id`

	err := r.pool.QueryRow(ctx, stmt, auction.VehicleID, auction.IsActive).Scan(&auction.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Auction{}, fmt.Errorf("create auction for vehicle %d: %w", auction.VehicleID, auctionerrors.ErrAuctionAlreadyStarted)
		}
		return models.Auction{}, fmt.Errorf("create auction for vehicle %d: %w", auction.VehicleID, err)
	}
	return auction, nil
}

// UpdateAuction persists the active flag. A closed auction is never reopened.
func (r *AuctionRepository) UpdateAuction(ctx context.Context, auction models.Auction) (models.Auction, error) {
	const stmt = `UPDATE auctions SET is_active = $2 WHERE id = $1 AND (is_active OR NOT $2)`

	tag, err := r.pool.Exec(ctx, stmt, auction.ID, auction.IsActive)
	if err != nil {
		return models.Auction{}, fmt.Errorf("update auction %d: %w", auction.ID, err)
	}
	if tag.RowsAffected() == 1 {
		return auction, nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM auctions WHERE id = $1)`, auction.ID).Scan(&exists); err != nil {
		return models.Auction{}, fmt.Errorf("update auction %d: %w", auction.ID, err)
	}
	if exists {
		return models.Auction{}, fmt.Errorf("update auction %d: %w", auction.ID, auctionerrors.ErrAuctionReactivation)
	}
	return models.Auction{}, fmt.Errorf("update auction %d: %w", auction.ID, auctionerrors.ErrAuctionMissing)
}

func auctionConditions(f models.AuctionFilter) *conditions {
	c := &conditions{}
	if f.VehicleID != 0 {
		c.add("vehicle_id", f.VehicleID)
	}
	if f.Active != nil {
		c.add("is_active", *f.Active)
	}
	return c
}
