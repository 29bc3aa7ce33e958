package cli

import (
	"context"
	"fmt"

	auction "vehicle-auction/internal/auctionService"
	"vehicle-auction/internal/config"
	"vehicle-auction/internal/repository"
	"vehicle-auction/internal/repository/postgres"
	"vehicle-auction/internal/repository/postgres/migrations"
	"vehicle-auction/utils"
)

// backend is a wired service plus whatever must be released on shutdown
type backend struct {
	service *auction.AuctionService
	health  func(ctx context.Context) error
	close   func()
}

func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.MigrateOnStart {
			applied, err := migrations.Apply(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
			utils.Info("migrations applied", map[string]any{"applied": applied})
		}
		return &backend{
			service: auction.NewAuctionService(
				postgres.NewVehicleRepository(pool),
				postgres.NewAuctionRepository(pool),
				postgres.NewBidRepository(pool),
			),
			health: pool.Ping,
			close:  pool.Close,
		}, nil
	default:
		repo := repository.NewMemoryRepo()
		return &backend{
			service: auction.NewAuctionService(repo, repo, repo),
			close:   func() {},
		}, nil
	}
}
