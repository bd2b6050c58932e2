package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velrin/bestiago/internal/model"
)

// RosterService saves a tamer's whole roster atomically. Either every
// creature lands or none do, so a crash mid-save cannot leave a roster half
// updated.
type RosterService struct {
	pool      *pgxpool.Pool
	creatures *CreatureRepository
}

// NewRosterService creates a roster service.
func NewRosterService(pool *pgxpool.Pool, creatures *CreatureRepository) *RosterService {
	return &RosterService{pool: pool, creatures: creatures}
}

// SaveRoster upserts every creature in a single transaction.
func (s *RosterService) SaveRoster(ctx context.Context, tamerID string, roster []*model.Creature) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for tamer %s: %w", tamerID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "tamerID", tamerID, "error", err)
		}
	}()

	for _, c := range roster {
		if err := s.creatures.SaveTx(ctx, tx, c); err != nil {
			return fmt.Errorf("saving roster for tamer %s: %w", tamerID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction for tamer %s: %w", tamerID, err)
	}

	slog.Info("roster saved",
		"tamerID", tamerID,
		"creatures", len(roster))
	return nil
}

// LoadRoster retrieves a tamer's creatures, oldest first.
func (s *RosterService) LoadRoster(ctx context.Context, tamerID string) ([]*model.Creature, error) {
	return s.creatures.ListByTamer(ctx, tamerID)
}
