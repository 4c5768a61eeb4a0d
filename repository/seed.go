package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/svdpmukherjee/memory-game-backend/models"
)

// Seed initializes an empty database with the bundled study content. Both
// inserts are gated on an existence check, so restarting the process against
// an already seeded database is a no-op.
func Seed(ctx context.Context, store Store, theories []models.Theory, gameConfig models.GameConfig) error {
	count, err := store.CountTheories(ctx)
	if err != nil {
		return fmt.Errorf("failed to check theories collection: %w", err)
	}
	if count == 0 {
		if err := store.InsertTheories(ctx, theories); err != nil {
			return err
		}
		logrus.WithField("count", len(theories)).Info("theories initialized in database")
	}

	if _, err := store.GameConfig(ctx); err == ErrNotFound {
		if err := store.InsertGameConfig(ctx, gameConfig); err != nil {
			return err
		}
		logrus.Info("game config initialized in database")
	} else if err != nil {
		return fmt.Errorf("failed to check game config: %w", err)
	}

	return nil
}
