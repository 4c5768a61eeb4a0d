package repository

import (
	"context"
	"errors"
	"time"

	"github.com/svdpmukherjee/memory-game-backend/models"
)

// ErrNotFound is returned when no document matches the given identifier or
// filter.
var ErrNotFound = errors.New("document not found")

// ErrInvalidState is returned when a lifecycle transition is attempted on a
// session that already reached a terminal status.
var ErrInvalidState = errors.New("session is not active")

// Store is the document-store surface the handlers run against. The mongo
// implementation is used in production; the in-memory one backs the handler
// test suites. The handle is long-lived and safe for concurrent use.
type Store interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	// Theories
	NextTheory(ctx context.Context) (*models.Theory, error)
	ResetTheoryCounts(ctx context.Context) (int64, error)
	TheoryDistribution(ctx context.Context) ([]models.TheoryCount, error)
	CountTheories(ctx context.Context) (int64, error)
	InsertTheories(ctx context.Context, theories []models.Theory) error

	// Game config singleton
	GameConfig(ctx context.Context) (*models.GameConfig, error)
	InsertGameConfig(ctx context.Context, cfg models.GameConfig) error

	// Sessions
	CreateSession(ctx context.Context, session *models.Session) (string, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	ListSessions(ctx context.Context, status string, limit int64) ([]models.Session, error)
	CompleteSession(ctx context.Context, id string, data models.CompletionData) error
	TerminateSession(ctx context.Context, id, reason string, at time.Time) error
	MarkGameCompleted(ctx context.Context, id string, score int, at time.Time) error
	CountSessions(ctx context.Context, status string) (int64, error)

	// Actions and results (append-only)
	InsertAction(ctx context.Context, action *models.GameAction) (string, error)
	InsertResult(ctx context.Context, result *models.GameResult) (string, error)

	// CompletedGameStats returns how many sessions finished the game and
	// their average score. The average is 0 when the count is 0.
	CompletedGameStats(ctx context.Context) (int64, float64, error)
}
