package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/svdpmukherjee/memory-game-backend/models"
)

// MemoryStore is a mutex-guarded in-memory Store. It backs the handler test
// suites, where spinning up a mongod is not an option; behavior mirrors
// MongoStore, including the deterministic lowest-id tie-break on theory
// selection and the conditional lifecycle transitions.
type MemoryStore struct {
	mu       sync.RWMutex
	theories []models.Theory
	config   *models.GameConfig
	sessions map[string]*models.Session
	actions  []models.GameAction
	results  []models.GameResult
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

func (s *MemoryStore) NextTheory(ctx context.Context) (*models.Theory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.theories) == 0 {
		return nil, ErrNotFound
	}

	min := 0
	for i := 1; i < len(s.theories); i++ {
		if s.theories[i].ShownCount < s.theories[min].ShownCount ||
			(s.theories[i].ShownCount == s.theories[min].ShownCount && s.theories[i].ID < s.theories[min].ID) {
			min = i
		}
	}

	snapshot := s.theories[min]
	s.theories[min].ShownCount++
	return &snapshot, nil
}

func (s *MemoryStore) ResetTheoryCounts(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var modified int64
	for i := range s.theories {
		if s.theories[i].ShownCount != 0 {
			s.theories[i].ShownCount = 0
			modified++
		}
	}
	return modified, nil
}

func (s *MemoryStore) TheoryDistribution(ctx context.Context) ([]models.TheoryCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	distribution := make([]models.TheoryCount, 0, len(s.theories))
	for _, th := range s.theories {
		distribution = append(distribution, models.TheoryCount{ID: th.ID, ShownCount: th.ShownCount})
	}
	sort.Slice(distribution, func(i, j int) bool { return distribution[i].ID < distribution[j].ID })
	return distribution, nil
}

func (s *MemoryStore) CountTheories(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.theories)), nil
}

func (s *MemoryStore) InsertTheories(ctx context.Context, theories []models.Theory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theories = append(s.theories, theories...)
	return nil
}

func (s *MemoryStore) GameConfig(ctx context.Context) (*models.GameConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config == nil {
		return nil, ErrNotFound
	}
	cfg := *s.config
	return &cfg, nil
}

func (s *MemoryStore) InsertGameConfig(ctx context.Context, cfg models.GameConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = &cfg
	return nil
}

func (s *MemoryStore) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *session
	s.sessions[id] = &stored
	return id, nil
}

func (s *MemoryStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *MemoryStore) ListSessions(ctx context.Context, status string, limit int64) ([]models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := []models.Session{}
	for _, session := range s.sessions {
		if status == "" || session.Status == status {
			sessions = append(sessions, *session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt.After(sessions[j].CreatedAt) })
	if limit > 0 && int64(len(sessions)) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (s *MemoryStore) CompleteSession(ctx context.Context, id string, data models.CompletionData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if session.Status != models.StatusActive {
		return ErrInvalidState
	}
	session.Status = models.StatusCompleted
	session.CompletionData = &data
	return nil
}

func (s *MemoryStore) TerminateSession(ctx context.Context, id, reason string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if session.Status != models.StatusActive {
		return ErrInvalidState
	}
	session.Status = models.StatusTerminated
	session.TerminationReason = reason
	session.TerminatedAt = &at
	return nil
}

func (s *MemoryStore) MarkGameCompleted(ctx context.Context, id string, score int, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	session.GameCompleted = true
	session.GameCompletedAt = &at
	session.Score = &score
	return nil
}

func (s *MemoryStore) CountSessions(ctx context.Context, status string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, session := range s.sessions {
		if status == "" || session.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) InsertAction(ctx context.Context, action *models.GameAction) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *action
	stored.ID = primitive.NewObjectID()
	s.actions = append(s.actions, stored)
	return stored.ID.Hex(), nil
}

func (s *MemoryStore) InsertResult(ctx context.Context, result *models.GameResult) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *result
	stored.ID = primitive.NewObjectID()
	s.results = append(s.results, stored)
	return stored.ID.Hex(), nil
}

func (s *MemoryStore) CompletedGameStats(ctx context.Context) (int64, float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	var sum float64
	for _, session := range s.sessions {
		if session.GameCompleted && session.Score != nil {
			count++
			sum += float64(*session.Score)
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, sum / float64(count), nil
}

// Actions returns a copy of all logged actions. Test helper.
func (s *MemoryStore) Actions() []models.GameAction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GameAction(nil), s.actions...)
}

// Results returns a copy of all stored game results. Test helper.
func (s *MemoryStore) Results() []models.GameResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GameResult(nil), s.results...)
}
