package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/svdpmukherjee/memory-game-backend/models"
)

// Collection names. The field layout inside each collection is the wire
// contract and must round-trip exactly.
const (
	collTheories    = "theories"
	collGameConfig  = "game_config"
	collSessions    = "sessions"
	collActions     = "actions"
	collGameResults = "game_results"
)

// MongoStore implements Store against a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// NextTheory picks the theory with the lowest shown_count (ties broken by
// lowest theory id) and increments its counter. The returned document is the
// pre-increment snapshot without the internal _id. Selection and increment
// are a single atomic findAndModify, so two concurrent callers never advance
// the same counter twice for one returned document.
func (s *MongoStore) NextTheory(ctx context.Context) (*models.Theory, error) {
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "shown_count", Value: 1}, {Key: "id", Value: 1}}).
		SetProjection(bson.M{"_id": 0}).
		SetReturnDocument(options.Before)

	var theory models.Theory
	err := s.db.Collection(collTheories).FindOneAndUpdate(
		ctx,
		bson.M{},
		bson.M{"$inc": bson.M{"shown_count": 1}},
		opts,
	).Decode(&theory)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch next theory: %w", err)
	}
	return &theory, nil
}

func (s *MongoStore) ResetTheoryCounts(ctx context.Context) (int64, error) {
	result, err := s.db.Collection(collTheories).UpdateMany(
		ctx,
		bson.M{},
		bson.M{"$set": bson.M{"shown_count": 0}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reset theory counts: %w", err)
	}
	return result.ModifiedCount, nil
}

func (s *MongoStore) TheoryDistribution(ctx context.Context) ([]models.TheoryCount, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "id": 1, "shown_count": 1}).
		SetSort(bson.D{{Key: "id", Value: 1}})

	cursor, err := s.db.Collection(collTheories).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch theory distribution: %w", err)
	}
	defer cursor.Close(ctx)

	distribution := []models.TheoryCount{}
	if err := cursor.All(ctx, &distribution); err != nil {
		return nil, fmt.Errorf("failed to decode theory distribution: %w", err)
	}
	return distribution, nil
}

func (s *MongoStore) CountTheories(ctx context.Context) (int64, error) {
	count, err := s.db.Collection(collTheories).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count theories: %w", err)
	}
	return count, nil
}

func (s *MongoStore) InsertTheories(ctx context.Context, theories []models.Theory) error {
	docs := make([]interface{}, len(theories))
	for i, th := range theories {
		docs[i] = th
	}
	if _, err := s.db.Collection(collTheories).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert theories: %w", err)
	}
	return nil
}

func (s *MongoStore) GameConfig(ctx context.Context) (*models.GameConfig, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var cfg models.GameConfig
	err := s.db.Collection(collGameConfig).FindOne(ctx, bson.M{}, opts).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game config: %w", err)
	}
	return &cfg, nil
}

func (s *MongoStore) InsertGameConfig(ctx context.Context, cfg models.GameConfig) error {
	if _, err := s.db.Collection(collGameConfig).InsertOne(ctx, cfg); err != nil {
		return fmt.Errorf("failed to insert game config: %w", err)
	}
	return nil
}

func (s *MongoStore) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	result, err := s.db.Collection(collSessions).InsertOne(ctx, session)
	if err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var session models.Session
	err = s.db.Collection(collSessions).FindOne(ctx, bson.M{"_id": oid}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return &session, nil
}

func (s *MongoStore) ListSessions(ctx context.Context, status string, limit int64) ([]models.Session, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.db.Collection(collSessions).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// CompleteSession moves an active session to completed. The status filter
// makes the transition conditional: once a session is terminal no second
// lifecycle call can move it again.
func (s *MongoStore) CompleteSession(ctx context.Context, id string, data models.CompletionData) error {
	update := bson.M{"$set": bson.M{
		"status":         models.StatusCompleted,
		"completionData": data,
	}}
	return s.transitionSession(ctx, id, update)
}

func (s *MongoStore) TerminateSession(ctx context.Context, id, reason string, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":            models.StatusTerminated,
		"terminationReason": reason,
		"terminatedAt":      at,
	}}
	return s.transitionSession(ctx, id, update)
}

func (s *MongoStore) transitionSession(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.db.Collection(collSessions).UpdateOne(
		ctx,
		bson.M{"_id": oid, "status": models.StatusActive},
		update,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing session from one already finalized.
		err := s.db.Collection(collSessions).FindOne(ctx, bson.M{"_id": oid}).Err()
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check session state: %w", err)
		}
		return ErrInvalidState
	}
	return nil
}

// MarkGameCompleted flags the session's game as finished and denormalizes
// the final score onto it. Unlike the lifecycle transitions this is not
// filtered on status: the game typically finishes while the session is still
// active, before the final complete-session call arrives.
func (s *MongoStore) MarkGameCompleted(ctx context.Context, id string, score int, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.db.Collection(collSessions).UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"gameCompleted":   true,
			"gameCompletedAt": at,
			"score":           score,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark game completed: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CountSessions(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	count, err := s.db.Collection(collSessions).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

func (s *MongoStore) InsertAction(ctx context.Context, action *models.GameAction) (string, error) {
	result, err := s.db.Collection(collActions).InsertOne(ctx, action)
	if err != nil {
		return "", fmt.Errorf("failed to insert action: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoStore) InsertResult(ctx context.Context, gameResult *models.GameResult) (string, error) {
	result, err := s.db.Collection(collGameResults).InsertOne(ctx, gameResult)
	if err != nil {
		return "", fmt.Errorf("failed to insert game result: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoStore) CompletedGameStats(ctx context.Context) (int64, float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"gameCompleted": true}},
		{"$group": bson.M{
			"_id":       nil,
			"avg_score": bson.M{"$avg": "$score"},
			"count":     bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.db.Collection(collSessions).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate scores: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		AvgScore float64 `bson:"avg_score"`
		Count    int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode score aggregate: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Count, results[0].AvgScore, nil
}
