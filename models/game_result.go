package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameData is the final per-round scoring detail reported by the client.
// CoinPlacements entries are nil for board positions that got no coin.
type GameData struct {
	TheoryID          string   `bson:"theoryId" json:"theoryId"`
	StartTime         string   `bson:"startTime" json:"startTime"`
	EndTime           string   `bson:"endTime" json:"endTime"`
	OriginalPositions []string `bson:"originalPositions" json:"originalPositions"`
	FinalPositions    []string `bson:"finalPositions" json:"finalPositions"`
	CoinPlacements    []*int   `bson:"coinPlacements" json:"coinPlacements"`
	SelfReported      []int    `bson:"selfReported" json:"selfReported"`
	ActualCorrect     []int    `bson:"actualCorrect" json:"actualCorrect"`
	HonestReporting   bool     `bson:"honestReporting" json:"honestReporting"`
	Score             int      `bson:"score" json:"score"`
}

// GameResult is the append-only record of one scored game round. Immutable
// once written; the referenced session keeps a denormalized score copy.
type GameResult struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID  string             `bson:"sessionId" json:"sessionId"`
	ProlificID string             `bson:"prolificId" json:"prolificId"`
	GameData   GameData           `bson:"gameData" json:"gameData"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}
