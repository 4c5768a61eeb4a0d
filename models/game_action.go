package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameAction is one append-only gameplay event. The action payload is
// free-form and varies by game phase (icon drags, coin placements, self
// reports), so it is kept as an opaque map and stored verbatim. The stored
// timestamp is the server receipt time, not the client clock.
type GameAction struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID  string                 `bson:"sessionId" json:"sessionId"`
	ProlificID string                 `bson:"prolificId" json:"prolificId"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	GamePhase  string                 `bson:"gamePhase" json:"gamePhase"`
	Action     map[string]interface{} `bson:"action" json:"action"`
}
