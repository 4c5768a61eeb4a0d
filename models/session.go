package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session status constants
const (
	StatusActive     = "active"
	StatusCompleted  = "completed"
	StatusTerminated = "terminated"
)

// DefaultTerminationReason is used when a terminate request carries no reason.
const DefaultTerminationReason = "user_terminated"

type ScreenSize struct {
	Width  int `bson:"width" json:"width"`
	Height int `bson:"height" json:"height"`
}

// SessionMetadata is the client environment snapshot captured when a
// participant starts the study.
type SessionMetadata struct {
	UserAgent  string     `bson:"userAgent" json:"userAgent"`
	ScreenSize ScreenSize `bson:"screenSize" json:"screenSize"`
	Language   string     `bson:"language" json:"language"`
	Platform   string     `bson:"platform" json:"platform"`
	Timestamp  string     `bson:"timestamp" json:"timestamp"`
}

// CompletionData is the timing snapshot stored when a session completes.
type CompletionData struct {
	StartTime      string    `bson:"startTime" json:"startTime"`
	CompletionTime string    `bson:"completionTime" json:"completionTime"`
	TotalDuration  int       `bson:"totalDuration" json:"totalDuration"`
	CompletedAt    time.Time `bson:"completedAt" json:"completedAt"`
}

// Session is one participant's run through the study. Status starts at
// "active" and moves exactly once to "completed" or "terminated".
type Session struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProlificID        string             `bson:"prolificId" json:"prolificId"`
	StartTime         string             `bson:"startTime" json:"startTime"`
	Metadata          SessionMetadata    `bson:"metadata" json:"metadata"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	GameCompleted     bool               `bson:"gameCompleted,omitempty" json:"gameCompleted,omitempty"`
	GameCompletedAt   *time.Time         `bson:"gameCompletedAt,omitempty" json:"gameCompletedAt,omitempty"`
	Score             *int               `bson:"score,omitempty" json:"score,omitempty"`
	CompletionData    *CompletionData    `bson:"completionData,omitempty" json:"completionData,omitempty"`
	TerminationReason string             `bson:"terminationReason,omitempty" json:"terminationReason,omitempty"`
	TerminatedAt      *time.Time         `bson:"terminatedAt,omitempty" json:"terminatedAt,omitempty"`
}
