package models

import "time"

// Request types

type SessionInitRequest struct {
	ProlificID string          `json:"prolificId"`
	StartTime  string          `json:"startTime"`
	Metadata   SessionMetadata `json:"metadata"`
}

type LogActionRequest struct {
	SessionID  string                 `json:"sessionId"`
	ProlificID string                 `json:"prolificId"`
	Timestamp  string                 `json:"timestamp"`
	GamePhase  string                 `json:"gamePhase"`
	Action     map[string]interface{} `json:"action"`
}

type GameResultRequest struct {
	SessionID  string   `json:"sessionId"`
	ProlificID string   `json:"prolificId"`
	GameData   GameData `json:"gameData"`
}

// SessionTimings is the client-reported timing summary sent with a
// session-complete request.
type SessionTimings struct {
	StartTime      string `json:"startTime"`
	CompletionTime string `json:"completionTime"`
	TotalDuration  int    `json:"totalDuration"`
}

type SessionCompleteRequest struct {
	SessionID   string         `json:"sessionId"`
	ProlificID  string         `json:"prolificId"`
	SessionData SessionTimings `json:"sessionData"`
}

type SessionTerminateRequest struct {
	SessionID string `json:"sessionId"`
	Reason    string `json:"reason"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// Response types

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionInitResponse struct {
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type InsertedResponse struct {
	Status   string `json:"status"`
	ID       string `json:"id"`
	Replayed bool   `json:"replayed,omitempty"`
}

type ResetCountsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type SessionListResponse struct {
	Sessions []Session `json:"sessions"`
	Count    int       `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
