package models

// Statistics is the snapshot returned by GET /api/statistics. Each field is
// computed by its own query, so the snapshot is not guaranteed internally
// consistent under concurrent writes. AverageScore covers sessions with
// gameCompleted=true only and is 0 when CompletedGames is 0.
type Statistics struct {
	TotalParticipants  int64         `json:"total_participants"`
	CompletedSessions  int64         `json:"completed_sessions"`
	ActiveSessions     int64         `json:"active_sessions"`
	TerminatedSessions int64         `json:"terminated_sessions"`
	TheoryDistribution []TheoryCount `json:"theory_distribution"`
	CompletedGames     int64         `json:"completed_games"`
	AverageScore       float64       `json:"average_score"`
}
