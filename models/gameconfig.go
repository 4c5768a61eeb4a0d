package models

// CoinSpec describes one coin denomination and how many of it a participant
// gets per round.
type CoinSpec struct {
	Value int `bson:"value" json:"value" yaml:"value"`
	Count int `bson:"count" json:"count" yaml:"count"`
}

// GameConfig is the singleton game configuration document. Seeded once at
// first startup and read-only afterwards.
type GameConfig struct {
	Icons []string   `bson:"icons" json:"icons" yaml:"icons"`
	Coins []CoinSpec `bson:"coins" json:"coins" yaml:"coins"`
}
