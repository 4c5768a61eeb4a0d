package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/svdpmukherjee/memory-game-backend/models"
)

//go:embed seed.yaml
var seedFile []byte

// SeedData is the bundled study content used to initialize an empty
// database: the theory pool and the default game configuration. The game
// config also serves as the fallback when the singleton document is missing.
type SeedData struct {
	Theories   []models.Theory   `yaml:"theories"`
	GameConfig models.GameConfig `yaml:"game_config"`
}

// LoadSeed parses the embedded seed file.
func LoadSeed() (*SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(seedFile, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if len(seed.Theories) == 0 {
		return nil, fmt.Errorf("seed file contains no theories")
	}
	seen := make(map[string]bool, len(seed.Theories))
	for _, th := range seed.Theories {
		if th.ID == "" || th.Content == "" {
			return nil, fmt.Errorf("seed theory with empty id or content")
		}
		if seen[th.ID] {
			return nil, fmt.Errorf("duplicate seed theory id %q", th.ID)
		}
		seen[th.ID] = true
	}
	if len(seed.GameConfig.Icons) == 0 || len(seed.GameConfig.Coins) == 0 {
		return nil, fmt.Errorf("seed game config is incomplete")
	}
	return &seed, nil
}
