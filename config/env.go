// Package config provides configuration loading for the deal generator CLI:
// HCL-based board-set configuration plus an environment variable override
// for deterministic testing.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvSeed overrides a board-set's configured seed, the same role
// POKERFORBOTS_SEED played for the bot runner's deterministic test mode.
const EnvSeed = "BRIDGEDEAL_SEED"

// ApplySeedOverride returns seed unchanged unless EnvSeed is set in the
// environment, in which case it parses and returns that value instead.
func ApplySeedOverride(seed int64) (int64, error) {
	s := os.Getenv(EnvSeed)
	if s == "" {
		return seed, nil
	}
	override, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
	}
	return override, nil
}
