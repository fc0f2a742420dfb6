package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBoardSetConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadBoardSetConfig(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Boards)
	assert.True(t, cfg.Rotate)
}

func TestLoadBoardSetConfigParsesFields(t *testing.T) {
	os.Clearenv()
	path := filepath.Join(t.TempDir(), "boardset.hcl")
	contents := `
seed = 42
boards = 10
rotate = false
profile_name = "profile-e"
profile_path = "profiles/profile-e.hcl"
output_txt_path = "out/deal.txt"
output_lin_path = "out/deal.lin"
owner = "alice"
timestamp = "2026-01-01T00:00:00Z"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadBoardSetConfig(path)
	require.NoError(t, err)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, 10, cfg.Boards)
	assert.False(t, cfg.Rotate)
	assert.Equal(t, "profile-e", cfg.ProfileName)
	assert.Equal(t, "out/deal.txt", cfg.OutputTxtPath)
}

func TestLoadBoardSetConfigSeedEnvOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv(EnvSeed, "777")
	path := filepath.Join(t.TempDir(), "boardset.hcl")
	contents := `
seed = 1
profile_name = "loose"
profile_path = "profiles/loose.hcl"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadBoardSetConfig(path)
	require.NoError(t, err)
	assert.EqualValues(t, 777, cfg.Seed, "%s override should win over the file's seed", EnvSeed)
}

func TestLoadBoardSetConfigMissingProfileNameErrors(t *testing.T) {
	os.Clearenv()
	path := filepath.Join(t.TempDir(), "boardset.hcl")
	contents := `profile_path = "profiles/loose.hcl"`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, err := LoadBoardSetConfig(path)
	assert.Error(t, err, "profile_name is required")
}
