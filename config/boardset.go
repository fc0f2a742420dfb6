package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// BoardSetConfig is the setup record for one generation run: the core
// consumes only Seed; the path/owner/timestamp fields are opaque to
// generation and forwarded to the downstream TXT/LIN renderer.
type BoardSetConfig struct {
	Seed          int64  `hcl:"seed,optional"`
	Boards        int    `hcl:"boards,optional"`
	Rotate        bool   `hcl:"rotate,optional"`
	ProfileName   string `hcl:"profile_name"`
	ProfilePath   string `hcl:"profile_path"`
	OutputTxtPath string `hcl:"output_txt_path,optional"`
	OutputLinPath string `hcl:"output_lin_path,optional"`
	Owner         string `hcl:"owner,optional"`
	Timestamp     string `hcl:"timestamp,optional"`
}

// DefaultBoardSetConfig returns the defaults applied to any field the HCL
// file leaves unset.
func DefaultBoardSetConfig() *BoardSetConfig {
	return &BoardSetConfig{
		Boards: 20,
		Rotate: true,
	}
}

// LoadBoardSetConfig loads a board-set setup record from an HCL file.
// A missing file is not an error: callers get defaults, since a fresh
// profile directory commonly has no board-set file yet.
func LoadBoardSetConfig(filename string) (*BoardSetConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultBoardSetConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	cfg := DefaultBoardSetConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Boards <= 0 {
		cfg.Boards = 20
	}
	if cfg.ProfileName == "" {
		return nil, fmt.Errorf("board-set config %s: profile_name is required", filename)
	}
	if cfg.ProfilePath == "" {
		return nil, fmt.Errorf("board-set config %s: profile_path is required", filename)
	}

	seed, err := ApplySeedOverride(cfg.Seed)
	if err != nil {
		return nil, err
	}
	cfg.Seed = seed

	return cfg, nil
}
