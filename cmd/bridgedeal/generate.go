package main

import (
	"os"

	"github.com/coder/quartz"

	"github.com/lox/bridgedeal/config"
	"github.com/lox/bridgedeal/dealset"
	"github.com/lox/bridgedeal/observer"
	"github.com/lox/bridgedeal/render"
)

// GenerateCmd generates a board set from a hand profile and a board-set
// setup file, writing the configured TXT/LIN outputs. With --debug it also
// logs a final per-seat viability summary to stderr.
type GenerateCmd struct {
	ConfigPath string `arg:"" name:"config" help:"Path to the board-set HCL config file" type:"path"`
	Debug      bool   `help:"Enable debug logging"`
	Structured bool   `help:"Emit structured (JSON) logs instead of console logs"`
}

func (g *GenerateCmd) Run() error {
	logger := setupLogger(g.Debug)
	if g.Structured {
		logger = setupStructuredLogger(g.Debug)
	}
	status := setupStatusLogger(g.Debug)

	cfg, err := config.LoadBoardSetConfig(g.ConfigPath)
	if err != nil {
		status.Error("failed to load board-set config", "path", g.ConfigPath, "error", err)
		return err
	}

	p, err := config.LoadHandProfile(cfg.ProfilePath)
	if err != nil {
		status.Error("failed to load hand profile", "path", cfg.ProfilePath, "error", err)
		return err
	}

	status.Info("generating board set", "profile", p.ProfileName, "boards", cfg.Boards)
	logger.Info().
		Str("profile", p.ProfileName).
		Int("boards", cfg.Boards).
		Int64("seed", cfg.Seed).
		Msg("generating board set")

	set, err := dealset.GenerateDeals(p, cfg.Boards, cfg.Rotate, cfg.Seed, quartz.NewReal(), observer.NoopObserver{})
	if err != nil {
		status.Error("board set generation failed", "error", err)
		return err
	}

	status.Info("board set generated", "boards", len(set.Deals), "reseeds", set.ReseedCount)
	logger.Info().
		Int("reseeds", set.ReseedCount).
		Msg("board set generated")
	for seat, summary := range set.Viability {
		logger.Debug().
			Str("seat", seat.String()).
			Float64("success_rate", summary.SuccessRate).
			Str("viability", summary.Viability).
			Msg("seat viability")
	}

	if cfg.OutputTxtPath != "" {
		f, err := os.Create(cfg.OutputTxtPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := render.WriteTXT(f, set.Deals); err != nil {
			return err
		}
	}

	if cfg.OutputLinPath != "" {
		f, err := os.Create(cfg.OutputLinPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := render.WriteLIN(f, set.Deals); err != nil {
			return err
		}
	}

	return nil
}
