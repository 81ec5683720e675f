// Command snapshot evaluates the current tender against the current order
// books exactly once and exits. Useful for poking at a live session without
// committing to the polling loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tenderbot-go/internal/advisor"
	"tenderbot-go/internal/config"
	"tenderbot-go/internal/engine"
	"tenderbot-go/internal/market"
	"tenderbot-go/internal/session"
	"tenderbot-go/internal/util"
)

const defaultConfigPath = "internal/config/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the YAML configuration")
	flag.Parse()

	_ = godotenv.Load()

	log := util.NewLogger("warn")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	client := session.NewClient(cfg.Session.BaseURL, os.Getenv(cfg.Session.APIKeyEnv),
		session.WithLogger(log),
		session.WithRateLimit(cfg.Session.RatePerSec, cfg.Session.Burst),
	)

	universe := market.NewUniverse(instruments(cfg))
	eng := engine.New(universe, engine.WithLiquidityBuffer(cfg.Evaluation.LiquidityBuffer))
	adv := advisor.New(client, eng, universe, log,
		advisor.WithTickWindow(cfg.Session.OpenTick, cfg.Session.CloseTick),
		advisor.WithCaptionMarker(cfg.Evaluation.CaptionMarker),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := adv.Cycle(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot evaluation failed: %v\n", err)
		os.Exit(1)
	}
}

func instruments(cfg *config.Config) []market.Instrument {
	out := make([]market.Instrument, 0, len(cfg.Instruments))
	for _, inst := range cfg.Instruments {
		out = append(out, market.Instrument{
			Base:       inst.Base,
			DualListed: inst.DualListed,
			Spillover:  inst.Spillover,
		})
	}
	return out
}
