package main

import (
	"context"
	"errors"
	"flag"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tenderbot-go/internal/advisor"
	"tenderbot-go/internal/config"
	"tenderbot-go/internal/engine"
	"tenderbot-go/internal/market"
	"tenderbot-go/internal/metrics"
	"tenderbot-go/internal/session"
	"tenderbot-go/internal/util"
)

const defaultConfigPath = "internal/config/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the YAML configuration")
	flag.Parse()

	_ = godotenv.Load()

	log := util.NewLogger("info")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.App.LogFile != "" {
		log = util.NewFileLogger(cfg.App.LogLevel, cfg.App.LogFile)
	} else {
		log = util.NewLogger(cfg.App.LogLevel)
	}

	_ = metrics.Serve(cfg.App.MetricsAddr)
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	apiKey := os.Getenv(cfg.Session.APIKeyEnv)
	if apiKey == "" {
		log.Warn().Str("env", cfg.Session.APIKeyEnv).Msg("session API key is empty")
	}

	client := session.NewClient(cfg.Session.BaseURL, apiKey,
		session.WithLogger(log),
		session.WithRateLimit(cfg.Session.RatePerSec, cfg.Session.Burst),
	)

	universe := market.NewUniverse(instruments(cfg))
	eng := engine.New(universe, engine.WithLiquidityBuffer(cfg.Evaluation.LiquidityBuffer))

	adv := advisor.New(client, eng, universe, log,
		advisor.WithPollInterval(time.Duration(cfg.Session.PollInterval)*time.Millisecond),
		advisor.WithTickWindow(cfg.Session.OpenTick, cfg.Session.CloseTick),
		advisor.WithCaptionMarker(cfg.Evaluation.CaptionMarker),
	)

	log.Info().Str("base_url", cfg.Session.BaseURL).Msg("tender advisor started")
	if err := adv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("advisor stopped")
	}
	log.Info().Msg("shutting down")
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
