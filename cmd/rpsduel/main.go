// Package main provides the interactive duel binary: a terminal read loop
// around the match engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"rpsduel/internal/cli"
	"rpsduel/internal/config"
	"rpsduel/internal/game/match"
	"rpsduel/internal/game/rng"
	"rpsduel/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	} else {
		cfg = config.Default()
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	policy := &match.HeuristicPolicy{
		Aggression: cfg.Opponent.Aggression,
		Src:        rng.NewCryptoSource(),
	}
	m, err := match.NewMatch(match.Params{
		MaxRounds: cfg.Match.MaxRounds,
		Policy:    policy,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal("creating match", zap.Error(err))
	}
	logger.Info("match started",
		zap.String("match_id", m.ID()),
		zap.Int("max_rounds", m.MaxRounds()),
	)

	renderer := cli.NewRenderer(os.Stdout)
	renderer.Rules(m.MaxRounds())

	scanner := bufio.NewScanner(os.Stdin)
	for !m.Finished() {
		renderer.Prompt()
		if !scanner.Scan() {
			// EOF: abandoning at a completed-round boundary is always safe.
			fmt.Fprintln(os.Stdout)
			logger.Info("match abandoned",
				zap.String("match_id", m.ID()),
				zap.Int("rounds", m.Rounds()),
			)
			return
		}
		res := m.PlayTurn(scanner.Text())
		if res.Status == match.TurnInvalid {
			renderer.Invalid(res.Reason)
			continue
		}
		renderer.Round(res, m.MaxRounds())
	}

	renderer.Final(m.CurrentScore(), m.Winner())
}
