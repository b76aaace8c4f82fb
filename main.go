package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"snake-arcade/config"
	"snake-arcade/stats"
	"snake-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(os.Args[1:], ".env")
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}

	log.Debug().
		Int("width", cfg.GridWidth).
		Int("height", cfg.GridHeight).
		Dur("tick", cfg.TickInterval).
		Str("stats", cfg.StatsFile).
		Msg("configuration loaded")

	st, err := stats.NewGameStats(cfg.StatsFile)
	if err != nil {
		log.Warn().Err(err).Bool("saving", st.Persistent()).Msg("starting with empty stats")
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	// Esc belongs to the menus, not to the window.
	rl.SetExitKey(0)

	app, err := ui.NewApp(cfg, st)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start game")
	}
	app.Run()

	log.Info().
		Int("games", st.GamesPlayed()).
		Int("best", st.BestScore()).
		Float64("average", st.AverageScore()).
		Msg("bye")
}
