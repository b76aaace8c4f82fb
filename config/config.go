package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const envPrefix = "SNAKE_"

// Config holds every tunable of the game. Zero values are never used; start
// from Default.
type Config struct {
	GridWidth        int             `yaml:"grid_width"`
	GridHeight       int             `yaml:"grid_height"`
	TickInterval     time.Duration   `yaml:"tick_interval"`
	InitialBody      []types.Point   `yaml:"-"`
	InitialDirection types.Direction `yaml:"-"`
	Seed             uint64          `yaml:"seed"`

	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	CellSize     int `yaml:"cell_size"`
	Padding      int `yaml:"padding"`

	MusicFile   string  `yaml:"music_file"`
	MusicVolume float32 `yaml:"music_volume"`
	StatsFile   string  `yaml:"stats_file"`
	LogLevel    string  `yaml:"log_level"`
}

// fileConfig is the YAML shape; body and direction use friendlier forms.
type fileConfig struct {
	Config           `yaml:",inline"`
	InitialBody      [][2]int `yaml:"initial_body"`
	InitialDirection string   `yaml:"initial_direction"`
}

func Default() Config {
	opts := game.DefaultOptions()
	return Config{
		GridWidth:        opts.Grid.Width,
		GridHeight:       opts.Grid.Height,
		TickInterval:     game.DefaultTickInterval,
		InitialBody:      opts.InitialBody,
		InitialDirection: opts.InitialDirection,
		WindowWidth:      1280,
		WindowHeight:     720,
		CellSize:         20,
		Padding:          40,
		MusicFile:        "music.mp3",
		MusicVolume:      0.5,
		LogLevel:         "info",
	}
}

// GameOptions converts the config into session parameters.
func (c Config) GameOptions() game.Options {
	body := make([]types.Point, len(c.InitialBody))
	copy(body, c.InitialBody)
	return game.Options{
		Grid:             types.Grid{Width: c.GridWidth, Height: c.GridHeight},
		InitialBody:      body,
		InitialDirection: c.InitialDirection,
		Seed:             c.Seed,
	}
}

// Load builds the config from defaults, an optional YAML file, the
// environment (after loading envFile if present) and finally args.
func Load(args []string, envFile string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML config file")
	speed := fs.Int("speed", 0, "Game speed in milliseconds (lower = faster)")
	seed := fs.Uint64("seed", 0, "Food placement seed (0 = random)")
	stats := fs.String("stats", "", "Path of the JSON stats file (empty keeps stats in memory)")
	music := fs.String("music", "", "Background music file")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *configPath != "" {
		if err := cfg.mergeYAML(*configPath); err != nil {
			return cfg, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := cfg.mergeEnv(os.Getenv); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "speed":
			cfg.TickInterval = time.Duration(*speed) * time.Millisecond
		case "seed":
			cfg.Seed = *seed
		case "stats":
			cfg.StatsFile = *stats
		case "music":
			cfg.MusicFile = *music
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	return cfg, cfg.Validate()
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{Config: *c}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(fc.InitialBody) > 0 {
		body := make([]types.Point, 0, len(fc.InitialBody))
		for _, p := range fc.InitialBody {
			body = append(body, types.Point{X: p[0], Y: p[1]})
		}
		fc.Config.InitialBody = body
	}
	if fc.InitialDirection != "" {
		d, err := types.ParseDirection(fc.InitialDirection)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		fc.Config.InitialDirection = d
	}
	*c = fc.Config
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	for _, v := range []struct {
		key string
		set func(string) error
	}{
		{"GRID_WIDTH", intSetter(&c.GridWidth)},
		{"GRID_HEIGHT", intSetter(&c.GridHeight)},
		{"TICK_INTERVAL", func(s string) (err error) {
			c.TickInterval, err = time.ParseDuration(s)
			return err
		}},
		{"SEED", func(s string) (err error) {
			c.Seed, err = strconv.ParseUint(s, 10, 64)
			return err
		}},
		{"INITIAL_DIRECTION", func(s string) (err error) {
			c.InitialDirection, err = types.ParseDirection(s)
			return err
		}},
		{"MUSIC_FILE", stringSetter(&c.MusicFile)},
		{"STATS_FILE", stringSetter(&c.StatsFile)},
		{"LOG_LEVEL", stringSetter(&c.LogLevel)},
	} {
		s := strings.TrimSpace(getenv(envPrefix + v.key))
		if s == "" {
			continue
		}
		if err := v.set(s); err != nil {
			return fmt.Errorf("%w: %s%s: %v", ErrInvalid, envPrefix, v.key, err)
		}
	}
	return nil
}

func intSetter(dst *int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func stringSetter(dst *string) func(string) error {
	return func(s string) error {
		*dst = s
		return nil
	}
}

// Validate checks that a game can start with this config.
func (c Config) Validate() error {
	if c.GridWidth < 5 || c.GridHeight < 5 {
		return fmt.Errorf("%w: grid %dx%d is smaller than 5x5", ErrInvalid, c.GridWidth, c.GridHeight)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalid)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		return fmt.Errorf("%w: music volume %.2f out of [0,1]", ErrInvalid, c.MusicVolume)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive", ErrInvalid)
	}
	if w := c.Padding + c.GridWidth*c.CellSize; w > c.WindowWidth {
		return fmt.Errorf("%w: playfield is %dpx wide, window only %dpx", ErrInvalid, w, c.WindowWidth)
	}
	if h := c.Padding + c.GridHeight*c.CellSize; h > c.WindowHeight {
		return fmt.Errorf("%w: playfield is %dpx tall, window only %dpx", ErrInvalid, h, c.WindowHeight)
	}
	if err := c.GameOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
