package ui

import (
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/stats"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

// Screen is what the window currently shows.
type Screen int

const (
	MainMenu Screen = iota
	Rules
	Playing
	GameOver
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.UP,
	rl.KeyRight: types.RIGHT,
	rl.KeyDown:  types.DOWN,
	rl.KeyLeft:  types.LEFT,
}

// App drives menus, the game session and the game-over dialog from the
// raylib frame loop.
type App struct {
	cfg      config.Config
	game     *game.Game
	clock    *game.Clock
	stats    *stats.GameStats
	music    *Music
	renderer *Renderer
	screen   Screen
	quit     bool

	playButton    *Button
	rulesButton   *Button
	backButton    *Button
	musicButton   *Button
	restartButton *Button
	exitButton    *Button
}

// NewApp needs an open window.
func NewApp(cfg config.Config, st *stats.GameStats) (*App, error) {
	g, err := game.New(cfg.GameOptions())
	if err != nil {
		return nil, err
	}
	a := &App{
		cfg:      cfg,
		game:     g,
		clock:    game.NewClock(cfg.TickInterval),
		stats:    st,
		music:    NewMusic(cfg.MusicFile, cfg.MusicVolume),
		renderer: NewRenderer(cfg.CellSize, cfg.Padding),
		screen:   MainMenu,
	}
	a.layout()
	return a, nil
}

func (a *App) layout() {
	sw := rl.GetScreenWidth()
	sh := float32(rl.GetScreenHeight())

	a.playButton = centered("Play", sw, sh/2-60, 200, 50, 24)
	a.rulesButton = centered("Rules", sw, sh/2+10, 200, 50, 24)
	a.backButton = centered("Back to menu", sw, sh-120, 240, 50, 24)
	a.musicButton = NewButton(a.music.Label(), float32(sw)-150, 5, 130, 30, 18)
	a.musicButton.Disabled = !a.music.Available()
	a.restartButton = NewButton("Restart", float32(sw)/2-150, sh/2+20, 140, 45, 22)
	a.exitButton = NewButton("Exit", float32(sw)/2+10, sh/2+20, 140, 45, 22)
}

// Run loops until the player exits or closes the window.
func (a *App) Run() {
	defer a.music.Close()

	for !a.quit && !rl.WindowShouldClose() {
		a.music.Update()
		a.update(time.Now())
		a.renderer.Draw(a)
	}
}

func (a *App) update(now time.Time) {
	switch a.screen {
	case MainMenu:
		if a.playButton.Clicked() || rl.IsKeyPressed(rl.KeyEnter) {
			a.startGame(now)
		} else if a.rulesButton.Clicked() || rl.IsKeyPressed(rl.KeyR) {
			a.screen = Rules
		}
	case Rules:
		if a.backButton.Clicked() || rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyEnter) {
			a.screen = MainMenu
		}
	case Playing:
		a.handleGameInput()
		// Input is drained before the clock is consulted so every direction
		// request of this frame is settled before the tick.
		if a.clock.Due(now) {
			if res := a.game.Tick(); res.Status == game.Over {
				a.finishGame()
			}
		}
	case GameOver:
		if a.restartButton.Clicked() || rl.IsKeyPressed(rl.KeyEnter) {
			a.resolve(game.OutcomeRestart, now)
		} else if a.exitButton.Clicked() || rl.IsKeyPressed(rl.KeyEscape) {
			a.resolve(game.OutcomeExit, now)
		}
	}
}

func (a *App) handleGameInput() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := keyDirections[key]; ok {
			a.game.SetDirection(d)
			continue
		}
		if key == rl.KeyM {
			a.toggleMusic()
		}
	}
	if a.musicButton.Clicked() {
		a.toggleMusic()
	}
}

func (a *App) toggleMusic() {
	a.music.Toggle()
	a.musicButton.Label = a.music.Label()
}

func (a *App) startGame(now time.Time) {
	a.clock.Stop()
	a.game.Reset()
	a.clock.Start(now)
	a.screen = Playing
	log.Info().Str("session", a.game.ID()).Msg("game started")
}

func (a *App) finishGame() {
	a.clock.Stop()
	a.screen = GameOver

	rec := stats.GameRecord{
		SessionID: a.game.ID(),
		StartTime: a.game.StartTime(),
		EndTime:   a.game.EndTime(),
		Score:     a.game.Score(),
		Cause:     a.game.Collision().String(),
	}
	a.stats.AddGame(rec)
	if err := a.stats.SaveToFile(); err != nil {
		log.Error().Err(err).Msg("failed to save stats")
	}

	log.Info().
		Str("session", rec.SessionID).
		Int("score", rec.Score).
		Str("cause", rec.Cause).
		Dur("duration", rec.Duration()).
		Msg("game over")
}

func (a *App) resolve(o game.Outcome, now time.Time) {
	if !a.game.Resolve(o) {
		log.Info().Int("games", a.stats.GamesPlayed()).Msg("player left")
		a.quit = true
		return
	}
	a.clock.Start(now)
	a.screen = Playing
	log.Info().Str("session", a.game.ID()).Msg("game restarted")
}
