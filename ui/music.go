package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

// Music streams the background track. Without a playable file every method
// is a no-op and Available reports false.
type Music struct {
	stream rl.Music
	loaded bool
	on     bool
}

func NewMusic(path string, volume float32) *Music {
	m := &Music{}
	if path == "" {
		return m
	}
	if _, err := os.Stat(path); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("background music disabled")
		return m
	}

	rl.InitAudioDevice()
	m.stream = rl.LoadMusicStream(path)
	rl.SetMusicVolume(m.stream, volume)
	rl.PlayMusicStream(m.stream)
	m.loaded = true
	m.on = true
	log.Debug().Str("file", path).Float32("volume", volume).Msg("background music started")
	return m
}

func (m *Music) Available() bool {
	return m.loaded
}

func (m *Music) On() bool {
	return m.on
}

// Update refills the stream buffers; call once per frame.
func (m *Music) Update() {
	if m.loaded && m.on {
		rl.UpdateMusicStream(m.stream)
	}
}

func (m *Music) Toggle() {
	if !m.loaded {
		return
	}
	if m.on {
		rl.PauseMusicStream(m.stream)
	} else {
		rl.ResumeMusicStream(m.stream)
	}
	m.on = !m.on
}

func (m *Music) Label() string {
	switch {
	case !m.loaded:
		return "Music: N/A"
	case m.on:
		return "Music: ON"
	default:
		return "Music: OFF"
	}
}

func (m *Music) Close() {
	if !m.loaded {
		return
	}
	rl.UnloadMusicStream(m.stream)
	rl.CloseAudioDevice()
	m.loaded = false
}
