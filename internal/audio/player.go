// Package audio provides the music and sound-effect collaborator used by
// sessions. Every failure (missing file, undecodable data, no output device)
// is absorbed: a missing sound never interrupts the game loop.
package audio

import (
	"fmt"
	"time"
)

// Player is what sessions call to make noise.
type Player interface {
	// PlayMusic switches the looping music track immediately.
	PlayMusic(key string)
	// FadeToMusic crossfades to a new looping track over d.
	FadeToMusic(key string, d time.Duration)
	// PlaySFX plays a one-shot effect.
	PlaySFX(key string)
	// SetMusicVolume sets the music volume in [0, 1].
	SetMusicVolume(v float64)
	// SetSFXVolume sets the effects volume in [0, 1].
	SetSFXVolume(v float64)
}

// Silent discards everything. Used for SSH sessions and headless runs.
type Silent struct{}

func (Silent) PlayMusic(string) {}
func (Silent) FadeToMusic(string, time.Duration) {}
func (Silent) PlaySFX(string) {}
func (Silent) SetMusicVolume(float64) {}
func (Silent) SetSFXVolume(float64) {}

// Trace records calls instead of playing them.
type Trace struct {
	Calls []string
}

func (t *Trace) PlayMusic(key string) {
	t.Calls = append(t.Calls, "music:"+key)
}

func (t *Trace) FadeToMusic(key string, d time.Duration) {
	t.Calls = append(t.Calls, fmt.Sprintf("fade:%s:%s", key, d))
}

func (t *Trace) PlaySFX(key string) {
	t.Calls = append(t.Calls, "sfx:"+key)
}

func (t *Trace) SetMusicVolume(v float64) {
	t.Calls = append(t.Calls, fmt.Sprintf("music-volume:%.2f", v))
}

func (t *Trace) SetSFXVolume(v float64) {
	t.Calls = append(t.Calls, fmt.Sprintf("sfx-volume:%.2f", v))
}

// Count returns how many recorded calls equal call.
func (t *Trace) Count(call string) int {
	n := 0
	for _, c := range t.Calls {
		if c == call {
			n++
		}
	}
	return n
}
