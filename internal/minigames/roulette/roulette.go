// Package roulette implements the bonus round: one spin of a risk wheel
// whose eight sectors add or remove points by the difficulty's roulette
// effects. It is played once per campaign and is not offered in free play.
package roulette

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/minigames/round"
	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// ID is the registry key.
const ID = "roulette"

// Wheel physics, in degrees per nominal 60 Hz frame.
const (
	MinSpeed   = 22
	MaxSpeed   = 28
	Friction   = 0.991
	StopSpeed  = 0.1
	Tension    = 1500 * time.Millisecond
	SectorSize = 45.0
	Pointer    = 270.0
)

const nominalFrame = float64(time.Second) / 60

// Effect selects one of the difficulty's roulette values.
type Effect int

const (
	SmallLoss Effect = iota
	BigLoss
	SmallGain
	BigGain
)

// Points returns the effect's value under the given effects table.
func (e Effect) Points(r rules.RouletteEffects) int {
	switch e {
	case SmallLoss:
		return r.SmallLoss
	case BigLoss:
		return r.BigLoss
	case SmallGain:
		return r.SmallGain
	default:
		return r.BigGain
	}
}

// Sector is one slice of the wheel.
type Sector struct {
	Label  string
	Effect Effect
}

// Sectors lists the wheel in clockwise order.
var Sectors = [8]Sector{
	{"Server failure", SmallLoss},
	{"Training", SmallGain},
	{"Ransomware", BigLoss},
	{"Audit", BigGain},
	{"Human error", SmallLoss},
	{"Process automation", SmallGain},
	{"Poor communication", SmallLoss},
	{"New policy", SmallGain},
}

// SectorAt returns the index of the sector under the pointer when the wheel
// is rotated by angle degrees.
func SectorAt(angle float64) int {
	rel := math.Mod(Pointer-angle, 360)
	if rel < 0 {
		rel += 360
	}
	return int(rel/SectorSize) % len(Sectors)
}

func init() {
	registry.Register(registry.Info{
		ID:       ID,
		Title:    "Risk Roulette",
		Blurb:    "Spin the wheel and live with the outcome.",
		Music:    audio.MusicRoulette,
		Order:    4,
		FreePlay: false,
	}, func() session.Session { return New() })
}

type phase int

const (
	idle phase = iota
	spinning
	tension
	result
	closing
)

// Game is one spin of the wheel.
type Game struct {
	round.Base
	phase  phase
	angle  float64
	speed  float64
	wait   time.Duration
	sector int
	delta  int
}

// New creates a roulette session.
func New() *Game {
	return &Game{}
}

// Name implements session.Session.
func (g *Game) Name() string { return ID }

// Enter implements session.Session.
func (g *Game) Enter(env *session.Env) error {
	g.Begin(env)
	g.phase, g.angle, g.speed = idle, env.Rand.Float64()*360, 0
	return nil
}

// Update implements session.Session.
func (g *Game) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return g.Abort()
	}

	switch g.phase {
	case idle:
		if f.Input.Confirmed() {
			g.speed = MinSpeed + env.Rand.Float64()*(MaxSpeed-MinSpeed)
			g.phase = spinning
			env.Audio.PlaySFX(audio.SFXRoulette)
		}
	case spinning:
		frames := float64(f.Elapsed) / nominalFrame
		g.angle = math.Mod(g.angle+g.speed*frames, 360)
		g.speed *= math.Pow(Friction, frames)
		if g.speed < StopSpeed {
			g.speed = 0
			g.phase = tension
			g.wait = Tension
		}
	case tension:
		g.wait -= f.Elapsed
		if g.wait <= 0 {
			g.settle(env)
		}
	case result:
		if f.Input.Confirmed() {
			g.phase = closing
			return session.Call(ui.NewDialog("End of the bonus round", core.ColorTitle,
				fmt.Sprintf("Total score: %d", env.Ledger.Total())))
		}
	}
	return session.Stay()
}

func (g *Game) settle(env *session.Env) {
	g.sector = SectorAt(g.angle)
	g.delta = Sectors[g.sector].Effect.Points(g.Rules.Roulette)
	g.Add(env, g.delta)
	if g.delta >= 0 {
		g.Hits++
		env.Audio.PlaySFX(audio.SFXCorrect)
	} else {
		g.Misses++
		env.Audio.PlaySFX(audio.SFXWrong)
	}
	g.phase = result
}

// Resume implements session.Resumer.
func (g *Game) Resume(*session.Env, session.Result) session.Transition {
	if g.phase == closing {
		return g.Finish()
	}
	return session.Stay()
}

// Draw implements session.Session.
func (g *Game) Draw(scr *core.Screen) {
	ui.HUD(scr, "Risk Roulette", 0, 0, g.Shown())
	body := ui.Body(scr.Width(), scr.Height())
	cx, cy := body.Center()
	rx := float64(body.W) * 0.36
	ry := float64(body.H) * 0.36

	under := SectorAt(g.angle)
	for i, s := range Sectors {
		theta := (g.angle + float64(i)*SectorSize + SectorSize/2) * math.Pi / 180
		x := cx + int(math.Round(rx*math.Cos(theta)))
		y := cy + int(math.Round(ry*math.Sin(theta)))
		color := core.ColorRed
		if s.Effect == SmallGain || s.Effect == BigGain {
			color = core.ColorGreen
		}
		if i == under {
			color = core.ColorFocused
		}
		scr.DrawText(x-len(s.Label)/2, y, s.Label, color)
	}
	scr.Set(cx, body.Y, '▼', core.ColorTitle)

	switch g.phase {
	case idle:
		scr.DrawTextCentered(cy, "Click or press Enter to spin", core.ColorHint)
	case spinning, tension:
		scr.DrawTextCentered(cy, "...", core.ColorHint)
	case result, closing:
		s := Sectors[g.sector]
		color := core.ColorHit
		if g.delta < 0 {
			color = core.ColorMiss
		}
		scr.DrawTextCentered(cy, ui.Upper(s.Label), color)
		scr.DrawTextCentered(cy+1, round.Signed(g.delta), color)
		scr.DrawTextCentered(body.Bottom()-1, ui.DefaultHint, core.ColorHint)
	}
}
