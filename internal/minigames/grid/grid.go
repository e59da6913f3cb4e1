// Package grid implements the threat hunt: a 5×5 board hides a number of
// threats. Revealing one scores and names the control that mitigates it,
// probing an empty cell costs points. The game ends when every threat is
// found.
package grid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/content"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/minigames/round"
	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// ID is the registry key.
const ID = "grid"

// Board constants.
const (
	Size      = 5
	HitPoints = 10
	MissCost  = 5
)

func init() {
	registry.Register(registry.Info{
		ID:       ID,
		Title:    "Threat Hunt",
		Blurb:    "Find the threats hidden in the 5x5 grid.",
		Music:    audio.MusicGrid,
		Order:    2,
		FreePlay: true,
	}, func() session.Session { return New() })
}

type cellState uint8

const (
	hidden cellState = iota
	found
	empty
)

// Game is one board.
type Game struct {
	round.Base
	threats   map[int]content.Threat // cell index → threat
	cells     [Size * Size]cellState
	remaining int
	cursor    int
	done      bool
}

// New creates a grid session.
func New() *Game {
	return &Game{}
}

// Name implements session.Session.
func (g *Game) Name() string { return ID }

// ThreatCount returns how many threats the current board hides.
func (g *Game) ThreatCount() int { return len(g.threats) }

// Enter implements session.Session.
func (g *Game) Enter(env *session.Env) error {
	g.Begin(env)
	bank := append([]content.Threat(nil), env.Content.Threats...)
	n := core.Min(core.Min(g.Rules.ThreatCount, Size*Size), len(bank))
	if n == 0 {
		return errors.New("grid: no threats available")
	}
	round.Shuffle(env.Rand, bank)
	cells := env.Rand.Perm(Size * Size)[:n]

	g.threats = make(map[int]content.Threat, n)
	for i, c := range cells {
		g.threats[c] = bank[i]
	}
	g.cells = [Size * Size]cellState{}
	g.remaining = n
	g.cursor = Size * Size / 2
	g.done = false
	return nil
}

// boardRects lays the cells out centered in the play area.
func boardRects(w, h int) []core.Rect {
	body := ui.Body(w, h)
	cw := core.Clamp((body.W-(Size-1))/Size, 3, 9)
	ch := core.Clamp((body.H-2-(Size-1))/Size, 1, 3)
	bw := Size*cw + (Size - 1)
	bh := Size*ch + (Size - 1)
	x0 := body.X + core.Max((body.W-bw)/2, 0)
	y0 := body.Y + 1 + core.Max((body.H-1-bh)/2, 0)

	rects := make([]core.Rect, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			rects[row*Size+col] = core.NewRect(x0+col*(cw+1), y0+row*(ch+1), cw, ch)
		}
	}
	return rects
}

// Update implements session.Session.
func (g *Game) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return g.Abort()
	}

	target := -1
	rects := boardRects(f.Width, f.Height)
	for _, e := range f.Input {
		switch {
		case e.Kind == core.EventPointer:
			for i, r := range rects {
				if r.Contains(e.X, e.Y) {
					g.cursor = i
					target = i
				}
			}
		case e.Kind != core.EventKey:
		case e.Action == core.ActionUp:
			g.cursor = (g.cursor - Size + Size*Size) % (Size * Size)
		case e.Action == core.ActionDown:
			g.cursor = (g.cursor + Size) % (Size * Size)
		case e.Action == core.ActionLeft:
			g.cursor = (g.cursor/Size)*Size + (g.cursor%Size+Size-1)%Size
		case e.Action == core.ActionRight:
			g.cursor = (g.cursor/Size)*Size + (g.cursor%Size+1)%Size
		case e.Action == core.ActionConfirm:
			target = g.cursor
		}
		if target >= 0 {
			break
		}
	}
	if target < 0 || g.cells[target] != hidden {
		return session.Stay()
	}
	return g.probe(env, target)
}

func (g *Game) probe(env *session.Env, cell int) session.Transition {
	threat, ok := g.threats[cell]
	if !ok {
		g.cells[cell] = empty
		g.Misses++
		g.Add(env, -MissCost)
		env.Audio.PlaySFX(audio.SFXWrong)
		return session.Call(ui.NewDialog("Miss!", core.ColorMiss,
			round.Signed(-MissCost), "No risk found here."))
	}

	g.cells[cell] = found
	g.remaining--
	g.Hits++
	g.Add(env, HitPoints)
	env.Audio.PlaySFX(audio.SFXExplosion)
	return session.Call(ui.NewDialog("Risk detected!", core.ColorHit,
		round.Signed(HitPoints),
		"Threat: "+threat.Name,
		"Control: "+threat.Control))
}

// Resume implements session.Resumer.
func (g *Game) Resume(env *session.Env, _ session.Result) session.Transition {
	if g.done {
		return g.Finish()
	}
	if g.remaining > 0 {
		return session.Stay()
	}
	g.done = true
	env.Audio.PlaySFX(audio.SFXCorrect)
	return session.Call(ui.NewDialog("Safe environment!", core.ColorTitle,
		fmt.Sprintf("Total score: %d", env.Ledger.Total())))
}

// Draw implements session.Session.
func (g *Game) Draw(scr *core.Screen) {
	ui.HUD(scr, "Threat Hunt", 0, 0, g.Shown())
	scr.DrawTextCentered(2, fmt.Sprintf("Threats left: %d", g.remaining), core.ColorHint)

	for i, r := range boardRects(scr.Width(), scr.Height()) {
		color, mark := core.ColorFrame, '·'
		switch g.cells[i] {
		case found:
			color, mark = core.ColorHit, '☢'
		case empty:
			color, mark = core.ColorMiss, 'X'
		}
		if i == g.cursor {
			color = core.ColorFocused
		}
		scr.DrawRect(r, '░', color)
		cx, cy := r.Center()
		scr.Set(cx, cy, mark, color)
	}
}
