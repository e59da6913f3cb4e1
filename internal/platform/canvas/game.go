// Package canvas runs a session stack in an ebiten window or a browser
// canvas. The cell grid is drawn with a monospace font, so sessions lay
// out the same way they do in a terminal.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
)

// DefaultFontSize is the glyph size in pixels.
const DefaultFontSize = 18

// Options configures a canvas window.
type Options struct {
	Title    string
	FontSize float64
}

// Game implements ebiten.Game. Each ebiten tick is one loop iteration:
// the input that arrived since the previous tick is handed to Step, and
// returning from Update is the yield point.
type Game struct {
	stack  *session.Stack
	env    *session.Env
	cells  *core.Screen
	clock  *session.Clock
	input  poller
	face   *text.GoTextFace
	cellW  int
	cellH  int
	cols   int
	rows   int
	fullOn bool
	done   bool
}

// New creates a game driving root. cfg.ScreenW and cfg.ScreenH give the
// initial grid until the first layout.
func New(env *session.Env, root session.Session, cfg core.RuntimeConfig, opts Options) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("canvas: load font: %w", err)
	}
	size := opts.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	face := &text.GoTextFace{Source: src, Size: size}
	m := face.Metrics()

	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = 80, 24
	}
	g := &Game{
		stack: session.NewStack(env, root),
		env:   env,
		cells: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		clock: session.NewClock(cfg.TickRate, false),
		face:  face,
		cellW: max(int(math.Ceil(text.Advance("M", face))), 1),
		cellH: max(int(math.Ceil(m.HAscent+m.HDescent+m.HLineGap)), 1),
		cols:  cfg.ScreenW,
		rows:  cfg.ScreenH,
	}
	return g, nil
}

// CellSize returns the pixel size of one cell.
func (g *Game) CellSize() (w, h int) {
	return g.cellW, g.cellH
}

// Result returns how the stack ended.
func (g *Game) Result() session.Result {
	return g.stack.Result()
}

// Update runs one iteration of the stack.
func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	if want := g.env.Settings.Fullscreen(); want != g.fullOn {
		setFullscreen(want)
		g.fullOn = want
	}

	f := session.Frame{
		Elapsed: g.clock.Tick(),
		Input:   g.input.poll(g.cellW, g.cellH),
		Width:   g.cols,
		Height:  g.rows,
	}
	if g.stack.Step(f) {
		g.done = true
		return ebiten.Termination
	}
	return nil
}

// Draw paints the cell grid. Runs of same-colored cells on a row are
// drawn as one string.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.done {
		return
	}
	g.cells.Resize(g.cols, g.rows)
	g.stack.Draw(g.cells)

	var run strings.Builder
	for y := 0; y < g.cells.Height(); y++ {
		start := 0
		var cur core.Color
		run.Reset()
		flush := func() {
			if s := run.String(); strings.TrimSpace(s) != "" {
				op := &text.DrawOptions{}
				op.GeoM.Translate(float64(start*g.cellW), float64(y*g.cellH))
				op.ColorScale.ScaleWithColor(rgba(cur))
				text.Draw(screen, s, g.face, op)
			}
			run.Reset()
		}
		for x := 0; x < g.cells.Width(); x++ {
			cell := g.cells.GetCell(x, y)
			if x > 0 && cell.Color != cur {
				flush()
				start = x
			}
			cur = cell.Color
			run.WriteRune(cell.Rune)
		}
		flush()
	}
}

// Layout sizes the grid to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cols = max(outsideWidth/g.cellW, 1)
	g.rows = max(outsideHeight/g.cellH, 1)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the stack finishes or the window
// is closed.
func Run(env *session.Env, root session.Session, cfg core.RuntimeConfig, opts Options) (session.Result, error) {
	g, err := New(env, root, cfg, opts)
	if err != nil {
		return session.Result{}, err
	}
	title := opts.Title
	if title == "" {
		title = "Party Pascal"
	}
	tps := cfg.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.cols*g.cellW, g.rows*g.cellH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return g.Result(), fmt.Errorf("canvas: %w", err)
	}
	return g.Result(), nil
}
