package canvas

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/settings"
)

// fakeInput replaces the ebiten input sources for one test.
type fakeInput struct {
	keys    []ebiten.Key
	click   bool
	x, y    int
	closing bool
	full    []bool
}

func (fi *fakeInput) install(t *testing.T) {
	t.Helper()
	oldKeys, oldMouse, oldCursor := justPressedKeys, mouseJustPressed, cursorPosition
	oldTouches, oldClosing, oldFull := justPressedTouches, windowClosing, setFullscreen
	justPressedKeys = func(keys []ebiten.Key) []ebiten.Key {
		keys = append(keys, fi.keys...)
		fi.keys = nil
		return keys
	}
	mouseJustPressed = func(b ebiten.MouseButton) bool {
		pressed := fi.click && b == ebiten.MouseButtonLeft
		fi.click = false
		return pressed
	}
	cursorPosition = func() (int, int) { return fi.x, fi.y }
	justPressedTouches = func(ids []ebiten.TouchID) []ebiten.TouchID { return ids }
	windowClosing = func() bool { return fi.closing }
	setFullscreen = func(on bool) { fi.full = append(fi.full, on) }
	t.Cleanup(func() {
		justPressedKeys, mouseJustPressed, cursorPosition = oldKeys, oldMouse, oldCursor
		justPressedTouches, windowClosing, setFullscreen = oldTouches, oldClosing, oldFull
	})
}

// recorder keeps every batch it is updated with.
type recorder struct {
	batches []core.Batch
	sizes   [][2]int
}

func (r *recorder) Name() string             { return "recorder" }
func (r *recorder) Enter(*session.Env) error { return nil }
func (r *recorder) Draw(s *core.Screen)      { s.DrawText(0, 0, "READY", core.ColorHit) }
func (r *recorder) Update(_ *session.Env, f session.Frame) session.Transition {
	r.batches = append(r.batches, f.Input)
	r.sizes = append(r.sizes, [2]int{f.Width, f.Height})
	if f.Input.Has(core.ActionBack) {
		return session.Done(session.Back)
	}
	return session.Stay()
}

func newTestGame(t *testing.T, env *session.Env) (*Game, *recorder) {
	t.Helper()
	if env == nil {
		env = session.NewEnv(session.Env{})
	}
	rec := &recorder{}
	g, err := New(env, rec, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}, Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, rec
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		action core.Action
		r      rune
		ok     bool
	}{
		{ebiten.KeyArrowUp, core.ActionUp, 0, true},
		{ebiten.KeyArrowDown, core.ActionDown, 0, true},
		{ebiten.KeyArrowLeft, core.ActionLeft, 0, true},
		{ebiten.KeyArrowRight, core.ActionRight, 0, true},
		{ebiten.KeyEnter, core.ActionConfirm, 0, true},
		{ebiten.KeySpace, core.ActionConfirm, 0, true},
		{ebiten.KeyEscape, core.ActionBack, 0, true},
		{ebiten.KeyBackspace, core.ActionBack, 0, true},
		{ebiten.KeyB, core.ActionChoice, 'b', true},
		{ebiten.KeyDigit3, core.ActionChoice, '3', true},
		{ebiten.KeyNumpad7, core.ActionChoice, '7', true},
		{ebiten.KeyShiftLeft, core.ActionNone, 0, false},
		{ebiten.KeyF1, core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			ev, ok := keyEvent(tt.key)
			if ok != tt.ok {
				t.Fatalf("keyEvent(%v) ok = %v, expected %v", tt.key, ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Action != tt.action || ev.Rune != tt.r {
				t.Errorf("keyEvent(%v) = %+v", tt.key, ev)
			}
		})
	}
}

func TestToCell(t *testing.T) {
	tests := []struct{ px, size, want int }{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{-4, 10, 0},
		{25, 0, 0},
	}
	for _, tt := range tests {
		if got := toCell(tt.px, tt.size); got != tt.want {
			t.Errorf("toCell(%d, %d) = %d, expected %d", tt.px, tt.size, got, tt.want)
		}
	}
}

func TestPaletteCoversSemanticColors(t *testing.T) {
	if rgba(core.ColorHit) == rgba(core.ColorMiss) {
		t.Error("hit and miss must be distinguishable")
	}
	if rgba(core.Color(200)) != rgba(core.ColorDefault) {
		t.Error("unknown colors should fall back to the default")
	}
	if rgba(core.ColorDefault) == background {
		t.Error("default text must be visible on the background")
	}
}

func TestUpdateBatchesInputIntoOneStep(t *testing.T) {
	fi := &fakeInput{}
	fi.install(t)
	g, rec := newTestGame(t, nil)
	cw, ch := g.CellSize()

	fi.keys = []ebiten.Key{ebiten.KeyA, ebiten.KeyEnter}
	fi.click, fi.x, fi.y = true, 3*cw+1, 2*ch+1
	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if len(rec.batches) != 1 {
		t.Fatalf("updates = %d, expected 1", len(rec.batches))
	}
	b := rec.batches[0]
	if len(b) != 3 || !b.Confirmed() {
		t.Fatalf("batch = %+v", b)
	}
	if p := b.Pointers(); len(p) != 1 || p[0].X != 3 || p[0].Y != 2 {
		t.Errorf("pointer = %+v, expected cell (3, 2)", p)
	}

	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if len(rec.batches[1]) != 0 {
		t.Errorf("second batch = %+v, expected empty", rec.batches[1])
	}
}

func TestUpdateTerminatesWhenStackFinishes(t *testing.T) {
	fi := &fakeInput{}
	fi.install(t)
	g, _ := newTestGame(t, nil)

	fi.keys = []ebiten.Key{ebiten.KeyEscape}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, expected termination", err)
	}
	if g.Result().Nav != session.Back {
		t.Errorf("Result() = %+v", g.Result())
	}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() after finish = %v", err)
	}
}

func TestWindowCloseQuits(t *testing.T) {
	fi := &fakeInput{closing: true}
	fi.install(t)
	g, rec := newTestGame(t, nil)

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, expected termination", err)
	}
	if g.Result().Nav != session.Quit {
		t.Errorf("Result().Nav = %v, expected quit", g.Result().Nav)
	}
	if len(rec.batches) != 0 {
		t.Errorf("closing window should not reach the session, got %d updates", len(rec.batches))
	}
}

func TestLayoutResizesGrid(t *testing.T) {
	fi := &fakeInput{}
	fi.install(t)
	g, rec := newTestGame(t, nil)
	cw, ch := g.CellSize()

	w, h := g.Layout(50*cw+3, 20*ch)
	if w != 50*cw+3 || h != 20*ch {
		t.Errorf("Layout() = %dx%d", w, h)
	}
	g.Update()
	if got := rec.sizes[0]; got != [2]int{50, 20} {
		t.Errorf("frame size = %v, expected 50x20", got)
	}

	g.Layout(1, 1)
	g.Update()
	if got := rec.sizes[1]; got != [2]int{1, 1} {
		t.Errorf("tiny window frame size = %v, expected 1x1", got)
	}
}

func TestFullscreenFollowsSettings(t *testing.T) {
	fi := &fakeInput{}
	fi.install(t)
	env := session.NewEnv(session.Env{Settings: settings.NewMemory()})
	g, _ := newTestGame(t, env)

	g.Update()
	if len(fi.full) != 0 {
		t.Fatalf("windowed settings toggled fullscreen: %v", fi.full)
	}

	v := env.Settings.Values()
	v.Fullscreen = true
	env.Settings.SetValues(v)
	g.Update()
	g.Update()
	if len(fi.full) != 1 || !fi.full[0] {
		t.Errorf("fullscreen calls = %v, expected one switch on", fi.full)
	}
}
