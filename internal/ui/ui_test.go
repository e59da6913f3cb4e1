package ui

import (
	"testing"
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/session"
)

func TestDialogDismiss(t *testing.T) {
	tests := []struct {
		name  string
		input core.Batch
		exit  bool
	}{
		{"nothing", nil, false},
		{"confirm", core.Batch{core.Key(core.ActionConfirm)}, true},
		{"pointer anywhere", core.Batch{core.Pointer(0, 0)}, true},
		{"back", core.Batch{core.Key(core.ActionBack)}, true},
		{"arrow", core.Batch{core.Key(core.ActionUp)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := &audio.Trace{}
			env := session.NewEnv(session.Env{Audio: trace})
			d := NewDialog("Correct!", core.ColorHit, "Score: 10")
			tr := d.Update(env, session.Frame{Input: tt.input, Width: 80, Height: 24})
			if tr.IsExit() != tt.exit {
				t.Fatalf("exit = %v, expected %v", tr.IsExit(), tt.exit)
			}
			if tt.exit {
				if tr.Result().Nav != session.Continue {
					t.Errorf("Nav = %v, expected continue", tr.Result().Nav)
				}
				if trace.Count("sfx:"+audio.SFXClick) != 1 {
					t.Errorf("click not played: %v", trace.Calls)
				}
			}
		})
	}
}

func TestDialogDraw(t *testing.T) {
	scr := core.NewScreen(80, 24)
	NewDialog("Wrong answer", core.ColorMiss, "Score: -12", "Backups must be tested regularly.").Draw(scr)
	for _, want := range []string{"Wrong answer", "Score: -12", "Backups must be tested", DefaultHint} {
		if !scr.Contains(want) {
			t.Errorf("dialog missing %q:\n%s", want, scr.String())
		}
	}

	// Tiny surfaces must not panic.
	NewDialog("x", core.ColorHit, "a long line that will not fit").Draw(core.NewScreen(5, 3))
}

func TestChoicesPick(t *testing.T) {
	area := core.NewRect(0, 0, 40, 20)
	c := NewChoices([]string{"one", "two", "three", "four"})
	rects := c.Layout(area)
	if len(rects) != 4 {
		t.Fatalf("Layout() = %d rects, expected 4", len(rects))
	}

	tests := []struct {
		name  string
		input core.Batch
		want  int
		ok    bool
	}{
		{"none", nil, 0, false},
		{"letter", core.Batch{core.Choice('c')}, 2, true},
		{"digit", core.Batch{core.Choice('2')}, 1, true},
		{"out of range letter", core.Batch{core.Choice('z')}, 0, false},
		{"pointer on third", core.Batch{core.Pointer(rects[2].X+1, rects[2].Y+1)}, 2, true},
		{"pointer outside", core.Batch{core.Pointer(39, 0)}, 0, false},
		{"down then confirm", core.Batch{core.Key(core.ActionDown), core.Key(core.ActionConfirm)}, 1, true},
		{"up wraps", core.Batch{core.Key(core.ActionUp), core.Key(core.ActionConfirm)}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Focus = 0
			got, ok := c.Pick(tt.input, area)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Pick() = %d, %v; expected %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestChoicesColumnsAndResize(t *testing.T) {
	c := &Choices{Options: []string{"left", "right"}, Columns: 2}
	small := c.Layout(core.NewRect(0, 0, 40, 10))
	large := c.Layout(core.NewRect(0, 0, 100, 30))
	if small[0].Y != small[1].Y || small[0].X >= small[1].X {
		t.Errorf("columns not side by side: %+v", small)
	}
	if large[1].X == small[1].X {
		t.Error("layout should follow the area size")
	}

	scr := core.NewScreen(40, 10)
	c.Draw(scr, scr.Bounds(), map[int]core.Color{1: core.ColorHit})
	if !scr.Contains("A) left") || !scr.Contains("B) right") {
		t.Errorf("choices not drawn:\n%s", scr.String())
	}
}

func TestLabels(t *testing.T) {
	if got := DifficultyLabel(rules.Hard); got != "Hard" {
		t.Errorf("DifficultyLabel(hard) = %q", got)
	}
	if got := Upper("stage 2: grid"); got != "STAGE 2: GRID" {
		t.Errorf("Upper() = %q", got)
	}
}

func TestHUDAndCountdown(t *testing.T) {
	scr := core.NewScreen(60, 10)
	HUD(scr, "Quiz", 1, 5, 42)
	CountdownBar(scr, 3, 2*time.Second, 8*time.Second)
	if !scr.Contains("QUIZ") || !scr.Contains("2/5") || !scr.Contains("Score: 42") {
		t.Errorf("HUD missing fields:\n%s", scr.String())
	}
	if !scr.Contains("2.0s") {
		t.Errorf("countdown label missing:\n%s", scr.String())
	}
}
