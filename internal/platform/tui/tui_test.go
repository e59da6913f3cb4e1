package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/score"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/storage"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
		ok   bool
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.Key(core.ActionUp), true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.Key(core.ActionLeft), true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Key(core.ActionConfirm), true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Key(core.ActionConfirm), true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.Key(core.ActionBack), true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Quit(), true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, core.Choice('b'), true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, core.Choice('3'), true},
		{"punctuation", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, core.Event{}, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MapKey(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MapKey() = %+v, %v; expected %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	press := tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if ev, ok := km.MapMouse(press); !ok || ev != core.Pointer(4, 7) {
		t.Errorf("left press = %+v, %v", ev, ok)
	}
	release := press
	release.Action = tea.MouseActionRelease
	if _, ok := km.MapMouse(release); ok {
		t.Error("release should be ignored")
	}
	right := press
	right.Button = tea.MouseButtonRight
	if _, ok := km.MapMouse(right); ok {
		t.Error("right button should be ignored")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.DrawText(0, 0, "HI", core.ColorTitle)
	scr.DrawText(3, 0, "there", core.ColorHint)
	scr.DrawText(0, 1, "x", core.Color(200))

	out := RenderScreen(scr)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, want := range []string{"HI", "there", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestPainterWithoutColorsKeepsLayout(t *testing.T) {
	scr := core.NewScreen(8, 2)
	scr.DrawText(0, 0, "AB", core.ColorHit)
	scr.DrawText(2, 0, "CD", core.ColorMiss)
	scr.DrawText(1, 1, "e", core.ColorFocused)

	out := NewPainter(lipgloss.NewRenderer(io.Discard)).Paint(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.Contains(lines[0], "AB") || !strings.Contains(lines[0], "CD") || !strings.Contains(lines[1], "e") {
		t.Errorf("Paint() = %q", out)
	}
}

// echo records the input batches it sees and quits on Back.
type echo struct {
	frames []session.Frame
}

func (e *echo) Name() string             { return "echo" }
func (e *echo) Enter(*session.Env) error { return nil }
func (e *echo) Update(_ *session.Env, f session.Frame) session.Transition {
	e.frames = append(e.frames, f)
	if f.Input.Has(core.ActionBack) {
		return session.Done(session.Back)
	}
	return session.Stay()
}
func (e *echo) Draw(scr *core.Screen) { scr.DrawText(0, 0, "ECHO", core.ColorWhite) }

func TestModelBatchesInputUntilTick(t *testing.T) {
	root := &echo{}
	var m tea.Model = NewModel(session.NewEnv(session.Env{}), root, Options{TickRate: 30})

	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(root.frames) != 0 {
		t.Fatal("input must wait for the next tick")
	}

	m, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("a running stack should schedule the next tick")
	}
	if len(root.frames) != 1 {
		t.Fatalf("updates = %d, expected 1", len(root.frames))
	}
	f := root.frames[0]
	if len(f.Input) != 2 || f.Width != 40 || f.Height != 10 {
		t.Errorf("frame = %+v", f)
	}
	if !strings.Contains(m.View(), "ECHO") {
		t.Errorf("view missing root output: %q", m.View())
	}

	m, _ = m.Update(TickMsg(time.Now()))
	if len(root.frames[1].Input) != 0 {
		t.Error("input must be delivered once")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(TickMsg(time.Now()))
	if m.View() != "" {
		t.Error("a finished stack should render nothing")
	}
	if res := m.(Model).Result(); res.Nav != session.Back {
		t.Errorf("Result() = %+v", res)
	}
}

func TestModelQuitKey(t *testing.T) {
	var m tea.Model = NewModel(session.NewEnv(session.Env{}), &echo{}, Options{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
	if m.(Model).Result().Nav != session.Quit {
		t.Errorf("Result() = %+v", m.(Model).Result())
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	var m tea.Model = NewModel(session.NewEnv(session.Env{}), &echo{}, Options{ScreenshotDir: dir})
	m, _ = m.Update(TickMsg(time.Now()))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "party_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, %v", files, err)
	}
	data, _ := os.ReadFile(files[0])
	if !strings.Contains(string(data), "ECHO") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestScoreboardPages(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, total := range []int{100, 300} {
		r := score.NewRun(score.ModeCampaign, rules.Hard, total, []score.StageResult{{Game: "quiz", Points: total}})
		r.PlayerID = "ana"
		store.SaveRun(r)
	}

	m := NewScoreboardModel(store, 120, 30)
	if len(m.rows) != 2 || m.rows[0][1] != "390" {
		t.Fatalf("campaign rows = %v", m.rows)
	}
	view := m.View()
	for _, want := range []string{"RUN HISTORY - CAMPAIGN", "ana", "Hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	var next tea.Model = m
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	if sm := next.(ScoreboardModel); sm.view != ViewFreePlay || len(sm.rows) != 0 {
		t.Errorf("free play page = %v, rows %v", sm.view, sm.rows)
	}
	if !strings.Contains(next.View(), "No runs recorded yet") {
		t.Error("empty page should say so")
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sm := next.(ScoreboardModel)
	if sm.view != ViewMinigames || len(sm.rows) != 1 || sm.rows[0][1] != "2" {
		t.Errorf("minigames page = %v, rows %v", sm.view, sm.rows)
	}

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit the scoreboard")
	}
}
