package roulette

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/settings"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

func TestSectorAt(t *testing.T) {
	tests := []struct {
		angle float64
		want  int
	}{
		{0, 6},
		{270, 0},
		{269.9, 0},
		{225.1, 0},
		{225, 1},
		{90, 4},
		{-90, 0},
		{630, 0},
	}
	for _, tt := range tests {
		if got := SectorAt(tt.angle); got != tt.want {
			t.Errorf("SectorAt(%v) = %d, expected %d", tt.angle, got, tt.want)
		}
	}
}

func TestEffectPoints(t *testing.T) {
	r := rules.For(rules.Hard).Roulette
	tests := []struct {
		e    Effect
		want int
	}{
		{SmallLoss, -50},
		{BigLoss, -80},
		{SmallGain, 60},
		{BigGain, 100},
	}
	for _, tt := range tests {
		if got := tt.e.Points(r); got != tt.want {
			t.Errorf("Points(%d) = %d, expected %d", tt.e, got, tt.want)
		}
	}
}

func TestRouletteSpin(t *testing.T) {
	env := session.NewEnv(session.Env{Settings: settings.NewMemory(), Rand: rand.New(rand.NewSource(4))})
	g := New()
	if err := g.Enter(env); err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}
	frame := func(events ...core.Event) session.Frame {
		return session.Frame{Elapsed: 16 * time.Millisecond, Input: core.Batch(events), Width: 80, Height: 24}
	}

	g.Update(env, frame())
	if g.phase != idle {
		t.Fatal("the wheel waits for a click")
	}
	g.Update(env, frame(core.Pointer(5, 5)))
	if g.phase != spinning || g.speed < MinSpeed || g.speed > MaxSpeed {
		t.Fatalf("phase=%d speed=%v", g.phase, g.speed)
	}

	for i := 0; i < 5000 && g.phase != result; i++ {
		g.Update(env, frame())
	}
	if g.phase != result {
		t.Fatal("wheel never settled")
	}
	want := Sectors[SectorAt(g.angle)].Effect.Points(rules.For(rules.Normal).Roulette)
	if g.delta != want || env.Ledger.Total() != want {
		t.Errorf("delta=%d ledger=%d, expected %d", g.delta, env.Ledger.Total(), want)
	}

	tr := g.Update(env, frame(core.Key(core.ActionConfirm)))
	if d, ok := tr.Child().(*ui.Dialog); !ok || d.Title != "End of the bonus round" {
		t.Fatalf("expected the closing dialog, got %+v", tr)
	}
	if tr := g.Resume(env, session.Result{}); !tr.IsExit() || tr.Result().Score != want {
		t.Errorf("finish = %+v", tr.Result())
	}
}

func TestRouletteNotInFreePlay(t *testing.T) {
	for _, info := range registry.FreePlay() {
		if info.ID == ID {
			t.Error("roulette must not be offered in free play")
		}
	}
	if !registry.Exists(ID) {
		t.Error("roulette not registered")
	}
}
