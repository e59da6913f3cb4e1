package stop

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/content"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/settings"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

func newEnv() (*session.Env, *audio.Trace) {
	lib := &content.Library{Banks: map[rules.Difficulty]content.Bank{rules.Normal: {Stop: []content.Prompt{{
		Category: "Frameworks",
		Letter:   "C",
		Hint:     "Control objectives for IT",
		Options:  []string{"COBIT", "ITIL", "ISO", "PMBOK", "SCRUM"},
		Answer:   "COBIT",
	}}}}}
	trace := &audio.Trace{}
	return session.NewEnv(session.Env{Settings: settings.NewMemory(), Content: lib, Audio: trace, Rand: rand.New(rand.NewSource(2))}), trace
}

func frame(d time.Duration, events ...core.Event) session.Frame {
	return session.Frame{Elapsed: d, Input: core.Batch(events), Width: 80, Height: 24}
}

func TestStopLetterDraw(t *testing.T) {
	env, trace := newEnv()
	g := New()
	if err := g.Enter(env); err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}
	if !g.Drawing() {
		t.Fatal("a round starts with the letter draw")
	}

	// Answers are ignored while the letter spins.
	g.Update(env, frame(time.Millisecond, core.Choice('a')))
	if env.Ledger.Total() != 0 {
		t.Error("answer accepted during the letter draw")
	}

	var total time.Duration
	for g.Drawing() && total < 10*time.Second {
		g.Update(env, frame(16*time.Millisecond))
		total += 16 * time.Millisecond
	}
	if g.Drawing() {
		t.Fatal("letter draw never settled")
	}
	if g.shown != 'C' {
		t.Errorf("settled on %q, expected C", g.shown)
	}
	// 12 fast spins plus 8 slowing ones.
	want := 12*SpinStart + 8*SpinStart + SlowDown*(1+2+3+4+5+6+7)
	if total < want-SpinStart || total > want+100*time.Millisecond {
		t.Errorf("draw took %v, expected about %v", total, want)
	}
	if trace.Count("sfx:"+audio.SFXExplosion) != 1 {
		t.Errorf("impact effect played %d times", trace.Count("sfx:"+audio.SFXExplosion))
	}
}

func TestStopMeasuresTime(t *testing.T) {
	env, _ := newEnv()
	g := New()
	if err := g.Enter(env); err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}
	for g.Drawing() {
		g.Update(env, frame(50*time.Millisecond))
	}

	g.Update(env, frame(3*time.Second))
	tr := g.Update(env, frame(250*time.Millisecond, core.Choice(rune('a'+g.correct))))
	d, ok := tr.Child().(*ui.Dialog)
	if !ok || d.Title != "Correct answer!" {
		t.Fatalf("feedback = %+v", tr.Child())
	}
	if !strings.Contains(d.Lines[0], "Time: 3.25s") || !strings.Contains(d.Lines[0], "Total score: 10") {
		t.Errorf("score line = %q", d.Lines[0])
	}
	if !strings.Contains(d.Lines[1], "within the budget") {
		t.Errorf("budget line = %q", d.Lines[1])
	}

	tr = g.Resume(env, session.Result{})
	if d, ok := tr.Child().(*ui.Dialog); !ok || d.Title != "End of the STOP challenge" {
		t.Fatalf("expected the final dialog, got %+v", tr)
	}
	if tr := g.Resume(env, session.Result{}); tr.Result().Score != 10 {
		t.Errorf("finish = %+v", tr.Result())
	}
}
