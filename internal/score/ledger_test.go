package score

import (
	"math/rand"
	"testing"
	"time"
)

func TestLedgerTotalIsExactSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := NewLedger()

	for round := 0; round < 20; round++ {
		l.Reset()
		want := 0
		for i := 0; i < 50; i++ {
			d := rng.Intn(61) - 30
			l.Add(d)
			want += d
			l.Tick(time.Duration(rng.Intn(40)) * time.Millisecond)
		}
		if l.Total() != want {
			t.Fatalf("round %d: Total() = %d, expected %d", round, l.Total(), want)
		}
	}
}

func TestLedgerDisplayConvergesWithoutOvershoot(t *testing.T) {
	tests := []struct {
		name    string
		delta   int
		elapsed time.Duration
	}{
		{"gain at 60 Hz", 120, time.Second / 60},
		{"loss at 60 Hz", -75, time.Second / 60},
		{"gain at 30 Hz", 300, time.Second / 30},
		{"huge frame", 50, 2 * time.Second},
		{"zero elapsed", 40, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			l.Add(tc.delta)

			prevGap := abs(tc.delta)
			for i := 0; i < 200 && !l.Settled(); i++ {
				l.Tick(tc.elapsed)
				d := l.Displayed()
				if tc.delta > 0 && d > tc.delta || tc.delta < 0 && d < tc.delta {
					t.Fatalf("overshoot: displayed %d past total %d", d, tc.delta)
				}
				gap := abs(tc.delta - d)
				if gap > prevGap {
					t.Fatalf("display moved away from total: gap %d after %d", gap, prevGap)
				}
				prevGap = gap
			}
			if !l.Settled() || l.Displayed() != l.Total() {
				t.Errorf("display did not converge: %d vs %d", l.Displayed(), l.Total())
			}
		})
	}
}

func TestLedgerFrameRateIndependence(t *testing.T) {
	fast, slow := NewLedger(), NewLedger()
	fast.Add(1000)
	slow.Add(1000)

	for i := 0; i < 4; i++ {
		fast.Tick(time.Second / 120)
	}
	for i := 0; i < 2; i++ {
		slow.Tick(time.Second / 60)
	}

	if diff := abs(fast.Displayed() - slow.Displayed()); diff > 1 {
		t.Errorf("same wall time should give the same display: %d vs %d", fast.Displayed(), slow.Displayed())
	}
}

func TestLedgerResetClearsDisplay(t *testing.T) {
	l := NewLedger()
	l.Add(90)
	for i := 0; i < 100; i++ {
		l.Tick(0)
	}
	l.Reset()
	if l.Total() != 0 || l.Displayed() != 0 {
		t.Errorf("after Reset total=%d displayed=%d", l.Total(), l.Displayed())
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
