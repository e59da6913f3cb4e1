package scenes

import "time"

// CharDelay is the typewriter reveal rate.
const CharDelay = 18 * time.Millisecond

// typewriter reveals text one rune at a time.
type typewriter struct {
	runes []rune
	shown int
	acc   time.Duration
}

func (t *typewriter) reset(text string) {
	t.runes = []rune(text)
	t.shown = 0
	t.acc = 0
}

func (t *typewriter) advance(elapsed time.Duration) {
	if t.done() {
		return
	}
	t.acc += elapsed
	n := int(t.acc / CharDelay)
	t.acc -= time.Duration(n) * CharDelay
	t.shown = min(t.shown+n, len(t.runes))
}

func (t *typewriter) done() bool {
	return t.shown >= len(t.runes)
}

func (t *typewriter) finish() {
	t.shown = len(t.runes)
}

func (t *typewriter) visible() string {
	return string(t.runes[:t.shown])
}
