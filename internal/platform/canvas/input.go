package canvas

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/party-pascal/internal/core"
)

// Input sources, replaceable in tests.
var (
	justPressedKeys    = inpututil.AppendJustPressedKeys
	mouseJustPressed   = inpututil.IsMouseButtonJustPressed
	cursorPosition     = ebiten.CursorPosition
	justPressedTouches = inpututil.AppendJustPressedTouchIDs
	touchPosition      = ebiten.TouchPosition
	windowClosing      = ebiten.IsWindowBeingClosed
	setFullscreen      = ebiten.SetFullscreen
)

// keyEvent maps a physical key to an input event. Letters and digits
// are answer keys; movement stays on the arrows.
func keyEvent(k ebiten.Key) (core.Event, bool) {
	switch k {
	case ebiten.KeyArrowUp:
		return core.Key(core.ActionUp), true
	case ebiten.KeyArrowDown:
		return core.Key(core.ActionDown), true
	case ebiten.KeyArrowLeft:
		return core.Key(core.ActionLeft), true
	case ebiten.KeyArrowRight:
		return core.Key(core.ActionRight), true
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace:
		return core.Key(core.ActionConfirm), true
	case ebiten.KeyEscape, ebiten.KeyBackspace:
		return core.Key(core.ActionBack), true
	}

	name := k.String()
	name = strings.TrimPrefix(name, "Digit")
	name = strings.TrimPrefix(name, "Numpad")
	if r := []rune(name); len(r) == 1 && (unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])) {
		return core.Choice(unicode.ToLower(r[0])), true
	}
	return core.Event{}, false
}

// poller collects one tick's worth of input. Pixel positions are turned
// into cells using the current cell size.
type poller struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
}

func (p *poller) poll(cellW, cellH int) core.Batch {
	var batch core.Batch
	if windowClosing() {
		batch = append(batch, core.Quit())
	}

	p.keys = justPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if ev, ok := keyEvent(k); ok {
			batch = append(batch, ev)
		}
	}

	if mouseJustPressed(ebiten.MouseButtonLeft) {
		x, y := cursorPosition()
		batch = append(batch, core.Pointer(toCell(x, cellW), toCell(y, cellH)))
	}
	p.touches = justPressedTouches(p.touches[:0])
	for _, id := range p.touches {
		x, y := touchPosition(id)
		batch = append(batch, core.Pointer(toCell(x, cellW), toCell(y, cellH)))
	}
	return batch
}

func toCell(px, size int) int {
	if size <= 0 || px < 0 {
		return 0
	}
	return px / size
}
