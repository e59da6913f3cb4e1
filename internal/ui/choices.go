package ui

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/party-pascal/internal/core"
)

// Choices is a list of answer buttons. Layout is derived from the area the
// caller passes in, so Pick and Draw agree as long as both are given the
// area computed from the current frame size.
type Choices struct {
	Options []string
	// Columns lays the buttons out side by side when greater than one.
	Columns int
	// Height of each button; defaults to 3 (one text row inside a box).
	// Rows lower than 3 are drawn without a frame.
	Height int
	Focus  int
}

// NewChoices creates a vertical option list.
func NewChoices(options []string) *Choices {
	return &Choices{Options: options}
}

// Letter returns the key label for option i ("A", "B", ...).
func Letter(i int) string {
	return string(rune('A' + i))
}

// Layout returns one rect per option inside area.
func (c *Choices) Layout(area core.Rect) []core.Rect {
	n := len(c.Options)
	h := c.Height
	if h <= 0 {
		h = 3
	}
	if c.Columns <= 1 {
		gap := 1
		if n*(h+gap) > area.H {
			gap = 0
		}
		return area.Rows(n, h, gap)
	}

	cols := c.Columns
	rowsNeeded := (n + cols - 1) / cols
	rects := make([]core.Rect, 0, n)
	for r, row := range area.Rows(rowsNeeded, h, 1) {
		for col, cell := range row.Columns(cols, 2) {
			if r*cols+col < n {
				rects = append(rects, cell)
			}
		}
	}
	return rects
}

// Pick processes one input batch and returns the chosen option, if any.
// Arrow keys move the focus, confirm picks the focused option, a letter
// (A, B, ...) or digit (1, 2, ...) picks directly and a pointer-down picks
// the button under it.
func (c *Choices) Pick(in core.Batch, area core.Rect) (int, bool) {
	n := len(c.Options)
	if n == 0 {
		return 0, false
	}
	rects := c.Layout(area)
	for _, e := range in {
		switch e.Kind {
		case core.EventPointer:
			for i, r := range rects {
				if r.Contains(e.X, e.Y) {
					c.Focus = i
					return i, true
				}
			}
		case core.EventKey:
			switch e.Action {
			case core.ActionUp, core.ActionLeft:
				c.Focus = (c.Focus - 1 + n) % n
			case core.ActionDown, core.ActionRight:
				c.Focus = (c.Focus + 1) % n
			case core.ActionConfirm:
				return c.Focus, true
			case core.ActionChoice:
				if i, ok := runeIndex(e.Rune); ok && i < n {
					c.Focus = i
					return i, true
				}
			}
		}
	}
	return 0, false
}

func runeIndex(r rune) (int, bool) {
	r = unicode.ToUpper(r)
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= '1' && r <= '9':
		return int(r - '1'), true
	}
	return 0, false
}

// Draw renders the buttons inside area. Marked options are drawn in the
// given color; pass nil to draw them all plain.
func (c *Choices) Draw(scr *core.Screen, area core.Rect, marks map[int]core.Color) {
	for i, r := range c.Layout(area) {
		color := core.ColorFrame
		if i == c.Focus {
			color = core.ColorFocused
		}
		if m, ok := marks[i]; ok {
			color = m
		}
		label := fmt.Sprintf("%s) %s", Letter(i), c.Options[i])
		if r.H < 3 {
			// Compact rows carry no frame; the focus gets a marker instead.
			if i == c.Focus {
				label = "> " + label + " <"
			}
			scr.DrawRect(r, ' ', core.ColorDefault)
			scr.DrawTextIn(r, label, color)
			continue
		}
		scr.DrawPanel(r, color)
		inner := r.Inset(2, 1)
		if inner.H <= 1 {
			if lines := core.WrapText(label, inner.W); len(lines) > 0 {
				label = lines[0]
			}
			scr.DrawTextIn(inner, label, core.ColorWhite)
			continue
		}
		scr.DrawWrapped(inner, label, core.ColorWhite, true)
	}
}
