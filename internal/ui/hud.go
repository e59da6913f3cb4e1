package ui

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/rules"
)

// Upper upper-cases a heading. Casers are stateful, so one is built per call.
func Upper(s string) string {
	return cases.Upper(language.English).String(s)
}

// DifficultyLabel returns the display name of a difficulty ("Normal").
func DifficultyLabel(d rules.Difficulty) string {
	return cases.Title(language.English).String(string(d))
}

// HUD draws the top status line shared by the minigames: the minigame
// title on the left, the round counter in the middle and the ledger's
// displayed score on the right.
func HUD(scr *core.Screen, name string, round, rounds, score int) {
	scr.DrawText(1, 0, Upper(name), core.ColorTitle)
	if rounds > 0 {
		scr.DrawTextCentered(0, fmt.Sprintf("%d/%d", core.Min(round+1, rounds), rounds), core.ColorHint)
	}
	s := fmt.Sprintf("Score: %d", score)
	scr.DrawText(scr.Width()-len(s)-1, 0, s, core.ColorAccent)
	scr.DrawHLine(0, 1, scr.Width(), '─', core.ColorFrame)
}

// CountdownBar draws the remaining fraction of a timer with its seconds.
func CountdownBar(scr *core.Screen, y int, left, total time.Duration) {
	if total <= 0 {
		return
	}
	ratio := float64(left) / float64(total)
	color := core.ColorHit
	switch {
	case ratio < 0.25:
		color = core.ColorMiss
	case ratio < 0.5:
		color = core.ColorYellow
	}
	label := fmt.Sprintf(" %4.1fs", left.Seconds())
	w := core.Max(scr.Width()-len(label)-4, 1)
	scr.DrawBar(2, y, w, ratio, color)
	scr.DrawText(2+w, y, label, color)
}

// Body returns the play area below the HUD.
func Body(w, h int) core.Rect {
	return core.NewRect(1, 2, core.Max(w-2, 0), core.Max(h-3, 0))
}
