package session

import (
	"context"

	"github.com/vovakirdan/party-pascal/internal/core"
)

// ScriptHost is a headless Host that replays queued input batches, one per
// iteration, and records every presented frame. Once the script runs out it
// delivers empty batches, or a quit request when QuitWhenEmpty is set.
type ScriptHost struct {
	Width, Height int
	Script        []core.Batch
	QuitWhenEmpty bool
	// MaxIterations stops a runaway loop by delivering a quit request.
	MaxIterations int

	Presents   int
	Yields     int
	Polls      int
	LastFrame  string
	OnPresent  func(scr *core.Screen)
	iterations int
}

// NewScriptHost returns an 80×24 script host.
func NewScriptHost(script ...core.Batch) *ScriptHost {
	return &ScriptHost{Width: 80, Height: 24, Script: script, MaxIterations: 100000}
}

// Size implements Host.
func (h *ScriptHost) Size() (int, int) {
	return h.Width, h.Height
}

// Present implements Host.
func (h *ScriptHost) Present(scr *core.Screen) error {
	h.Presents++
	h.LastFrame = scr.String()
	if h.OnPresent != nil {
		h.OnPresent(scr)
	}
	return nil
}

// Poll implements Host.
func (h *ScriptHost) Poll() core.Batch {
	h.Polls++
	h.iterations++
	if h.MaxIterations > 0 && h.iterations >= h.MaxIterations {
		return core.Batch{core.Quit()}
	}
	if len(h.Script) == 0 {
		if h.QuitWhenEmpty {
			return core.Batch{core.Quit()}
		}
		return nil
	}
	b := h.Script[0]
	h.Script = h.Script[1:]
	return b
}

// Yield implements Host.
func (h *ScriptHost) Yield(ctx context.Context) error {
	h.Yields++
	return ctx.Err()
}
