package session

import (
	"context"

	"github.com/vovakirdan/party-pascal/internal/core"
)

// Host is the display, input and scheduler a native loop runs against.
type Host interface {
	// Size returns the current surface size in cells.
	Size() (width, height int)
	// Present shows a finished frame.
	Present(scr *core.Screen) error
	// Poll drains every input event that arrived since the last poll.
	Poll() core.Batch
	// Yield hands control back to the host scheduler. A blocking host
	// returns immediately; a cooperative one returns once it is ready to
	// run the next iteration. It returns ctx's error when cancelled.
	Yield(ctx context.Context) error
}

// Run drives the stack against host until it finishes or ctx is cancelled.
// Each iteration is update → draw → poll → yield; the input polled at the
// end of one iteration is what the next update sees.
func Run(ctx context.Context, host Host, st *Stack, clock *Clock) (Result, error) {
	scr := core.NewScreen(host.Size())
	var input core.Batch

	for {
		f := Frame{Elapsed: clock.Tick(), Input: input}
		f.Width, f.Height = host.Size()
		scr.Resize(f.Width, f.Height)

		if st.Step(f) {
			return st.Result(), nil
		}
		st.Draw(scr)
		if err := host.Present(scr); err != nil {
			return st.Result(), err
		}
		input = host.Poll()

		if err := host.Yield(ctx); err != nil {
			return st.Result(), err
		}
	}
}
