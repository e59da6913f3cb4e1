// Package registry provides a global registry of minigames.
// Minigames register themselves in init() functions, allowing the campaign,
// free play and the CLI to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/party-pascal/internal/session"
)

// Info describes a registered minigame.
type Info struct {
	// ID is a unique identifier used by the CLI and run history (e.g. "quiz").
	ID string
	// Title is a human-readable name for menus.
	Title string
	// Blurb is a one-line description shown in free play.
	Blurb string
	// Music is the audio key played while the minigame runs.
	Music string
	// Order is the minigame's position in the campaign.
	Order int
	// FreePlay reports whether the minigame is offered in free play.
	FreePlay bool
}

// ErrUnknownMinigame is returned by Create for an unregistered ID.
var ErrUnknownMinigame = errors.New("registry: unknown minigame")

// Factory creates a fresh minigame session.
type Factory func() session.Session

type entry struct {
	info Info
	f    Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a minigame to the registry.
// Typically called from an init() function.
// Panics if a minigame with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: minigame registered without an ID")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: minigame %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, f: f}
}

// List returns every registered minigame in campaign order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// FreePlay returns the minigames offered in free play, in campaign order.
func FreePlay() []Info {
	var out []Info
	for _, info := range List() {
		if info.FreePlay {
			out = append(out, info)
		}
	}
	return out
}

// Lookup returns the info for a minigame.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new minigame session by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (session.Session, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMinigame, id)
	}

	return e.f(), nil
}

// Exists checks if a minigame with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
