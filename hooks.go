package rostermap

import (
	"sync"

	"github.com/clanhall/rostermap/pkg/renames"
	"github.com/clanhall/rostermap/pkg/roster"
)

// Hook function types for roster change events.
type (
	// RenameHook is called for each rename detected between snapshots.
	RenameHook func(event renames.Event)

	// MemberHook is called for each member who joined or left.
	MemberHook func(key roster.Key)
)

// hooks manages event callbacks for roster changes.
type hooks struct {
	mu       sync.RWMutex
	onRename []RenameHook
	onJoined []MemberHook
	onLeft   []MemberHook
}

func newHooks() *hooks {
	return &hooks{}
}

func (h *hooks) OnRename(fn RenameHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRename = append(h.onRename, fn)
}

func (h *hooks) OnMemberJoined(fn MemberHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onJoined = append(h.onJoined, fn)
}

func (h *hooks) OnMemberLeft(fn MemberHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onLeft = append(h.onLeft, fn)
}

func (h *hooks) fireRename(ev renames.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onRename {
		fn(ev)
	}
}

func (h *hooks) fireJoined(k roster.Key) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onJoined {
		fn(k)
	}
}

func (h *hooks) fireLeft(k roster.Key) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onLeft {
		fn(k)
	}
}

// OnRename implements Rostermap.
func (r *rostermap) OnRename(fn RenameHook) { r.hooks.OnRename(fn) }

// OnMemberJoined implements Rostermap.
func (r *rostermap) OnMemberJoined(fn MemberHook) { r.hooks.OnMemberJoined(fn) }

// OnMemberLeft implements Rostermap.
func (r *rostermap) OnMemberLeft(fn MemberHook) { r.hooks.OnMemberLeft(fn) }
