package sortable

import (
	"log/slog"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// freezeController keeps frozen elements at their indices while a gesture
// is in progress. All state belongs to one List; nothing is shared between
// lists.
//
// Callers hold locker while calling any method. The deferred correction
// acquires locker itself.
type freezeController struct {
	sel    cascadia.Selector
	sched  Scheduler
	locker sync.Locker
	log    *slog.Logger

	armed   bool
	closed  bool
	list    *html.Node
	frozen  []Frozen
	pending Timer
	gen     uint64
}

func newFreezeController(sel cascadia.Selector, sched Scheduler, locker sync.Locker, log *slog.Logger) *freezeController {
	return &freezeController{sel: sel, sched: sched, locker: locker, log: log}
}

func (f *freezeController) active() bool {
	return f.sel != nil
}

// start arms the controller and records the frozen set for this gesture.
func (f *freezeController) start(root *html.Node) {
	f.cancel()
	f.armed = false
	f.frozen = nil
	f.list = nil
	if !f.active() || f.closed {
		return
	}
	f.armed = true
	f.list = root
	for i, el := range elementChildren(root) {
		if f.sel.Match(el) {
			f.frozen = append(f.frozen, Frozen{Node: el, Index: i})
		}
	}
	f.log.Debug("gesture armed", "frozen", len(f.frozen))
}

// move schedules a correction and answers the engine's move validation.
func (f *freezeController) move(ev *MoveEvent) Placement {
	if !f.armed {
		return PlaceDefault
	}
	f.schedule()

	if f.isFrozen(ev.Dragged) || f.isFrozen(ev.Related) {
		return PlaceReject
	}
	if ev.Related != nil {
		next := nextElementSibling(ev.Related)
		if next != nil && f.isFrozen(next) && ev.RelatedRect.Top < ev.DraggedRect.Top {
			return PlaceBefore
		}
	}
	return PlaceDefault
}

// settle runs a pending correction now.
func (f *freezeController) settle() {
	if f.pending == nil {
		return
	}
	f.cancel()
	f.correct()
}

// end settles any pending correction and disarms.
func (f *freezeController) end() {
	f.settle()
	f.armed = false
	f.frozen = nil
	f.list = nil
}

// shutdown cancels pending work for good.
func (f *freezeController) shutdown() {
	f.cancel()
	f.closed = true
	f.armed = false
	f.frozen = nil
	f.list = nil
}

func (f *freezeController) snapshot() []Frozen {
	return append([]Frozen(nil), f.frozen...)
}

func (f *freezeController) isFrozen(n *html.Node) bool {
	if n == nil {
		return false
	}
	for _, fz := range f.frozen {
		if fz.Node == n {
			return true
		}
	}
	return false
}

// schedule replaces any pending correction with a new zero-delay one.
func (f *freezeController) schedule() {
	f.cancel()
	gen := f.gen
	f.pending = f.sched.AfterFunc(0, func() {
		f.locker.Lock()
		defer f.locker.Unlock()
		if f.closed || gen != f.gen {
			return
		}
		f.pending = nil
		f.correct()
	})
}

// cancel stops the pending correction. Bumping gen also covers a timer that
// has already fired and is waiting for the lock.
func (f *freezeController) cancel() {
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
	f.gen++
}

func (f *freezeController) correct() {
	if !f.armed || len(f.frozen) == 0 {
		return
	}
	moves := planCorrection(elementChildren(f.list), f.frozen)
	if len(moves) == 0 {
		return
	}
	if err := applyMoves(f.list, moves); err != nil {
		f.log.Warn("freeze correction incomplete", "error", err)
		return
	}
	f.log.Debug("freeze correction applied", "moves", len(moves))
}
