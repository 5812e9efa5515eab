package sortable

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// List keeps an application collection in step with a draggable element
// list. The application calls Reconcile whenever it changes the collection
// and reads the order committed by drags with Items.
type List[T any] struct {
	mu sync.Mutex

	opts      Options
	factory   EngineFactory
	log       *slog.Logger
	draggable cascadia.Selector

	index  *IndexMap[T]
	rec    reconciler[T]
	freeze *freezeController
	subs   subscriptions

	root      *html.Node
	engine    Engine
	disabled  bool
	destroyed bool
}

// New creates an unmounted list. Selectors in opts are compiled here.
func New[T any](factory EngineFactory, opts Options) (*List[T], error) {
	sels, err := opts.compile()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("sortable", uuid.NewString())
	sched := opts.Scheduler
	if sched == nil {
		sched = SystemScheduler
	}

	l := &List[T]{
		opts:      opts,
		factory:   factory,
		log:       logger,
		draggable: sels.draggable,
		index:     NewIndexMap[T](nil),
		rec:       reconciler[T]{log: logger},
		disabled:  opts.Disabled,
	}
	l.freeze = newFreezeController(sels.freeze, sched, &l.mu, logger)
	return l, nil
}

// UseEqual replaces serialization-based comparison of items with eq.
func (l *List[T]) UseEqual(eq func(a, b T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rec.equal = eq
}

// Mount reconciles items, stamps slot attributes on elements that lack one
// and creates the drag engine on root.
func (l *List[T]) Mount(root *html.Node, items []T) error {
	if root == nil {
		return ErrNilRoot
	}
	if l.factory == nil {
		return ErrNoEngine
	}

	l.mu.Lock()
	switch {
	case l.destroyed:
		l.mu.Unlock()
		return ErrDestroyed
	case l.root != nil:
		l.mu.Unlock()
		return ErrAlreadyMounted
	}
	l.root = root
	els := l.items()
	if n := len(elementChildren(root)); len(els) == 0 && n > 0 {
		l.root = nil
		l.mu.Unlock()
		return fmt.Errorf("%w: %q matches none of %d elements", ErrNoDraggable, l.opts.Draggable, n)
	}
	for i, el := range els {
		if _, ok := getAttr(el, l.opts.DataIDAttr); !ok {
			setAttr(el, l.opts.DataIDAttr, strconv.Itoa(i))
		}
	}
	l.rec.reconcile(l.index, items)
	opts := l.opts
	opts.Disabled = l.disabled
	cfg := EngineConfig{Options: opts, Hooks: l.hooks()}
	l.mu.Unlock()

	engine, err := l.factory(root, cfg)
	if err != nil {
		l.mu.Lock()
		l.root = nil
		l.mu.Unlock()
		return fmt.Errorf("failed to create drag engine: %w", err)
	}

	l.mu.Lock()
	if l.destroyed {
		l.mu.Unlock()
		engine.Destroy()
		return ErrDestroyed
	}
	l.engine = engine
	l.mu.Unlock()

	l.log.Debug("mounted", "items", len(items))
	return nil
}

// Reconcile tells the list the application collection is now items.
// A collection with different content rebuilds the index map; the same
// content only re-derives slot ids.
func (l *List[T]) Reconcile(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.destroyed {
		return
	}
	l.rec.reconcile(l.index, items)
}

// Items returns the collection in its committed order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.Items()
}

// Records returns the position records in render order.
func (l *List[T]) Records() []Record[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.Records()
}

// Frozen returns the frozen set of the gesture in progress.
func (l *List[T]) Frozen() []Frozen {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.freeze.snapshot()
}

// Disabled reports whether dragging is currently disabled.
func (l *List[T]) Disabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disabled
}

// SetDisabled propagates a change of the disabled flag to the engine.
// Setting the current value does nothing.
func (l *List[T]) SetDisabled(disabled bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var err error
	switch {
	case l.destroyed:
		err = ErrDestroyed
	case l.engine == nil:
		err = ErrNotMounted
	}
	if err != nil {
		err = fmt.Errorf("set disabled: %w", err)
		if l.opts.Strict {
			panic(err)
		}
		l.log.Error("disabled flag changed without an engine", "error", err)
		return err
	}

	if l.disabled == disabled {
		return nil
	}
	l.disabled = disabled
	l.engine.Option(OptionDisabled, disabled)
	return nil
}

// Destroy releases the engine and cancels pending corrections. No hook or
// correction has any effect afterwards.
func (l *List[T]) Destroy() {
	l.mu.Lock()
	if l.destroyed {
		l.mu.Unlock()
		return
	}
	l.destroyed = true
	l.freeze.shutdown()
	engine := l.engine
	l.engine = nil
	l.root = nil
	l.index = NewIndexMap[T](nil)
	l.mu.Unlock()

	if engine != nil {
		engine.Destroy()
	}
	l.log.Debug("destroyed")
}

// items returns the draggable element children of the root.
func (l *List[T]) items() []*html.Node {
	children := elementChildren(l.root)
	if l.draggable == nil {
		return children
	}
	matched := children[:0]
	for _, el := range children {
		if l.draggable.Match(el) {
			matched = append(matched, el)
		}
	}
	return matched
}

// commit writes the visual order back to the collection. Each element's
// slot attribute is read, then restamped with its new position.
func (l *List[T]) commit() {
	els := l.items()
	order := make([]int, len(els))
	for i, el := range els {
		v, _ := getAttr(el, l.opts.DataIDAttr)
		id, err := strconv.Atoi(v)
		if err != nil {
			l.log.Warn("order not committed", "error", fmt.Errorf("%w: element %d has slot %q", ErrSlotMismatch, i, v))
			return
		}
		order[i] = id
	}
	if err := l.index.Commit(order); err != nil {
		l.log.Warn("order not committed", "error", err)
		return
	}
	for i, el := range els {
		setAttr(el, l.opts.DataIDAttr, strconv.Itoa(i))
	}
	l.rec.reconcile(l.index, l.index.Items())
	l.log.Debug("order committed", "items", len(order))
}
