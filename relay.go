package sortable

// Handler receives an outward lifecycle notification.
type Handler func(Event)

type subscription struct {
	id      uint64
	handler Handler
}

// subscriptions holds at most one handler per event kind.
type subscriptions struct {
	byKind map[EventKind]subscription
	nextID uint64
}

func (s *subscriptions) set(kind EventKind, h Handler) uint64 {
	if s.byKind == nil {
		s.byKind = make(map[EventKind]subscription)
	}
	s.nextID++
	s.byKind[kind] = subscription{id: s.nextID, handler: h}
	return s.nextID
}

// remove drops the handler for kind only if it is still the registration id.
func (s *subscriptions) remove(kind EventKind, id uint64) {
	if sub, ok := s.byKind[kind]; ok && sub.id == id {
		delete(s.byKind, kind)
	}
}

func (s *subscriptions) lookup(kind EventKind) Handler {
	return s.byKind[kind].handler
}

// OnEvent registers h as the outward handler for kind, replacing any
// previous one. The returned func unregisters it. A nil handler clears the
// registration.
func (l *List[T]) OnEvent(kind EventKind, h Handler) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if h == nil {
		delete(l.subs.byKind, kind)
		return func() {}
	}
	id := l.subs.set(kind, h)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.subs.remove(kind, id)
	}
}

// relay runs bookkeeping under the list lock and then forwards ev to the
// registered handler, if any, with the lock released.
func (l *List[T]) relay(ev Event, bookkeeping func()) {
	l.mu.Lock()
	if l.destroyed {
		l.mu.Unlock()
		return
	}
	if bookkeeping != nil {
		bookkeeping()
	}
	h := l.subs.lookup(ev.Kind())
	l.mu.Unlock()

	if h == nil {
		return
	}
	h(ev)
}

// hooks binds the engine callbacks to this list.
func (l *List[T]) hooks() Hooks {
	return Hooks{
		OnStart: func(ev *StartEvent) {
			l.relay(ev, func() { l.freeze.start(l.root) })
		},
		OnEnd: func(ev *EndEvent) {
			l.relay(ev, l.freeze.end)
		},
		OnAdd: func(ev *AddEvent) {
			l.relay(ev, l.freeze.settle)
		},
		OnUpdate: func(ev *UpdateEvent) {
			l.relay(ev, func() {
				l.freeze.settle()
				l.commit()
			})
		},
		OnSort: func(ev *SortEvent) {
			l.relay(ev, l.freeze.settle)
		},
		OnRemove: func(ev *RemoveEvent) {
			l.relay(ev, l.freeze.settle)
		},
		OnFilter: func(ev *FilterEvent) {
			l.relay(ev, nil)
		},
		OnMove: func(ev *MoveEvent) Placement {
			placement := PlaceDefault
			l.relay(ev, func() { placement = l.freeze.move(ev) })
			return placement
		},
	}
}
