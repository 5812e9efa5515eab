package sortable

import "golang.org/x/net/html"

// EventKind names a drag lifecycle notification.
type EventKind string

const (
	EventStart  EventKind = "start"  // gesture began
	EventEnd    EventKind = "end"    // gesture finished
	EventAdd    EventKind = "add"    // item dropped in from another list
	EventUpdate EventKind = "update" // order changed within the list
	EventSort   EventKind = "sort"   // any change: add, update or remove
	EventRemove EventKind = "remove" // item moved out to another list
	EventFilter EventKind = "filter" // attempt to drag a filtered item
	EventMove   EventKind = "move"   // live reorder while dragging
)

// EventKinds lists every kind in the order the engine hooks are declared.
var EventKinds = []EventKind{
	EventStart, EventEnd, EventAdd, EventUpdate,
	EventSort, EventRemove, EventFilter, EventMove,
}

// Event is implemented by every lifecycle payload.
type Event interface {
	Kind() EventKind
}

// StartEvent is emitted when an element is picked up.
type StartEvent struct {
	Item     *html.Node
	From     *html.Node
	OldIndex int
}

// EndEvent is emitted when the element is released, whether or not the
// order changed.
type EndEvent struct {
	Item     *html.Node
	From     *html.Node
	To       *html.Node
	OldIndex int
	NewIndex int
}

// AddEvent is emitted on the receiving list when an element arrives from
// another list.
type AddEvent struct {
	Item     *html.Node
	From     *html.Node
	To       *html.Node
	NewIndex int
}

// UpdateEvent is emitted when an element was dropped at a new index in
// the same list.
type UpdateEvent struct {
	Item     *html.Node
	OldIndex int
	NewIndex int
}

// SortEvent is emitted on any list whose order changed during a drop.
type SortEvent struct {
	Item     *html.Node
	From     *html.Node
	To       *html.Node
	OldIndex int
	NewIndex int
}

// RemoveEvent is emitted on the source list when an element leaves it.
type RemoveEvent struct {
	Item     *html.Node
	From     *html.Node
	To       *html.Node
	OldIndex int
}

// FilterEvent is emitted when a drag starts on an element matching the
// filter selector.
type FilterEvent struct {
	Item *html.Node
}

// MoveEvent is emitted repeatedly while the pointer moves. Related is the
// element currently hovered over.
type MoveEvent struct {
	Dragged     *html.Node
	Related     *html.Node
	From        *html.Node
	To          *html.Node
	DraggedRect Rect
	RelatedRect Rect
}

func (*StartEvent) Kind() EventKind  { return EventStart }
func (*EndEvent) Kind() EventKind    { return EventEnd }
func (*AddEvent) Kind() EventKind    { return EventAdd }
func (*UpdateEvent) Kind() EventKind { return EventUpdate }
func (*SortEvent) Kind() EventKind   { return EventSort }
func (*RemoveEvent) Kind() EventKind { return EventRemove }
func (*FilterEvent) Kind() EventKind { return EventFilter }
func (*MoveEvent) Kind() EventKind   { return EventMove }
