package sortable

import "golang.org/x/net/html"

// Record pairs an item with its last-known visual slot.
// The order of records is render order; ID is the slot the item occupies
// in the committed visual order.
type Record[T any] struct {
	Item T
	ID   int
}

// Frozen pins an element to a child index for the duration of one gesture.
type Frozen struct {
	Node  *html.Node
	Index int
}

// Rect is an element's bounding box as reported by the drag engine.
type Rect struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Placement is the answer returned to the drag engine's move-validation hook.
type Placement int

const (
	PlaceDefault Placement = iota // engine decides by its own geometry
	PlaceReject                   // cancel this move
	PlaceBefore                   // insert the dragged element before the related one
)

func (p Placement) String() string {
	switch p {
	case PlaceReject:
		return "reject"
	case PlaceBefore:
		return "before"
	default:
		return "default"
	}
}

// Move relocates one element among its siblings.
// From and To are element-child indices; From is checked before applying.
type Move struct {
	Node *html.Node
	From int
	To   int
}
