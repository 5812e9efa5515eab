package sortable

import (
	"sort"

	"golang.org/x/net/html"
)

// planCorrection calculates the moves that put every frozen element back
// at its required index.
//
// The target order is built first: frozen elements take their required
// slots (clamped to the list length) and the remaining slots are filled
// with the other elements in their current relative order. Moves are then
// generated left to right, so each move only touches positions that are not
// yet fixed. Frozen elements that are no longer in current are ignored.
func planCorrection(current []*html.Node, frozen []Frozen) []Move {
	n := len(current)
	if n == 0 || len(frozen) == 0 {
		return nil
	}

	present := make(map[*html.Node]bool, n)
	for _, el := range current {
		present[el] = true
	}

	pins := make([]Frozen, 0, len(frozen))
	for _, f := range frozen {
		if present[f.Node] {
			pins = append(pins, f)
		}
	}
	sort.SliceStable(pins, func(i, j int) bool { return pins[i].Index < pins[j].Index })

	target := make([]*html.Node, n)
	pinned := make(map[*html.Node]bool, len(pins))
	for _, f := range pins {
		idx := freeSlot(target, f.Index)
		if idx < 0 {
			continue
		}
		target[idx] = f.Node
		pinned[f.Node] = true
	}

	next := 0
	for _, el := range current {
		if pinned[el] {
			continue
		}
		for target[next] != nil {
			next++
		}
		target[next] = el
	}

	return diffOrder(current, target)
}

// freeSlot returns want if it is free, else the nearest free slot after it,
// else the nearest before it. want is clamped to the slice bounds.
func freeSlot(target []*html.Node, want int) int {
	if want >= len(target) {
		want = len(target) - 1
	}
	if want < 0 {
		want = 0
	}
	for i := want; i < len(target); i++ {
		if target[i] == nil {
			return i
		}
	}
	for i := want - 1; i >= 0; i-- {
		if target[i] == nil {
			return i
		}
	}
	return -1
}

// diffOrder returns the moves that turn current into target. Both slices
// must hold the same elements.
func diffOrder(current, target []*html.Node) []Move {
	work := append([]*html.Node(nil), current...)
	var moves []Move
	for i, want := range target {
		if work[i] == want {
			continue
		}
		from := indexOf(work, want)
		if from < 0 {
			continue
		}
		copy(work[i+1:from+1], work[i:from])
		work[i] = want
		moves = append(moves, Move{Node: want, From: from, To: i})
	}
	return moves
}

func indexOf(nodes []*html.Node, n *html.Node) int {
	for i, c := range nodes {
		if c == n {
			return i
		}
	}
	return -1
}
