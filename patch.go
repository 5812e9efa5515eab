package sortable

import (
	"fmt"

	"golang.org/x/net/html"
)

// applyMoves applies moves to the element children of list in order.
// Each move is verified against the element's current index first; a stale
// move stops the patch and leaves earlier moves applied.
func applyMoves(list *html.Node, moves []Move) error {
	for i, mv := range moves {
		if mv.Node.Parent != list {
			return fmt.Errorf("failed to apply move %d: element is no longer in the list", i)
		}
		if got := elementIndex(mv.Node); got != mv.From {
			return fmt.Errorf("failed to apply move %d: element at %d, expected %d", i, got, mv.From)
		}
		moveElementTo(list, mv.Node, mv.To)
	}
	return nil
}
