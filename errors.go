package sortable

import "errors"

// Common errors for list lifecycle and bookkeeping
var (
	ErrNilRoot         = errors.New("root element is nil")
	ErrNoEngine        = errors.New("no drag engine factory configured")
	ErrAlreadyMounted  = errors.New("list is already mounted")
	ErrNotMounted      = errors.New("drag engine is not mounted")
	ErrDestroyed       = errors.New("list has been destroyed")
	ErrSlotMismatch    = errors.New("visual slots do not match the index map")
	ErrInvalidSelector = errors.New("invalid selector")
	ErrNoDraggable     = errors.New("no element matches the draggable selector")
)
