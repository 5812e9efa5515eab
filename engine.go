package sortable

import "golang.org/x/net/html"

// OptionDisabled is the only option a List updates after Mount.
const OptionDisabled = "disabled"

// Engine is a running drag-rendering engine bound to one root element.
// It tracks the pointer, moves elements under root and calls Hooks.
type Engine interface {
	Option(name string, value any)
	Destroy()
}

// EngineFactory creates an engine for root. It must not invoke any hook
// before returning.
type EngineFactory func(root *html.Node, cfg EngineConfig) (Engine, error)

// EngineConfig is everything an engine is constructed with.
type EngineConfig struct {
	Options Options
	Hooks   Hooks
}

// Hooks are the engine's lifecycle callbacks. The engine calls them on a
// single goroutine and obeys the Placement returned by OnMove.
type Hooks struct {
	OnStart  func(*StartEvent)
	OnEnd    func(*EndEvent)
	OnAdd    func(*AddEvent)
	OnUpdate func(*UpdateEvent)
	OnSort   func(*SortEvent)
	OnRemove func(*RemoveEvent)
	OnFilter func(*FilterEvent)
	OnMove   func(*MoveEvent) Placement
}
