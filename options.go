package sortable

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"
)

// Options configures a List and the drag engine behind it.
// Only Disabled is live; every other field is read once at Mount.
type Options struct {
	Group             string        `yaml:"group"`
	Sort              bool          `yaml:"sort"`
	Delay             time.Duration `yaml:"delay"`
	Disabled          bool          `yaml:"disabled"`
	Animation         time.Duration `yaml:"animation"`
	Handle            string        `yaml:"handle"`
	Filter            string        `yaml:"filter"`
	Draggable         string        `yaml:"draggable"`
	GhostClass        string        `yaml:"ghost_class"`
	ChosenClass       string        `yaml:"chosen_class"`
	DataIDAttr        string        `yaml:"data_id_attr"`
	Scroll            bool          `yaml:"scroll"`
	ScrollSensitivity int           `yaml:"scroll_sensitivity"` // px
	ScrollSpeed       int           `yaml:"scroll_speed"`       // px

	// Freeze selects the elements pinned in place during a gesture.
	// Empty disables freezing.
	Freeze string `yaml:"freeze"`

	// Strict panics on lifecycle-ordering faults instead of returning them.
	Strict bool `yaml:"strict"`

	Logger    *slog.Logger `yaml:"-"`
	Scheduler Scheduler    `yaml:"-"`
}

// DefaultOptions returns the defaults used when a field is not configured.
func DefaultOptions() Options {
	return Options{
		Sort:              true,
		Delay:             10 * time.Millisecond,
		Animation:         200 * time.Millisecond,
		Handle:            ".item",
		Draggable:         ".item",
		GhostClass:        "sortable-ghost",
		ChosenClass:       "sortable-chosen",
		DataIDAttr:        "data-id",
		Scroll:            true,
		ScrollSensitivity: 30,
		ScrollSpeed:       10,
	}
}

// LoadOptions reads YAML on top of DefaultOptions. Durations use Go syntax
// ("10ms", "0.2s").
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse options: %w", err)
	}
	return opts, nil
}

// Values returns the engine options keyed by the names the engine's
// Option method understands.
func (o Options) Values() map[string]any {
	return map[string]any{
		"group":             o.Group,
		"sort":              o.Sort,
		"delay":             o.Delay,
		OptionDisabled:      o.Disabled,
		"animation":         o.Animation,
		"handle":            o.Handle,
		"filter":            o.Filter,
		"draggable":         o.Draggable,
		"ghostClass":        o.GhostClass,
		"chosenClass":       o.ChosenClass,
		"dataIdAttr":        o.DataIDAttr,
		"scroll":            o.Scroll,
		"scrollSensitivity": o.ScrollSensitivity,
		"scrollSpeed":       o.ScrollSpeed,
	}
}

// selectors holds the compiled forms of the selectors the list evaluates
// itself. A nil selector means "not configured".
type selectors struct {
	draggable cascadia.Selector
	freeze    cascadia.Selector
}

func (o Options) compile() (selectors, error) {
	var s selectors
	// handle and filter are only evaluated by the engine but a typo there
	// is still caught at construction.
	for _, sel := range []string{o.Handle, o.Filter} {
		if _, err := compileSelector(sel); err != nil {
			return s, err
		}
	}
	var err error
	if s.draggable, err = compileSelector(o.Draggable); err != nil {
		return s, err
	}
	if s.freeze, err = compileSelector(o.Freeze); err != nil {
		return s, err
	}
	return s, nil
}

func compileSelector(sel string) (cascadia.Selector, error) {
	if sel == "" {
		return nil, nil
	}
	compiled, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, sel, err)
	}
	return compiled, nil
}
