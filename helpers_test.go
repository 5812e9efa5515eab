package sortable

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type optionCall struct {
	name  string
	value any
}

// fakeEngine stands in for the drag-rendering engine. Its helpers mutate
// the root the way a real engine would and then call the hooks.
type fakeEngine struct {
	root      *html.Node
	cfg       EngineConfig
	options   []optionCall
	destroyed int
}

func (e *fakeEngine) Option(name string, value any) {
	e.options = append(e.options, optionCall{name: name, value: value})
}

func (e *fakeEngine) Destroy() {
	e.destroyed++
}

// pick starts a gesture on the element at index.
func (e *fakeEngine) pick(index int) *html.Node {
	el := elementAt(e.root, index)
	e.cfg.Hooks.OnStart(&StartEvent{Item: el, From: e.root, OldIndex: index})
	return el
}

// drag moves el to index while the gesture is live and reports it as a move
// over the element it now precedes.
func (e *fakeEngine) drag(el *html.Node, index int) Placement {
	moveElementTo(e.root, el, index)
	related := nextElementSibling(el)
	if related == nil {
		related = elementAt(e.root, index-1)
	}
	return e.cfg.Hooks.OnMove(&MoveEvent{Dragged: el, Related: related, From: e.root, To: e.root})
}

// drop finishes the gesture the way the engine orders its drop events.
func (e *fakeEngine) drop(el *html.Node, oldIndex int) {
	newIndex := elementIndex(el)
	if newIndex != oldIndex {
		e.cfg.Hooks.OnUpdate(&UpdateEvent{Item: el, OldIndex: oldIndex, NewIndex: newIndex})
		e.cfg.Hooks.OnSort(&SortEvent{Item: el, From: e.root, To: e.root, OldIndex: oldIndex, NewIndex: newIndex})
	}
	e.cfg.Hooks.OnEnd(&EndEvent{Item: el, From: e.root, To: e.root, OldIndex: oldIndex, NewIndex: newIndex})
}

// move performs a whole gesture from one index to another.
func (e *fakeEngine) move(from, to int) {
	el := e.pick(from)
	e.drag(el, to)
	e.drop(el, from)
}

func fakeFactory(out **fakeEngine) EngineFactory {
	return func(root *html.Node, cfg EngineConfig) (Engine, error) {
		e := &fakeEngine{root: root, cfg: cfg}
		*out = e
		return e, nil
	}
}

// manualScheduler queues deferred calls until Flush.
type manualScheduler struct {
	tasks []*manualTimer
	// ignoreStop lets stopped timers run anyway, like a runtime timer that
	// fired just before Stop.
	ignoreStop bool
}

type manualTimer struct {
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(_ time.Duration, f func()) Timer {
	t := &manualTimer{f: f}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Flush runs every queued call and returns how many ran.
func (s *manualScheduler) Flush() int {
	tasks := s.tasks
	s.tasks = nil
	n := 0
	for _, t := range tasks {
		if t.fired || (t.stopped && !s.ignoreStop) {
			continue
		}
		t.fired = true
		t.f()
		n++
	}
	return n
}

// listMarkup renders one <li class="item"> per label. Labels prefixed with
// '*' also get the "frozen" class.
func listMarkup(labels ...string) string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, label := range labels {
		class := "item"
		if strings.HasPrefix(label, "*") {
			label = label[1:]
			class += " frozen"
		}
		fmt.Fprintf(&b, "  <li class=%q>%s</li>\n", class, label)
	}
	b.WriteString("</ul>")
	return b.String()
}

func parseList(t *testing.T, labels ...string) *html.Node {
	t.Helper()
	root, err := ParseList(listMarkup(labels...))
	require.NoError(t, err)
	return root
}

// labels returns the text of each element child in order.
func labels(root *html.Node) []string {
	var out []string
	for _, el := range elementChildren(root) {
		text := ""
		if el.FirstChild != nil {
			text = el.FirstChild.Data
		}
		out = append(out, text)
	}
	return out
}

func slotAttrs(root *html.Node) []string {
	var out []string
	for _, el := range elementChildren(root) {
		v, _ := getAttr(el, "data-id")
		out = append(out, v)
	}
	return out
}

func findLabel(root *html.Node, label string) *html.Node {
	for _, el := range elementChildren(root) {
		if el.FirstChild != nil && el.FirstChild.Data == label {
			return el
		}
	}
	return nil
}

// mountList builds, mounts and returns a list of string items whose
// elements carry the same labels.
func mountList(t *testing.T, opts Options, labelsIn ...string) (*List[string], *fakeEngine, *html.Node) {
	t.Helper()
	root := parseList(t, labelsIn...)
	var engine *fakeEngine
	l, err := New[string](fakeFactory(&engine), opts)
	require.NoError(t, err)
	require.NoError(t, l.Mount(root, labels(root)))
	require.NotNil(t, engine)
	return l, engine, root
}
