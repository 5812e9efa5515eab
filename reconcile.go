package sortable

import (
	"bytes"
	"log/slog"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

// reconciler decides whether a collection handed in by the application is
// a replacement or the order this list committed itself.
type reconciler[T any] struct {
	equal func(a, b T) bool
	log   *slog.Logger
}

// reconcile brings m in line with items and reports whether it had to
// rebuild the map. When items match the committed order the map keeps its
// slot memory but takes the incoming values.
func (r *reconciler[T]) reconcile(m *IndexMap[T], items []T) bool {
	if !r.same(items, m.Items()) {
		m.Reset(items)
		r.log.Debug("collection replaced, index map rebuilt", "items", len(items))
		return true
	}
	m.Resolve()
	m.Refresh(items)
	return false
}

func (r *reconciler[T]) same(a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if r.equal != nil {
		for i := range a {
			if !r.equal(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	fa, err := fingerprint(a)
	if err != nil {
		r.log.Debug("collection not serializable, treating as replaced", "error", err)
		return false
	}
	fb, err := fingerprint(b)
	if err != nil {
		r.log.Debug("collection not serializable, treating as replaced", "error", err)
		return false
	}
	if !bytes.Equal(fa, fb) {
		return false
	}
	// The encoder skips unexported fields, so equal bytes may still hide a
	// replacement.
	if !deepEqual(a, b) {
		r.log.Debug("fingerprint hides unexported state, treating as replaced")
		return false
	}
	return true
}

// fingerprint is the content-equality serialization of a collection.
func fingerprint[T any](items []T) ([]byte, error) {
	return json.Marshal(items)
}

// deepEqual compares every field, exported or not. Values cmp cannot walk
// count as different.
func deepEqual[T any](a, b []T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}
