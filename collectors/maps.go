package collectors

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/kabu1204/go-analytics/types"
)

// ToMap maps every element to a key/value pair. When two elements share a key,
// merge(existing, new) decides the stored value; a nil merge makes a repeated
// key a misuse and panics with ErrDuplicateKey.
func ToMap[T any, K comparable, V any](key types.Function[T, K], value types.Function[T, V], merge types.BinaryOperator[V]) Collector[T, map[K]V] {
	return Of(
		func() map[K]V { return make(map[K]V) },
		func(m map[K]V, e T) map[K]V {
			k, v := key(e), value(e)
			if old, ok := m[k]; ok {
				if merge == nil {
					panic(fmt.Errorf("key %v: %w", k, ErrDuplicateKey))
				}
				v = merge(old, v)
			}
			m[k] = v
			return m
		},
		identity[map[K]V],
	)
}

// ToSortedMap is ToMap whose result iterates keys in ascending natural order.
// Ordering is applied once, when the container finishes.
func ToSortedMap[T any, K cmp.Ordered, V any](key types.Function[T, K], value types.Function[T, V], merge types.BinaryOperator[V]) Collector[T, *SortedMap[K, V]] {
	unordered := ToMap(key, value, merge)
	return Func[T, *SortedMap[K, V]](func() Container[T, *SortedMap[K, V]] {
		return &sorting[T, K, V]{down: unordered.New()}
	})
}

type sorting[T any, K cmp.Ordered, V any] struct {
	guard
	down Container[T, map[K]V]
}

func (s *sorting[T, K, V]) Accept(e T) {
	s.accepting()
	s.down.Accept(e)
}

func (s *sorting[T, K, V]) Finish() *SortedMap[K, V] {
	s.finishing()
	m := s.down.Finish()
	sm := newSortedMap[K, V]()
	for k, v := range m {
		sm.tree.Put(k, v)
	}
	return sm
}

// SortedMap is a read-only map whose keys iterate in ascending order.
type SortedMap[K cmp.Ordered, V any] struct {
	tree *treemap.Map
}

func newSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{
		tree: treemap.NewWith(func(a, b interface{}) int {
			return cmp.Compare(a.(K), b.(K))
		}),
	}
}

func (m *SortedMap[K, V]) Len() int { return m.tree.Size() }

func (m *SortedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.tree.Get(k)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (m *SortedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Size())
	for _, k := range m.tree.Keys() {
		keys = append(keys, k.(K))
	}
	return keys
}

func (m *SortedMap[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Size())
	for _, v := range m.tree.Values() {
		values = append(values, v.(V))
	}
	return values
}

// Each visits entries in ascending key order.
func (m *SortedMap[K, V]) Each(f func(K, V)) {
	it := m.tree.Iterator()
	for it.Next() {
		f(it.Key().(K), it.Value().(V))
	}
}

func (m *SortedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	m.Each(func(k K, v V) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	})
	sb.WriteByte(']')
	return sb.String()
}
