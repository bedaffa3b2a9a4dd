// Package config contains the typed configuration items and the store
// that registers them. Items are validated value cells with change
// notification; controls in the ui package bind to them bidirectionally.
//
// Maintenance notes:
//   - Item values are owned by the Fyne UI goroutine. Set/Get and listener
//     notification all happen synchronously on the caller, so listeners
//     must not block and must not re-enter Set on the same key with a
//     different value (that would recurse until the values converge).
//   - The Store only guards its registry map; it never copies items.
//     Items are created once at startup and live for the whole process.
package config

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownKey is returned when looking up or binding a key that was
	// never registered on the store.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrTypeMismatch is returned by Store.Set when the value's type does
	// not match the registered item's type.
	ErrTypeMismatch = errors.New("config: value type mismatch")
)

// entry is the untyped view of an Item held by the Store.
type entry interface {
	anyValue() any
	anyDefault() any
	setAny(v any) error
	subscribeAny(fn func(any))
}

// Store is the registry of configuration items. One instance is created
// at startup and passed explicitly to everything that binds to it.
type Store struct {
	mu    sync.Mutex
	items map[string]entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{items: make(map[string]entry)}
}

func (s *Store) register(key string, e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[key]; ok {
		panic(fmt.Sprintf("config: duplicate key %q", key))
	}
	s.items[key] = e
}

func (s *Store) lookup(key string) (entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return e, nil
}

// Get returns the current value for key.
func (s *Store) Get(key string) (any, error) {
	e, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	return e.anyValue(), nil
}

// Default returns the default value for key.
func (s *Store) Default(key string) (any, error) {
	e, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	return e.anyDefault(), nil
}

// Set validates and stores a new value for key, then notifies the key's
// subscribers. Setting the value an item already holds is a no-op and
// produces no notification.
func (s *Store) Set(key string, v any) error {
	e, err := s.lookup(key)
	if err != nil {
		return err
	}
	return e.setAny(v)
}

// Subscribe registers a listener invoked on every accepted Set for key.
// Listeners fire synchronously, in registration order.
func (s *Store) Subscribe(key string, fn func(any)) error {
	e, err := s.lookup(key)
	if err != nil {
		return err
	}
	e.subscribeAny(fn)
	return nil
}

// Keys returns all registered keys, sorted. The host uses this to walk
// the store when persisting it.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Item is a single named configuration value of type T. The optional
// clamp function is applied to every write, so the held value always
// satisfies it.
type Item[T comparable] struct {
	key       string
	def       T
	value     T
	clamp     func(T) T
	listeners []func(T)
}

// NewItem creates an item with the given key and default and registers
// it on the store.
func NewItem[T comparable](s *Store, key string, def T) *Item[T] {
	it := &Item[T]{key: key, def: def, value: def}
	s.register(key, it)
	return it
}

// Key returns the item's unique key.
func (it *Item[T]) Key() string { return it.key }

// Default returns the item's default value.
func (it *Item[T]) Default() T { return it.def }

// Get returns the current value.
func (it *Item[T]) Get() T { return it.value }

// Set clamps v if the item has a validator, stores it, and notifies the
// listeners in registration order. A write of the value the item
// already holds does nothing.
func (it *Item[T]) Set(v T) {
	if it.clamp != nil {
		v = it.clamp(v)
	}
	if v == it.value {
		return
	}
	it.value = v
	for _, fn := range it.listeners {
		fn(v)
	}
}

// OnChanged registers a listener invoked with the new value on every
// accepted Set.
func (it *Item[T]) OnChanged(fn func(T)) {
	it.listeners = append(it.listeners, fn)
}

func (it *Item[T]) anyValue() any   { return it.value }
func (it *Item[T]) anyDefault() any { return it.def }

func (it *Item[T]) setAny(v any) error {
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: %q holds %T, got %T", ErrTypeMismatch, it.key, it.value, v)
	}
	it.Set(tv)
	return nil
}

func (it *Item[T]) subscribeAny(fn func(any)) {
	it.OnChanged(func(v T) { fn(v) })
}

// RangeItem is an integer item with an inclusive (min, max) range.
// Out-of-range writes are clamped, never rejected.
type RangeItem struct {
	*Item[int]
	min, max int
}

// NewRangeItem creates a ranged integer item and registers it on the
// store. The default is clamped into the range as well.
func NewRangeItem(s *Store, key string, def, min, max int) *RangeItem {
	if max < min {
		min, max = max, min
	}
	clamp := func(v int) int {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	}
	it := &Item[int]{key: key, def: clamp(def), value: clamp(def), clamp: clamp}
	s.register(key, it)
	return &RangeItem{Item: it, min: min, max: max}
}

// Range returns the item's inclusive bounds.
func (r *RangeItem) Range() (min, max int) { return r.min, r.max }
