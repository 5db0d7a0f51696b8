// /*
// Copyright 2025 The Grove Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// */

package bimaps

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Pair is a single association held by a BiMap.
type Pair[K, V comparable] struct {
	Key   K
	Value V
}

// BiMap provides a one-to-one mapping between keys and values.
// Both K and V must be comparable types. Every key maps to exactly one value and
// every value maps back to exactly one key. Associations are kept in insertion order.
//
// The zero value is an empty BiMap ready to use. Read-only methods also accept a nil
// *BiMap and treat it as empty. A BiMap is not safe for concurrent use.
type BiMap[K, V comparable] struct {
	forward  map[K]V // K → V mapping
	backward map[V]K // V → K mapping
	order    []K     // keys of forward in insertion order
}

// New creates a new empty BiMap.
func New[K, V comparable]() *BiMap[K, V] {
	return &BiMap[K, V]{
		forward:  make(map[K]V),
		backward: make(map[V]K),
	}
}

// NewFromPairs creates a BiMap holding pairs, inserted in the given order.
// It returns ErrInvalidArgument if a key or a value appears more than once.
func NewFromPairs[K, V comparable](pairs ...Pair[K, V]) (*BiMap[K, V], error) {
	b := &BiMap[K, V]{
		forward:  make(map[K]V, len(pairs)),
		backward: make(map[V]K, len(pairs)),
		order:    make([]K, 0, len(pairs)),
	}
	for i, p := range pairs {
		if err := b.Set(p.Key, p.Value); err != nil {
			return nil, fmt.Errorf("%w: pair %d: %w", ErrInvalidArgument, i, err)
		}
	}
	return b, nil
}

// NewFromMap creates a BiMap from m. The insertion order follows the iteration order of m,
// which is unspecified. It returns ErrInvalidArgument if m maps two keys to the same value.
func NewFromMap[K, V comparable](m map[K]V) (*BiMap[K, V], error) {
	if dup := lo.FindDuplicates(lo.Values(m)); len(dup) > 0 {
		return nil, fmt.Errorf("%w: values %v are mapped by more than one key", ErrInvalidArgument, dup)
	}
	return NewFromPairs(lo.MapToSlice(m, func(k K, v V) Pair[K, V] {
		return Pair[K, V]{Key: k, Value: v}
	})...)
}

// Len returns the number of associations.
func (b *BiMap[K, V]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.forward)
}

// ContainsKey returns true if key is associated with a value.
func (b *BiMap[K, V]) ContainsKey(key K) bool {
	if b == nil {
		return false
	}
	_, exists := b.forward[key]
	return exists
}

// ContainsValue returns true if value is associated with a key.
func (b *BiMap[K, V]) ContainsValue(value V) bool {
	if b == nil {
		return false
	}
	_, exists := b.backward[value]
	return exists
}

// GetByKey returns the value associated with the given key.
func (b *BiMap[K, V]) GetByKey(key K) (V, error) {
	var value V
	exists := false
	if b != nil {
		value, exists = b.forward[key]
	}
	if !exists {
		return value, fmt.Errorf("%w: key %v", ErrNotFound, key)
	}
	return value, nil
}

// GetByValue returns the key associated with the given value.
func (b *BiMap[K, V]) GetByValue(value V) (K, error) {
	var key K
	exists := false
	if b != nil {
		key, exists = b.backward[value]
	}
	if !exists {
		return key, fmt.Errorf("%w: value %v", ErrNotFound, value)
	}
	return key, nil
}

// Set establishes a bidirectional mapping between key and value.
// It returns ErrAlreadyExists, and leaves the BiMap untouched, if key is already
// associated with a value or value is already associated with a key.
func (b *BiMap[K, V]) Set(key K, value V) error {
	if existingValue, exists := b.forward[key]; exists {
		return fmt.Errorf("%w: key %v is mapped to %v", ErrAlreadyExists, key, existingValue)
	}
	if existingKey, exists := b.backward[value]; exists {
		return fmt.Errorf("%w: value %v is mapped from %v", ErrAlreadyExists, value, existingKey)
	}
	b.insert(key, value)
	return nil
}

// RemoveByKey removes the association holding key.
func (b *BiMap[K, V]) RemoveByKey(key K) error {
	value, exists := b.forward[key]
	if !exists {
		return fmt.Errorf("%w: key %v", ErrNotFound, key)
	}
	b.delete(key, value)
	return nil
}

// RemoveByValue removes the association holding value.
func (b *BiMap[K, V]) RemoveByValue(value V) error {
	key, exists := b.backward[value]
	if !exists {
		return fmt.Errorf("%w: value %v", ErrNotFound, value)
	}
	b.delete(key, value)
	return nil
}

// Clear removes all associations.
func (b *BiMap[K, V]) Clear() {
	clear(b.forward)
	clear(b.backward)
	b.order = b.order[:0]
}

// All returns an iterator over the associations in insertion order.
// Every range over the returned sequence takes its own snapshot of the keys, so
// iterations are independent of each other. Mutating the BiMap while ranging over it
// is not supported; keys removed in the meantime are skipped.
func (b *BiMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if b == nil {
			return
		}
		for _, key := range slices.Clone(b.order) {
			value, exists := b.forward[key]
			if !exists {
				continue
			}
			if !yield(key, value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (b *BiMap[K, V]) Keys() []K {
	if b == nil {
		return nil
	}
	return slices.Clone(b.order)
}

// Values returns the values in the insertion order of their keys.
func (b *BiMap[K, V]) Values() []V {
	if b == nil {
		return nil
	}
	return lo.Map(b.order, func(key K, _ int) V {
		return b.forward[key]
	})
}

// Pairs returns a snapshot of all associations in insertion order.
func (b *BiMap[K, V]) Pairs() []Pair[K, V] {
	if b == nil {
		return nil
	}
	return lo.Map(b.order, func(key K, _ int) Pair[K, V] {
		return Pair[K, V]{Key: key, Value: b.forward[key]}
	})
}

// Equal reports whether every association of other can be found in b: each key of
// other must be a key of b and each value of other must be a value of b.
// Sizes are not compared and the key and value need not be paired together in b,
// so Equal is not symmetric. Use Identical for set equality. For a BiMap whose keys and
// values share a type, the package level Equal also matches identifiers across directions.
func (b *BiMap[K, V]) Equal(other *BiMap[K, V]) bool {
	if other == nil {
		return false
	}
	for key, value := range other.All() {
		if !b.ContainsKey(key) || !b.ContainsValue(value) {
			return false
		}
	}
	return true
}

// Identical reports whether b and other hold exactly the same associations,
// regardless of insertion order.
func (b *BiMap[K, V]) Identical(other *BiMap[K, V]) bool {
	if other == nil || b.Len() != other.Len() {
		return false
	}
	for key, value := range other.All() {
		if existingValue, exists := b.forward[key]; !exists || existingValue != value {
			return false
		}
	}
	return true
}

func (b *BiMap[K, V]) insert(key K, value V) {
	if b.forward == nil {
		b.forward = make(map[K]V)
		b.backward = make(map[V]K)
	}
	b.forward[key] = value
	b.backward[value] = key
	b.order = append(b.order, key)
}

func (b *BiMap[K, V]) delete(key K, value V) {
	delete(b.forward, key)
	delete(b.backward, value)
	if i := slices.Index(b.order, key); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
}
