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

import "fmt"

// The functions below operate on a BiMap whose keys and values share a type, where a
// single identifier can be probed as a key and then as a value.

// Contains returns true if x is either a key or a value of b.
func Contains[T comparable](b *BiMap[T, T], x T) bool {
	return b.ContainsKey(x) || b.ContainsValue(x)
}

// Get returns the counterpart of x. x is looked up as a key first and as a value second.
func Get[T comparable](b *BiMap[T, T], x T) (T, error) {
	if value, err := b.GetByKey(x); err == nil {
		return value, nil
	}
	if key, err := b.GetByValue(x); err == nil {
		return key, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %v", ErrNotFound, x)
}

// Remove removes the association holding x, probing x as a key first and as a value second.
func Remove[T comparable](b *BiMap[T, T], x T) error {
	if b.ContainsKey(x) {
		return b.RemoveByKey(x)
	}
	if b.ContainsValue(x) {
		return b.RemoveByValue(x)
	}
	return fmt.Errorf("%w: %v", ErrNotFound, x)
}

// Equal reports whether every key and every value of other is either a key or a value of b.
// Like the Equal method it does not compare sizes and is not symmetric.
func Equal[T comparable](b, other *BiMap[T, T]) bool {
	if other == nil {
		return false
	}
	for key, value := range other.All() {
		if !Contains(b, key) || !Contains(b, value) {
			return false
		}
	}
	return true
}

// SetUnambiguous behaves like Set but additionally rejects a key that is already used as
// a value and a value that is already used as a key, so that every identifier appears at
// most once across both directions and Get never has to choose.
func SetUnambiguous[T comparable](b *BiMap[T, T], key, value T) error {
	if Contains(b, key) {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, key)
	}
	if Contains(b, value) {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, value)
	}
	return b.Set(key, value)
}
