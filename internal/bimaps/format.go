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
	"strings"

	"github.com/samber/lo"
)

var (
	_ fmt.Stringer   = (*BiMap[string, int])(nil)
	_ fmt.GoStringer = (*BiMap[string, int])(nil)
)

// String renders the associations as {k1 <-> v1, k2 <-> v2} in insertion order.
func (b *BiMap[K, V]) String() string {
	return b.render("%v <-> %v")
}

// GoString renders the associations as {k1: v1, k2: v2} in insertion order, using the
// Go-syntax representation of every key and value.
func (b *BiMap[K, V]) GoString() string {
	return b.render("%#v: %#v")
}

func (b *BiMap[K, V]) render(pairFormat string) string {
	if b == nil {
		return "{}"
	}
	entries := lo.Map(b.order, func(key K, _ int) string {
		return fmt.Sprintf(pairFormat, key, b.forward[key])
	})
	return "{" + strings.Join(entries, ", ") + "}"
}
