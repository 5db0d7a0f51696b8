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

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = (*BiMap[string, int])(nil)
	_ yaml.Unmarshaler = (*BiMap[string, int])(nil)
)

// MarshalYAML encodes the BiMap as a YAML mapping that preserves insertion order.
func (b *BiMap[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for key, value := range b.All() {
		keyNode, valueNode := &yaml.Node{}, &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, fmt.Errorf("failed to encode key %v: %w", key, err)
		}
		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("failed to encode value %v: %w", value, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML replaces the content of the BiMap with the associations of a YAML mapping,
// in document order. Any other kind of node is rejected with ErrInvalidArgument, as is a
// mapping that repeats a key or a value. On error the BiMap is left untouched.
func (b *BiMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		b.Clear()
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected a YAML mapping at line %d, got %s", ErrInvalidArgument, node.Line, kindName(node.Kind))
	}

	pairs := make([]Pair[K, V], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var p Pair[K, V]
		if err := node.Content[i].Decode(&p.Key); err != nil {
			return fmt.Errorf("%w: cannot decode key at line %d: %w", ErrInvalidArgument, node.Content[i].Line, err)
		}
		if err := node.Content[i+1].Decode(&p.Value); err != nil {
			return fmt.Errorf("%w: cannot decode value at line %d: %w", ErrInvalidArgument, node.Content[i+1].Line, err)
		}
		pairs = append(pairs, p)
	}

	decoded, err := NewFromPairs(pairs...)
	if err != nil {
		return err
	}
	*b = *decoded
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
