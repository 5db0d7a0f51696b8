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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBiMap_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name        string
		document    string
		expected    []Pair[string, int]
		expectedErr error
	}{
		{
			name:     "mapping in document order",
			document: "b: 2\na: 1\nc: 3\n",
			expected: []Pair[string, int]{{"b", 2}, {"a", 1}, {"c", 3}},
		},
		{
			name:     "empty mapping",
			document: "{}",
			expected: []Pair[string, int]{},
		},
		{
			name:        "sequence is not a mapping",
			document:    "- a\n- b\n",
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "scalar is not a mapping",
			document:    "just a string",
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "repeated value",
			document:    "a: 1\nb: 1\n",
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "value of the wrong type",
			document:    "a: one\n",
			expectedErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := New[string, int]()
			err := yaml.Unmarshal([]byte(tt.document), bm)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, 0, bm.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bm.Pairs())
			assertConsistent(t, bm)
		})
	}
}

func TestBiMap_UnmarshalYAMLReplacesContent(t *testing.T) {
	bm := newPodIndexMap(t)
	require.NoError(t, yaml.Unmarshal([]byte("pod-z: 9\n"), bm))
	assert.Equal(t, []Pair[string, int]{{"pod-z", 9}}, bm.Pairs())
	assertConsistent(t, bm)
}

func TestBiMap_UnmarshalYAMLNestedField(t *testing.T) {
	var cfg struct {
		Indices *BiMap[string, int] `yaml:"indices"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("indices:\n  pod-a: 0\n  pod-b: 1\n"), &cfg))
	require.NotNil(t, cfg.Indices)

	key, err := cfg.Indices.GetByValue(1)
	require.NoError(t, err)
	assert.Equal(t, "pod-b", key)
}

func TestBiMap_MarshalYAML(t *testing.T) {
	bm, err := NewFromPairs(Pair[string, int]{"b", 2}, Pair[string, int]{"a", 1})
	require.NoError(t, err)

	out, err := yaml.Marshal(bm)
	require.NoError(t, err)
	assert.Equal(t, "b: 2\na: 1\n", string(out))

	decoded := New[string, int]()
	require.NoError(t, yaml.Unmarshal(out, decoded))
	assert.Equal(t, bm.Pairs(), decoded.Pairs())
}
