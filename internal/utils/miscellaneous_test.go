// /*
// Copyright 2024 The Grove Authors.
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

package utils

import (
	"testing"

	"github.com/ai-dynamo/bimap/internal/bimaps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostname string

func TestIsEmptyStringType(t *testing.T) {
	assert.True(t, IsEmptyStringType(""))
	assert.True(t, IsEmptyStringType(" \t\n"))
	assert.True(t, IsEmptyStringType(hostname("  ")))
	assert.False(t, IsEmptyStringType(hostname("host-0")))
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		name        string
		entry       string
		expected    bimaps.Pair[string, string]
		expectedErr error
	}{
		{
			name:     "simple pair",
			entry:    "pod-a=host-0",
			expected: bimaps.Pair[string, string]{Key: "pod-a", Value: "host-0"},
		},
		{
			name:     "whitespace is trimmed",
			entry:    "  pod-a = host-0 ",
			expected: bimaps.Pair[string, string]{Key: "pod-a", Value: "host-0"},
		},
		{
			name:     "value may contain the separator",
			entry:    "selector=app=web",
			expected: bimaps.Pair[string, string]{Key: "selector", Value: "app=web"},
		},
		{
			name:        "missing separator",
			entry:       "pod-a",
			expectedErr: bimaps.ErrInvalidArgument,
		},
		{
			name:        "empty key",
			entry:       "=host-0",
			expectedErr: bimaps.ErrInvalidArgument,
		},
		{
			name:        "empty value",
			entry:       "pod-a= ",
			expectedErr: bimaps.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := ParsePair(tt.entry)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pair)
		})
	}
}

func TestSplitPairs(t *testing.T) {
	pairs, err := SplitPairs([]string{"b=2", "", "  ", "a=1"})
	require.NoError(t, err)
	assert.Equal(t, []bimaps.Pair[string, string]{
		{Key: "b", Value: "2"},
		{Key: "a", Value: "1"},
	}, pairs)

	_, err = SplitPairs([]string{"a=1", "broken"})
	assert.ErrorIs(t, err, bimaps.ErrInvalidArgument)

	pairs, err = SplitPairs(nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
