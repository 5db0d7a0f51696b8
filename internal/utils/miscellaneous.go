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
	"fmt"
	"strings"

	"github.com/ai-dynamo/bimap/internal/bimaps"

	"github.com/samber/lo"
)

// pairSeparator separates the key from the value in a textual pair.
const pairSeparator = "="

// IsEmptyStringType returns true if value (which is a string or has an underline type string) is empty or contains only whitespace characters.
func IsEmptyStringType[T ~string](val T) bool {
	return len(strings.TrimSpace(string(val))) == 0
}

// ParsePair splits a "key=value" entry at the first separator. Surrounding whitespace is trimmed
// from both sides and neither side may be empty.
func ParsePair(entry string) (bimaps.Pair[string, string], error) {
	key, value, found := strings.Cut(entry, pairSeparator)
	if !found {
		return bimaps.Pair[string, string]{}, fmt.Errorf("%w: pair %q is not of the form key%svalue", bimaps.ErrInvalidArgument, entry, pairSeparator)
	}
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if IsEmptyStringType(key) || IsEmptyStringType(value) {
		return bimaps.Pair[string, string]{}, fmt.Errorf("%w: pair %q has an empty key or value", bimaps.ErrInvalidArgument, entry)
	}
	return bimaps.Pair[string, string]{Key: key, Value: value}, nil
}

// SplitPairs parses every non blank entry with ParsePair, preserving their order.
func SplitPairs(entries []string) ([]bimaps.Pair[string, string], error) {
	nonBlank := lo.Reject(entries, func(entry string, _ int) bool {
		return IsEmptyStringType(entry)
	})
	pairs := make([]bimaps.Pair[string, string], 0, len(nonBlank))
	for _, entry := range nonBlank {
		pair, err := ParsePair(entry)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
