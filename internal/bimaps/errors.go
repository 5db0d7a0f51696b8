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

import "errors"

var (
	// ErrInvalidArgument is returned when a BiMap cannot be built from the supplied input,
	// either because it is not a mapping or because it repeats a key or a value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyExists is returned when an association would break the one-to-one invariant.
	ErrAlreadyExists = errors.New("association already exists")
	// ErrNotFound is returned when an identifier is not present in the BiMap.
	ErrNotFound = errors.New("association not found")
)
