// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package depq

import "errors"

var (
	// ErrEmpty is returned by pops and peeks on a queue without live entries.
	ErrEmpty = errors.New("depq: queue is empty")
	// ErrNotFound is returned by Remove for a payload that is not queued.
	ErrNotFound = errors.New("depq: payload not found")
	// ErrInvalidConfig is returned by New for an invalid capacity or mode.
	ErrInvalidConfig = errors.New("depq: invalid configuration")
	// ErrInvalidPriority is returned by Push for a NaN priority.
	ErrInvalidPriority = errors.New("depq: invalid priority")
)
