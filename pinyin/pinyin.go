// Copyright 2025 Ian Lewis
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

// Package pinyin implements reading the global syllable table of a .scel
// file.
package pinyin

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel is the last syllable of the pinyin syllable inventory. The
// syllable table always stores the inventory in order, so observing it
// marks the end of the table.
const Sentinel = "zuo"

// ErrCorruptTable indicates that the syllable table's indices do not form
// the strictly sequential sequence 0, 1, 2, ... that the format guarantees.
var ErrCorruptTable = errors.New("corrupt syllable table")

// Table maps syllable table indices to romanized syllables. It is immutable
// once built.
type Table struct {
	syllables []string
}

// New reads the complete syllable table from r. The reader must be
// positioned at the table's first entry. Reading stops after the
// [Sentinel] syllable.
//
// The 4 byte count preceding the table is not consulted; termination is
// driven by the table's content. Each entry's stored index must equal its
// position, since word table lookups depend on it.
func New(r io.Reader) (*Table, error) {
	t := &Table{}

	s := NewScanner(r)
	for s.Scan() {
		syl := s.Syllable()
		if int(syl.Index) != len(t.syllables) {
			return nil, fmt.Errorf("%w: index %d at position %d", ErrCorruptTable, syl.Index, len(t.syllables))
		}
		t.syllables = append(t.syllables, syl.Text)
		if syl.Text == Sentinel {
			return t, nil
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading syllable table: %w", err)
	}

	// Scan can only stop without an error at the sentinel.
	return nil, fmt.Errorf("%w: missing sentinel %q", ErrCorruptTable, Sentinel)
}

// Lookup returns the syllable stored at index i.
func (t *Table) Lookup(i uint16) (string, bool) {
	if int(i) >= len(t.syllables) {
		return "", false
	}
	return t.syllables[i], true
}

// Len returns the number of syllables in the table.
func (t *Table) Len() int {
	return len(t.syllables)
}
