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

package pinyin

import (
	"io"

	"github.com/ianlewis/go-scel/internal/bin"
)

// Syllable is a single syllable table entry.
type Syllable struct {
	// Index is the entry's position in the table.
	Index uint16

	// Text is the romanized syllable (e.g. "zhong").
	Text string
}

// Scanner scans syllable table entries from start to end. Each entry is a
// 16-bit index, a 16-bit byte length, and a UTF-16LE syllable of that
// length. The caller must position the reader at the first entry.
type Scanner struct {
	r        io.Reader
	syllable *Syllable
	err      error
}

// NewScanner returns a new syllable table scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r: r,
	}
}

// Scan advances to the next syllable table entry. It returns false when an
// error occurs. The scanner has no notion of the table's end; the caller
// decides when to stop scanning.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	index, err := bin.ReadUint16(s.r)
	if err != nil {
		s.err = err
		return false
	}
	length, err := bin.ReadUint16(s.r)
	if err != nil {
		s.err = err
		return false
	}
	text, err := bin.ReadUTF16(s.r, int(length))
	if err != nil {
		s.err = err
		return false
	}

	s.syllable = &Syllable{
		Index: index,
		Text:  text,
	}
	return true
}

// Syllable returns the most recently scanned entry.
func (s *Scanner) Syllable() *Syllable {
	return s.syllable
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}
