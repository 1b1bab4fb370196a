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

package phrase

import (
	"fmt"
	"io"

	"github.com/ianlewis/go-scel/pinyin"
)

// Words reads the complete word table from r and returns its words
// flattened into file order. The reader must be positioned at the word
// table offset and size must be the byte length from there to end of file.
func Words(r io.Reader, size int64, table *pinyin.Table, opts *ScannerOptions) ([]*Word, error) {
	var words []*Word

	s := NewScanner(r, size, table, opts)
	for s.Scan() {
		words = append(words, s.Block().Words...)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading word table: %w", err)
	}

	return words, nil
}
