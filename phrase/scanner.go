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

// Package phrase implements reading the word table of a .scel file.
//
// The word table is a sequence of homophone blocks running to the end of
// the file. Each block declares a pronunciation as syllable table indices
// and lists the words sharing it.
package phrase

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-scel/internal/bin"
	"github.com/ianlewis/go-scel/pinyin"
)

var (
	// ErrCorruptTable indicates that the word table does not end exactly at
	// the end of the file.
	ErrCorruptTable = errors.New("corrupt word table")

	// ErrUnknownSyllableIndex indicates that a homophone block references a
	// syllable index that is not present in the syllable table.
	ErrUnknownSyllableIndex = errors.New("unknown syllable index")
)

// Word is a single decoded vocabulary entry.
type Word struct {
	// Text is the word itself.
	Text string

	// Pinyin is the word's full romanization, syllables joined by single
	// spaces.
	Pinyin string

	// Frequency is the leading integer of the word's extension region. It
	// is only populated when the scanner's Frequency option is set.
	Frequency uint16
}

// Block is one decoded homophone block.
type Block struct {
	// Pinyin is the romanization shared by the block's words.
	Pinyin string

	// Words are the block's words, in file order.
	Words []*Word
}

// ScannerOptions are options for scanning the word table.
type ScannerOptions struct {
	// Frequency selects the record layout that treats the first integer of
	// each word's extension region as a usage frequency.
	Frequency bool
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{}

// Scanner scans homophone blocks from the start of the word table to the
// end of the file. The caller must position the reader at the table's
// offset and pass the byte size of the region from there to end of file.
type Scanner struct {
	r     io.Reader
	table *pinyin.Table
	opts  *ScannerOptions

	// pos counts consumed bytes; the table is well formed only if pos
	// lands exactly on size.
	pos  int64
	size int64

	block *Block
	err   error
}

// NewScanner returns a new word table scanner that resolves syllable
// indices through table. size is the byte length of the word table region.
func NewScanner(r io.Reader, size int64, table *pinyin.Table, opts *ScannerOptions) *Scanner {
	if opts == nil {
		opts = DefaultScannerOptions
	}
	return &Scanner{
		r:     r,
		table: table,
		opts:  opts,
		size:  size,
	}
}

// Scan advances to the next homophone block. It returns false when the
// table has been fully consumed or an error occurs.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.pos == s.size {
		return false
	}

	block, err := s.readBlock()
	if err != nil {
		s.err = err
		return false
	}
	if s.pos > s.size {
		// The declared sizes ran past the end of the region.
		s.err = fmt.Errorf("%w: block ends at 0x%X past region end 0x%X", ErrCorruptTable, s.pos, s.size)
		return false
	}

	s.block = block
	return true
}

// Block returns the most recently scanned homophone block.
func (s *Scanner) Block() *Block {
	return s.block
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) readBlock() (*Block, error) {
	wordCount, err := s.readUint16()
	if err != nil {
		return nil, err
	}
	syllableBytes, err := s.readUint16()
	if err != nil {
		return nil, err
	}

	// Syllable indices are 16-bit, so the declared byte count covers half
	// as many indices.
	syllables := make([]string, 0, syllableBytes/2)
	for i := uint16(0); i < syllableBytes/2; i++ {
		index, err := s.readUint16()
		if err != nil {
			return nil, err
		}
		syl, ok := s.table.Lookup(index)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownSyllableIndex, index)
		}
		syllables = append(syllables, syl)
	}

	block := &Block{
		Pinyin: strings.Join(syllables, " "),
	}
	for i := uint16(0); i < wordCount; i++ {
		word, err := s.readWord(block.Pinyin)
		if err != nil {
			return nil, err
		}
		block.Words = append(block.Words, word)
	}

	return block, nil
}

func (s *Scanner) readWord(fullPinyin string) (*Word, error) {
	charBytes, err := s.readUint16()
	if err != nil {
		return nil, err
	}
	text, err := bin.ReadUTF16(s.r, int(charBytes))
	if err != nil {
		return nil, s.corrupt(err)
	}
	s.pos += int64(charBytes)

	word := &Word{
		Text:   text,
		Pinyin: fullPinyin,
	}

	// The extension region is 12 bytes including its own length field. The
	// length field and the trailing 8 reserved bytes are not validated.
	if s.opts.Frequency {
		if err := s.discard(2); err != nil {
			return nil, err
		}
		word.Frequency, err = s.readUint16()
		if err != nil {
			return nil, err
		}
		if err := s.discard(8); err != nil {
			return nil, err
		}
	} else {
		if err := s.discard(12); err != nil {
			return nil, err
		}
	}

	return word, nil
}

func (s *Scanner) readUint16() (uint16, error) {
	v, err := bin.ReadUint16(s.r)
	if err != nil {
		return 0, s.corrupt(err)
	}
	s.pos += 2
	return v, nil
}

func (s *Scanner) discard(n int64) error {
	if _, err := io.CopyN(io.Discard, s.r, n); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return s.corrupt(err)
	}
	s.pos += n
	return nil
}

// corrupt converts a truncation in the middle of a block into a corrupt
// table error; the word table's only valid end is a block boundary exactly
// at end of file.
func (s *Scanner) corrupt(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: file ends mid-block at 0x%X: %w", ErrCorruptTable, s.pos, err)
	}
	return err
}
