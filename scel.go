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

package scel

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ianlewis/go-scel/internal/bin"
	"github.com/ianlewis/go-scel/phrase"
	"github.com/ianlewis/go-scel/pinyin"
)

// ErrUnsupportedFormat indicates that the container's mask byte does not
// match a known variant.
var ErrUnsupportedFormat = errors.New("unsupported format")

const (
	// headerSize is the size of the container header.
	headerSize = 128

	// maskOffset is the position of the mask byte within the header.
	maskOffset = 4

	// syllableTableOffset is where syllable table entries start. The 4
	// bytes before it hold an entry count that is not consulted; the table
	// terminates on its sentinel syllable instead.
	syllableTableOffset = 0x1540 + 4
)

// Word table offsets for the two known header variants.
const (
	maskV1 = 0x44
	maskV2 = 0x45

	wordTableOffsetV1 = 0x2628
	wordTableOffsetV2 = 0x26C4
)

// Metadata offsets. Each field occupies the fixed region up to the next
// field's offset, NUL padded.
const (
	titleOffset       = 0x130
	categoryOffset    = 0x338
	descriptionOffset = 0x540
	samplesOffset     = 0xD40
	metadataEnd       = 0x1540
)

// Meta is a cell dictionary's metadata.
type Meta struct {
	// Title is the dictionary title.
	Title string

	// Category is the dictionary's category (e.g. a subject area).
	Category string

	// Description describes the dictionary's contents.
	Description string

	// Samples is a short list of example words.
	Samples string
}

// Scel is a Sogou cell dictionary.
type Scel struct {
	f    *os.File
	size int64

	meta            *Meta
	wordTableOffset int64

	syllables *pinyin.Table
}

// Open opens the cell dictionary at the given path. The header is
// classified and the metadata read eagerly; the syllable and word tables
// are read on demand.
func Open(path string) (*Scel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	s, err := New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return s, nil
}

// New reads a cell dictionary from the given file. The Scel takes
// ownership of the file and closes it via the Close method.
func New(f *os.File) (*Scel, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	s := &Scel{
		f:    f,
		size: info.Size(),
	}

	s.wordTableOffset, err = readWordTableOffset(f)
	if err != nil {
		return nil, err
	}

	s.meta, err = readMeta(f)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// readWordTableOffset inspects the header's mask byte and returns the
// absolute offset of the word table for the container variant it selects.
func readWordTableOffset(r io.Reader) (int64, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("reading header: %w", err)
	}

	switch mask := header[maskOffset]; mask {
	case maskV1:
		return wordTableOffsetV1, nil
	case maskV2:
		return wordTableOffsetV2, nil
	default:
		return 0, fmt.Errorf("%w: mask 0x%02X", ErrUnsupportedFormat, mask)
	}
}

// readMeta reads the four fixed-offset metadata fields. Each read seeks
// absolutely, so the order of the reads is not significant.
func readMeta(r io.ReadSeeker) (*Meta, error) {
	var meta Meta
	var err error

	fields := []struct {
		name  string
		value *string
		start int64
		end   int64
	}{
		{"title", &meta.Title, titleOffset, categoryOffset},
		{"category", &meta.Category, categoryOffset, descriptionOffset},
		{"description", &meta.Description, descriptionOffset, samplesOffset},
		{"samples", &meta.Samples, samplesOffset, metadataEnd},
	}
	for _, f := range fields {
		*f.value, err = bin.ReadUTF16At(r, f.start, int(f.end-f.start))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.name, err)
		}
	}

	return &meta, nil
}

// Meta returns the dictionary metadata.
func (s *Scel) Meta() *Meta {
	return s.meta
}

// Title returns the dictionary title.
func (s *Scel) Title() string {
	return s.meta.Title
}

// Category returns the dictionary category.
func (s *Scel) Category() string {
	return s.meta.Category
}

// Description returns the dictionary description.
func (s *Scel) Description() string {
	return s.meta.Description
}

// Samples returns the dictionary's example words.
func (s *Scel) Samples() string {
	return s.meta.Samples
}

// Syllables returns an in-memory version of the dictionary's global
// syllable table.
func (s *Scel) Syllables() (*pinyin.Table, error) {
	if s.syllables != nil {
		return s.syllables, nil
	}

	if _, err := s.f.Seek(syllableTableOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to syllable table: %w", err)
	}
	table, err := pinyin.New(s.f)
	if err != nil {
		return nil, err
	}
	s.syllables = table
	return s.syllables, nil
}

// WordOptions are options for decoding the word table.
type WordOptions struct {
	// Frequency selects the record layout that treats the first integer of
	// each word's extension region as a usage frequency.
	Frequency bool
}

// Words decodes the dictionary's word table and returns all words in file
// order.
func (s *Scel) Words(opts *WordOptions) ([]*phrase.Word, error) {
	table, err := s.Syllables()
	if err != nil {
		return nil, err
	}

	if _, err := s.f.Seek(s.wordTableOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to word table: %w", err)
	}

	scanOpts := &phrase.ScannerOptions{}
	if opts != nil {
		scanOpts.Frequency = opts.Frequency
	}
	return phrase.Words(s.f, s.size-s.wordTableOffset, table, scanOpts)
}

// Close closes the underlying file.
func (s *Scel) Close() error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("closing scel file: %w", err)
	}
	return nil
}
