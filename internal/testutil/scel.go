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

// Package testutil builds synthetic .scel byte images for tests.
package testutil

import (
	"encoding/binary"
	"unicode/utf16"
)

// Fixed .scel layout constants mirrored here so tests do not depend on the
// packages under test for their inputs.
const (
	titleOffset         = 0x130
	categoryOffset      = 0x338
	descriptionOffset   = 0x540
	samplesOffset       = 0xD40
	syllableCountOffset = 0x1540
	syllableTableOffset = 0x1544

	wordTableOffsetV1 = 0x2628
	wordTableOffsetV2 = 0x26C4
)

// UTF16LE encodes s as UTF-16LE bytes without a BOM.
func UTF16LE(s string) []byte {
	var b []byte
	for _, u := range utf16.Encode([]rune(s)) {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

// Uint16 encodes v as little-endian bytes.
func Uint16(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

// MakeSyllableEntry encodes one syllable table entry.
func MakeSyllableEntry(index uint16, text string) []byte {
	enc := UTF16LE(text)
	b := Uint16(index)
	//nolint:gosec // test code, syllable text is short.
	b = append(b, Uint16(uint16(len(enc)))...)
	return append(b, enc...)
}

// MakeSyllableTable encodes a syllable table with sequential indices
// assigned in slice order.
func MakeSyllableTable(syllables []string) []byte {
	var b []byte
	for i, s := range syllables {
		//nolint:gosec // test code, table is small.
		b = append(b, MakeSyllableEntry(uint16(i), s)...)
	}
	return b
}

// WordSpec describes one word of a homophone block.
type WordSpec struct {
	Text string

	// Frequency is stored in the first integer of the word's extension
	// region.
	Frequency uint16
}

// MakeBlock encodes one homophone block with the given syllable indices
// and words. Each word's extension region carries its frequency followed
// by 8 zero bytes.
func MakeBlock(indices []uint16, words []WordSpec) []byte {
	//nolint:gosec // test code, blocks are small.
	b := Uint16(uint16(len(words)))
	//nolint:gosec // test code, blocks are small.
	b = append(b, Uint16(uint16(len(indices)*2))...)
	for _, i := range indices {
		b = append(b, Uint16(i)...)
	}
	for _, w := range words {
		enc := UTF16LE(w.Text)
		//nolint:gosec // test code, words are short.
		b = append(b, Uint16(uint16(len(enc)))...)
		b = append(b, enc...)
		b = append(b, Uint16(10)...) // extension length field
		b = append(b, Uint16(w.Frequency)...)
		b = append(b, make([]byte, 8)...) // reserved
	}
	return b
}

// Meta is the metadata of a synthetic container.
type Meta struct {
	Title       string
	Category    string
	Description string
	Samples     string
}

// MakeScel composes a complete synthetic container: a header with the
// given mask byte, NUL padded metadata, the syllable table, zero padding
// up to the variant's word table offset, and the given blocks.
func MakeScel(mask byte, meta Meta, syllables []string, blocks ...[]byte) []byte {
	wordTableOffset := wordTableOffsetV1
	if mask == 0x45 {
		wordTableOffset = wordTableOffsetV2
	}

	b := make([]byte, wordTableOffset)
	b[4] = mask

	copy(b[titleOffset:categoryOffset], UTF16LE(meta.Title))
	copy(b[categoryOffset:descriptionOffset], UTF16LE(meta.Category))
	copy(b[descriptionOffset:samplesOffset], UTF16LE(meta.Description))
	copy(b[samplesOffset:syllableCountOffset], UTF16LE(meta.Samples))

	//nolint:gosec // test code, table is small.
	binary.LittleEndian.PutUint32(b[syllableCountOffset:], uint32(len(syllables)))
	copy(b[syllableTableOffset:], MakeSyllableTable(syllables))

	for _, block := range blocks {
		b = append(b, block...)
	}
	return b
}
