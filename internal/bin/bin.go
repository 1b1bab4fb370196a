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

// Package bin implements the primitive reads shared by the .scel region
// parsers: little-endian 16-bit integers and NUL-padded UTF-16LE strings.
package bin

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding indicates that a byte region is not valid UTF-16LE.
var ErrInvalidEncoding = errors.New("invalid UTF-16LE data")

// .scel text carries no byte order marks; everything is little-endian.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ReadUint16 reads a little-endian unsigned 16-bit integer from r. A short
// read is reported as a wrapped [io.ErrUnexpectedEOF].
func ReadUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("reading uint16: %w", err)
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadUTF16 reads exactly n bytes from r and decodes them as UTF-16LE,
// trimming any trailing NUL padding. n must be even.
func ReadUTF16(r io.Reader, n int) (string, error) {
	if n%2 != 0 {
		return "", fmt.Errorf("%w: odd byte length %d", ErrInvalidEncoding, n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("reading %d byte string: %w", n, err)
	}
	// The x/text decoder substitutes U+FFFD for malformed code units
	// rather than failing, so surrogate pairing is validated up front.
	if !validUTF16(b) {
		return "", fmt.Errorf("%w: unpaired surrogate", ErrInvalidEncoding)
	}
	s, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return strings.TrimRight(string(s), "\x00"), nil
}

// Surrogate code unit ranges.
const (
	surr1 = 0xD800
	surr2 = 0xDC00
	surr3 = 0xE000
)

// validUTF16 reports whether the little-endian code units in b form valid
// UTF-16: every high surrogate is immediately followed by a low surrogate
// and no low surrogate appears on its own.
func validUTF16(b []byte) bool {
	for i := 0; i+2 <= len(b); i += 2 {
		switch u := binary.LittleEndian.Uint16(b[i:]); {
		case surr1 <= u && u < surr2:
			if i+4 > len(b) {
				return false
			}
			u2 := binary.LittleEndian.Uint16(b[i+2:])
			if u2 < surr2 || surr3 <= u2 {
				return false
			}
			i += 2
		case surr2 <= u && u < surr3:
			return false
		}
	}
	return true
}

// ReadUTF16At seeks to the absolute offset off and reads an n byte UTF-16LE
// string from there.
func ReadUTF16At(r io.ReadSeeker, off int64, n int) (string, error) {
	if _, err := r.Seek(off, io.SeekStart); err != nil {
		return "", fmt.Errorf("seeking to offset 0x%X: %w", off, err)
	}
	return ReadUTF16(r, n)
}
