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

package bin

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReadUint16(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected uint16
		err      error
	}{
		{
			name:     "little endian",
			data:     []byte{0x28, 0x26},
			expected: 0x2628,
		},
		{
			name:     "zero",
			data:     []byte{0x00, 0x00},
			expected: 0,
		},
		{
			name: "empty",
			data: nil,
			err:  io.ErrUnexpectedEOF,
		},
		{
			name: "one byte",
			data: []byte{0x28},
			err:  io.ErrUnexpectedEOF,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := ReadUint16(bytes.NewReader(test.data))
			if !errors.Is(err, test.err) {
				t.Fatalf("unexpected error; want: %v, got: %v", test.err, err)
			}
			if err == nil && v != test.expected {
				t.Errorf("unexpected value; want: %d, got: %d", test.expected, v)
			}
		})
	}
}

func TestReadUTF16(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		n        int
		expected string
		err      error
	}{
		{
			name:     "ascii",
			data:     []byte{'z', 0, 'u', 0, 'o', 0},
			n:        6,
			expected: "zuo",
		},
		{
			name:     "trailing nul trimmed",
			data:     []byte{'n', 0, 'i', 0, 0, 0, 0, 0},
			n:        8,
			expected: "ni",
		},
		{
			name:     "cjk",
			data:     []byte{0x60, 0x4F, 0x7D, 0x59}, // 你好
			n:        4,
			expected: "你好",
		},
		{
			name:     "empty",
			data:     nil,
			n:        0,
			expected: "",
		},
		{
			name:     "surrogate pair",
			data:     []byte{0x34, 0xD8, 0x1E, 0xDD}, // 𝄞 (U+1D11E)
			n:        4,
			expected: "\U0001D11E",
		},
		{
			name:     "literal replacement character",
			data:     []byte{0xFD, 0xFF},
			n:        2,
			expected: "�",
		},
		{
			name: "odd length",
			data: []byte{'a', 0, 'b'},
			n:    3,
			err:  ErrInvalidEncoding,
		},
		{
			name: "lone high surrogate",
			data: []byte{0x00, 0xD8},
			n:    2,
			err:  ErrInvalidEncoding,
		},
		{
			name: "lone low surrogate",
			data: []byte{0x00, 0xDC},
			n:    2,
			err:  ErrInvalidEncoding,
		},
		{
			name: "high surrogate followed by non-surrogate",
			data: []byte{0x00, 0xD8, 'a', 0x00},
			n:    4,
			err:  ErrInvalidEncoding,
		},
		{
			name: "high surrogate at end of region",
			data: []byte{'a', 0x00, 0x00, 0xD8},
			n:    4,
			err:  ErrInvalidEncoding,
		},
		{
			name: "short read",
			data: []byte{'a', 0},
			n:    4,
			err:  io.ErrUnexpectedEOF,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := ReadUTF16(bytes.NewReader(test.data), test.n)
			if !errors.Is(err, test.err) {
				t.Fatalf("unexpected error; want: %v, got: %v", test.err, err)
			}
			if err == nil && s != test.expected {
				t.Errorf("unexpected string; want: %q, got: %q", test.expected, s)
			}
		})
	}
}

func TestReadUTF16At(t *testing.T) {
	data := append(make([]byte, 16), 'h', 0, 'a', 0, 'o', 0)

	s, err := ReadUTF16At(bytes.NewReader(data), 16, 6)
	if err != nil {
		t.Fatal(err)
	}
	if want, got := "hao", s; want != got {
		t.Errorf("unexpected string; want: %q, got: %q", want, got)
	}

	// A read past the end of the stream is a truncation.
	if _, err := ReadUTF16At(bytes.NewReader(data), 20, 6); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("unexpected error; want: %v, got: %v", io.ErrUnexpectedEOF, err)
	}
}
