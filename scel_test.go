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
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-scel/internal/testutil"
	"github.com/ianlewis/go-scel/phrase"
)

var testSyllables = []string{"a", "ai", "an", "ni", "ao", "ba", "bai", "hao", "zuo"}

var testMeta = testutil.Meta{
	Title:       "测试词库",
	Category:    "测试",
	Description: "A test cell dictionary.",
	Samples:     "你好",
}

// writeScel writes a synthetic container to a temporary file.
func writeScel(t *testing.T, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.scel")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_metadata(t *testing.T) {
	d, err := Open(writeScel(t, testutil.MakeScel(0x44, testMeta, testSyllables)))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if want, got := testMeta.Title, d.Title(); want != got {
		t.Errorf("unexpected title; want: %q, got: %q", want, got)
	}
	if want, got := testMeta.Category, d.Category(); want != got {
		t.Errorf("unexpected category; want: %q, got: %q", want, got)
	}
	if want, got := testMeta.Description, d.Description(); want != got {
		t.Errorf("unexpected description; want: %q, got: %q", want, got)
	}
	if want, got := testMeta.Samples, d.Samples(); want != got {
		t.Errorf("unexpected samples; want: %q, got: %q", want, got)
	}
}

func TestOpen_unsupportedMask(t *testing.T) {
	_, err := Open(writeScel(t, testutil.MakeScel(0x99, testMeta, testSyllables)))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("unexpected error; want: %v, got: %v", ErrUnsupportedFormat, err)
	}
}

func TestOpen_truncatedHeader(t *testing.T) {
	_, err := Open(writeScel(t, make([]byte, 64)))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("unexpected error; want: %v, got: %v", io.ErrUnexpectedEOF, err)
	}
}

// TestWords decodes the same word table behind both header variants; each
// mask selects a different word table offset.
func TestWords(t *testing.T) {
	expected := []*phrase.Word{
		{Text: "你好", Pinyin: "ni hao", Frequency: 42},
		{Text: "好", Pinyin: "hao", Frequency: 7},
	}

	for _, mask := range []byte{0x44, 0x45} {
		t.Run(maskName(mask), func(t *testing.T) {
			b := testutil.MakeScel(mask, testMeta, testSyllables,
				testutil.MakeBlock([]uint16{3, 7}, []testutil.WordSpec{
					{Text: "你好", Frequency: 42},
				}),
				testutil.MakeBlock([]uint16{7}, []testutil.WordSpec{
					{Text: "好", Frequency: 7},
				}),
			)

			d, err := Open(writeScel(t, b))
			if err != nil {
				t.Fatal(err)
			}
			defer d.Close()

			syllables, err := d.Syllables()
			if err != nil {
				t.Fatal(err)
			}
			if want, got := len(testSyllables), syllables.Len(); want != got {
				t.Errorf("unexpected # of syllables; want: %d, got: %d", want, got)
			}

			words, err := d.Words(&WordOptions{Frequency: true})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(expected, words); diff != "" {
				t.Errorf("unexpected words (-want, +got):\n%s", diff)
			}

			// Decoding is deterministic; a second pass yields identical
			// records.
			again, err := d.Words(&WordOptions{Frequency: true})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(words, again); diff != "" {
				t.Errorf("second decode differs (-first, +second):\n%s", diff)
			}
		})
	}
}

func TestWords_corruptTable(t *testing.T) {
	b := testutil.MakeScel(0x44, testMeta, testSyllables,
		testutil.MakeBlock([]uint16{3}, []testutil.WordSpec{
			{Text: "你"},
		}),
	)
	// Chop the final byte so the last block straddles end of file.
	b = b[:len(b)-1]

	d, err := Open(writeScel(t, b))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if _, err := d.Words(nil); !errors.Is(err, phrase.ErrCorruptTable) {
		t.Fatalf("unexpected error; want: %v, got: %v", phrase.ErrCorruptTable, err)
	}
}

func maskName(mask byte) string {
	if mask == 0x44 {
		return "mask 0x44"
	}
	return "mask 0x45"
}
