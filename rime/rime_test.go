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

package rime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianlewis/go-scel/phrase"
)

var testWords = []*phrase.Word{
	{Text: "你好", Pinyin: "ni hao", Frequency: 42},
	{Text: "好", Pinyin: "hao", Frequency: 7},
}

func TestTSV(t *testing.T) {
	assert.Equal(t, "你好\tni hao\n好\thao", TSV(testWords, false))
	assert.Equal(t, "你好\tni hao\t42\n好\thao\t7", TSV(testWords, true))
	assert.Equal(t, "", TSV(nil, false))
}

func TestHeader_Render(t *testing.T) {
	h := Header{
		Name:    "mydict",
		Version: "2025.01.02",
		Sort:    "by_weight",
	}

	header, err := h.Render("input.scel")
	require.NoError(t, err)

	assert.Equal(t, `# generated from input.scel
---
name: mydict
version: 2025.01.02
sort: by_weight
...`, header)
}

func TestLoadHeaderTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`# generated from __source_file__
---
name: __dict_name__
...
`), 0o600))

	header, err := LoadHeaderTemplate(path, "/some/dir/input.scel", "mydict")
	require.NoError(t, err)

	assert.Equal(t, `# generated from input.scel
---
name: mydict
...`, header)
}

func TestKnownWords(t *testing.T) {
	dir := t.TempDir()

	// Words before the header terminator must be ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dict.yaml"), []byte(`---
name: a
...
你好	ni hao	42
世界	shi jie	7

`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.dict.yaml"), []byte(`---
name: b
...
好	hao
`), 0o600))

	words, err := KnownWords(dir)
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{
		"你好": {},
		"世界": {},
		"好":  {},
	}, words)
}

func TestKnownWords_noTerminator(t *testing.T) {
	dir := t.TempDir()

	// A file with no terminator contributes nothing.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dict.yaml"), []byte("你好\tni hao\n"), 0o600))

	words, err := KnownWords(dir)
	require.NoError(t, err)
	assert.Empty(t, words)
}
