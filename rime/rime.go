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

// Package rime emits decoded cell dictionary words as tab-separated text
// and merges them into Rime user dictionaries.
//
// A Rime dictionary file starts with a YAML header document terminated by
// a line consisting solely of "...", followed by tab-separated records of
// word, pinyin and optional weight. Package rime owns no knowledge of the
// .scel binary format.
package rime

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-scel/phrase"
)

// headerTerminator ends the YAML header document of a Rime dictionary.
const headerTerminator = "..."

// Placeholders recognized in header template files.
const (
	placeholderSourceFile = "__source_file__"
	placeholderDictName   = "__dict_name__"
)

// Header is the YAML header document of a generated Rime dictionary.
type Header struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Sort    string `yaml:"sort"`
}

// Render renders the header as a YAML document. sourceFile names the
// converted file in a leading comment.
func (h *Header) Render(sourceFile string) (string, error) {
	body, err := yaml.Marshal(h)
	if err != nil {
		return "", fmt.Errorf("marshaling header: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# generated from %s\n", sourceFile)
	b.WriteString("---\n")
	b.Write(body)
	b.WriteString(headerTerminator)
	return b.String(), nil
}

// LoadHeaderTemplate reads a header template file and substitutes the
// source file and dictionary name placeholders.
func LoadHeaderTemplate(path, sourceFile, dictName string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading header template: %w", err)
	}
	header := string(b)
	header = strings.ReplaceAll(header, placeholderSourceFile, filepath.Base(sourceFile))
	header = strings.ReplaceAll(header, placeholderDictName, dictName)
	return strings.TrimSpace(header), nil
}

// TSV serializes words as tab-separated lines joined by newlines. Records
// have two fields, or three when frequency is set.
func TSV(words []*phrase.Word, frequency bool) string {
	lines := make([]string, 0, len(words))
	for _, w := range words {
		fields := []string{w.Text, w.Pinyin}
		if frequency {
			fields = append(fields, strconv.FormatUint(uint64(w.Frequency), 10))
		}
		lines = append(lines, strings.Join(fields, "\t"))
	}
	return strings.Join(lines, "\n")
}

// KnownWords collects the words already present in the dictionary files
// under dir. Only the first tab field of record lines after each file's
// header terminator is consulted.
func KnownWords(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary directory: %w", err)
	}

	words := map[string]struct{}{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := fileWords(filepath.Join(dir, entry.Name()), words); err != nil {
			return nil, err
		}
	}
	return words, nil
}

func fileWords(path string, words map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary %q: %w", path, err)
	}
	defer f.Close()

	inHeader := true
	s := bufio.NewScanner(bufio.NewReader(f))
	for s.Scan() {
		line := s.Text()
		if inHeader {
			if line == headerTerminator {
				inHeader = false
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		word, _, _ := strings.Cut(line, "\t")
		words[word] = struct{}{}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading dictionary %q: %w", path, err)
	}
	return nil
}
