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
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ianlewis/go-scel/phrase"
)

// dictsDir is the subdirectory of a Rime user directory holding Chinese
// dictionary files.
const dictsDir = "cn_dicts"

// dictExt is the file extension of Rime dictionary files.
const dictExt = ".dict.yaml"

// Options are options for a Writer.
type Options struct {
	// Logger receives diagnostics about merge decisions. It defaults to a
	// no-op logger.
	Logger *zap.Logger
}

// DefaultOptions is the default options for a Writer.
var DefaultOptions = &Options{}

// Writer writes converted dictionaries to disk.
type Writer struct {
	logger *zap.Logger
}

// NewWriter returns a new Writer.
func NewWriter(opts *Options) *Writer {
	if opts == nil {
		opts = DefaultOptions
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		logger: logger,
	}
}

// WriteText writes words to path as a flat tab-separated text file.
func (w *Writer) WriteText(path string, words []*phrase.Word, frequency bool) error {
	w.logger.Info("writing text file", zap.String("path", path), zap.Int("words", len(words)))
	return writeout(path, TSV(words, frequency))
}

// WriteDict merges words into the Rime user directory rimeDir as the
// dictionary dictName, skipping words already present in any existing
// dictionary file there. It returns the number of newly added words; zero
// means every word was already known and nothing was written.
func (w *Writer) WriteDict(rimeDir, dictName, header string, words []*phrase.Word, frequency bool) (int, error) {
	dir := filepath.Join(rimeDir, dictsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %q: %w", dir, err)
	}

	path := filepath.Join(dir, dictName+dictExt)
	if _, err := os.Stat(path); err == nil {
		w.logger.Warn("target dictionary exists and will be overwritten", zap.String("path", path))
	}

	known, err := KnownWords(dir)
	if err != nil {
		return 0, err
	}

	var fresh []*phrase.Word
	for _, word := range words {
		if _, ok := known[word.Text]; ok {
			w.logger.Debug("skipping duplicate word", zap.String("word", word.Text))
			continue
		}
		fresh = append(fresh, word)
	}
	if dups := len(words) - len(fresh); dups > 0 {
		w.logger.Info("removed duplicate words", zap.Int("duplicates", dups))
	}
	if len(fresh) == 0 {
		w.logger.Warn("all words already known, skipping", zap.String("dict", dictName))
		return 0, nil
	}

	w.logger.Info("writing dictionary", zap.String("path", path), zap.Int("words", len(fresh)))
	if err := writeout(path, header+"\n"+TSV(fresh, frequency)); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func writeout(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
