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

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-scel"
	"github.com/ianlewis/go-scel/rime"
)

var convertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "Convert a cell dictionary to tab-separated text",
	ArgsUsage: "FILE",
	Description: strings.Join([]string{
		"Convert a cell dictionary to a tab-separated word/pinyin text file.",
		"When --rime-dir is given the words are also merged into the Rime",
		"user directory as a dictionary, skipping words that are already",
		"present in an existing dictionary file there.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write converted text to `FILE` (default: the dictionary title + .txt)",
			Aliases: []string{"o"},
		},
		&cli.BoolFlag{
			Name:    "frequency",
			Usage:   "use the first integer of each word's extension region as its frequency",
			Aliases: []string{"f"},
		},
		&cli.StringFlag{
			Name:    "rime-dir",
			Usage:   "merge words into the Rime user directory `DIR`",
			Aliases: []string{"u"},
		},
		&cli.StringFlag{
			Name:    "dict-name",
			Usage:   "name of the generated Rime dictionary; required with --rime-dir",
			Aliases: []string{"d"},
		},
		&cli.StringFlag{
			Name:  "header",
			Usage: "Rime header template `FILE` with __source_file__ and __dict_name__ placeholders",
		},
		&cli.StringFlag{
			Name:  "dict-version",
			Usage: "`VERSION` recorded in the generated Rime header",
			Value: "1.0",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: exactly one input file expected", ErrFlagParse)
		}
		path := c.Args().First()
		rimeDir := c.String("rime-dir")
		dictName := c.String("dict-name")
		if rimeDir != "" && dictName == "" {
			return fmt.Errorf("%w: --dict-name is required with --rime-dir", ErrFlagParse)
		}

		cfg, err := readEnvConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		d, err := scel.Open(path)
		if err != nil {
			return err
		}
		defer d.Close()

		logger.Info("cell dictionary metadata",
			zap.String("title", d.Title()),
			zap.String("category", d.Category()),
			zap.String("description", d.Description()),
			zap.String("samples", d.Samples()),
		)

		frequency := c.Bool("frequency")
		words, err := d.Words(&scel.WordOptions{Frequency: frequency})
		if err != nil {
			return err
		}

		output := c.String("output")
		if output == "" {
			output = d.Title() + ".txt"
		}

		w := rime.NewWriter(&rime.Options{Logger: logger})
		if err := w.WriteText(output, words, frequency); err != nil {
			return err
		}

		if rimeDir == "" {
			return nil
		}

		header, err := dictHeader(c.String("header"), path, dictName, c.String("dict-version"))
		if err != nil {
			return err
		}
		added, err := w.WriteDict(rimeDir, dictName, header, words, frequency)
		if err != nil {
			return err
		}
		if added > 0 {
			logger.Info("dictionary written; remount and redeploy Rime to pick it up",
				zap.String("dict", dictName),
				zap.Int("added", added),
			)
		}

		return nil
	},
}

// dictHeader renders the Rime dictionary header, from the given template
// file if one was provided. Rendering depends only on its arguments so
// converting the same input repeatedly produces identical dictionaries.
func dictHeader(templatePath, sourceFile, dictName, version string) (string, error) {
	if templatePath != "" {
		return rime.LoadHeaderTemplate(templatePath, sourceFile, dictName)
	}
	h := rime.Header{
		Name:    dictName,
		Version: version,
		Sort:    "by_weight",
	}
	return h.Render(filepath.Base(sourceFile))
}
