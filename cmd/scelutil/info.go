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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-scel"
)

var infoCommand = &cli.Command{
	Name:        "info",
	Usage:       "Print cell dictionary metadata",
	ArgsUsage:   "FILE...",
	Description: "Print a metadata summary for each cell dictionary file.",
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return fmt.Errorf("%w: no input file", ErrFlagParse)
		}

		tbl := table.New("TITLE", "CATEGORY", "SYLLABLES", "WORDS", "FILE")
		tbl.WithWriter(c.App.Writer)
		for _, path := range c.Args().Slice() {
			d, err := scel.Open(path)
			if err != nil {
				return err
			}

			syllables, err := d.Syllables()
			if err != nil {
				d.Close()
				return err
			}
			words, err := d.Words(nil)
			if err != nil {
				d.Close()
				return err
			}

			tbl.AddRow(d.Title(), d.Category(), syllables.Len(), len(words), path)
			if err := d.Close(); err != nil {
				return err
			}
		}
		tbl.Print()

		return nil
	},
}
