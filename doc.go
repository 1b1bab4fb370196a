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

// Package scel implements a library for reading Sogou pinyin "cell
// dictionary" (.scel) files in pure Go.
//
// A cell dictionary is a single binary container laid out in fixed regions:
//  1. A 128 byte header. The byte at offset 4 (the "mask byte")
//     distinguishes the two known container variants and determines where
//     the word table starts.
//  2. Four fixed-offset UTF-16LE metadata fields starting at offset 0x130:
//     title, category, description and example words.
//  3. A global syllable table at offset 0x1544 mapping small integer
//     indices to romanized pinyin syllables. The table always ends with the
//     syllable "zuo", the last entry of the pinyin syllable inventory.
//  4. A word table, at offset 0x2628 or 0x26C4 depending on the mask byte,
//     made up of homophone blocks. Each block names its pronunciation as a
//     list of syllable table indices followed by one or more words sharing
//     that pronunciation. Every word carries a 12 byte extension region
//     whose leading integer is believed to be a usage frequency.
//
// All integers are little-endian and all text is UTF-16LE. The format is
// decode-only; writing .scel files is not supported.
package scel
