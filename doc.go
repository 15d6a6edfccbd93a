// github.com/haiku-icons/hvif - a decoder for the Haiku Vector Icon Format
// Copyright (C) 2026  Haiku Icons Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package hvif decodes the Haiku Vector Icon Format, a compact binary
// container for vector icons used throughout the Haiku operating system.
//
// An HVIF icon is a flat byte stream describing three ordered sequences —
// styles, paths and shapes — which reference each other by position. Decode
// reads such a stream in full and returns the decoded tree; it performs no
// I/O, no rendering, and does not rewind or re-read any part of the input.
package hvif
