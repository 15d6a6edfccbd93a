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

package hvif

import "golang.org/x/exp/slices"

// IndexError reports a single out-of-range style or path reference
// found by (*Icon).ReferenceReport.
type IndexError struct {
	ShapeIndex int
	// Field is either "style" or "path".
	Field string
	Index int
	Limit int
}

// ReferenceReport walks every shape and reports style_index and
// path_indices values that are out of range against the icon's own
// style and path lists. The decoder does not enforce these bounds
// itself (malformed inputs still decode); this is an opt-in query for
// callers and tests.
func (icon *Icon) ReferenceReport() []IndexError {
	var errs []IndexError

	for shapeIdx, shape := range icon.Shapes {
		if int(shape.StyleIndex) >= len(icon.Styles) {
			errs = append(errs, IndexError{
				ShapeIndex: shapeIdx,
				Field:      "style",
				Index:      int(shape.StyleIndex),
				Limit:      len(icon.Styles),
			})
		}

		var badPaths []int
		for _, p := range shape.PathIndices {
			if int(p) >= len(icon.Paths) {
				badPaths = append(badPaths, int(p))
			}
		}
		if len(badPaths) == 0 {
			continue
		}
		slices.Sort(badPaths)
		badPaths = slices.Compact(badPaths)
		for _, p := range badPaths {
			errs = append(errs, IndexError{
				ShapeIndex: shapeIdx,
				Field:      "path",
				Index:      p,
				Limit:      len(icon.Paths),
			})
		}
	}

	return errs
}
