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

// magic spells "ncif" on disk despite the format being called HVIF;
// do not rename.
var magic = [4]byte{'n', 'c', 'i', 'f'}

// Icon is the decoded value tree for one HVIF icon. Styles, Paths and
// Shapes are ordered; Shapes reference Styles and Paths by zero-based
// positional index.
type Icon struct {
	Styles []Style
	Paths  []Path
	Shapes []Shape

	// TrailingBytes is the number of input bytes left unread after
	// the shape list. The decoder does not require the input to end
	// exactly at the shape list.
	TrailingBytes int
}

// Decode parses data as an HVIF icon. It performs no I/O and retains
// no reference to data after returning; on error the returned Icon is
// nil and no partial result is exposed.
func Decode(data []byte) (*Icon, error) {
	r := newReader(data)

	magicBytes, err := r.bytes(4)
	if err != nil {
		return nil, err
	}
	if magicBytes[0] != magic[0] || magicBytes[1] != magic[1] ||
		magicBytes[2] != magic[2] || magicBytes[3] != magic[3] {
		return nil, &DecodeError{Kind: BadMagic, Pos: 0}
	}

	nStyles, err := r.u8()
	if err != nil {
		return nil, err
	}
	styles := make([]Style, 0, nStyles)
	for i := byte(0); i < nStyles; i++ {
		s, err := readStyle(r)
		if err != nil {
			return nil, err
		}
		styles = append(styles, s)
	}

	nPaths, err := r.u8()
	if err != nil {
		return nil, err
	}
	paths := make([]Path, 0, nPaths)
	for i := byte(0); i < nPaths; i++ {
		p, err := readPath(r)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	nShapes, err := r.u8()
	if err != nil {
		return nil, err
	}
	shapes := make([]Shape, 0, nShapes)
	for i := byte(0); i < nShapes; i++ {
		s, err := readShape(r)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}

	return &Icon{
		Styles:        styles,
		Paths:         paths,
		Shapes:        shapes,
		TrailingBytes: len(data) - r.pos,
	}, nil
}
