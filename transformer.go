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

const (
	transformerTagAffine      = 20
	transformerTagContour     = 21
	transformerTagPerspective = 22
	transformerTagStroke      = 23
)

// Transformer is a per-shape stroke-family operator. It is
// implemented by Affine, Contour, Perspective and Stroke.
type Transformer interface {
	isTransformer()
}

// Affine applies an additional affine matrix within a transformer list.
type Affine struct{ M Matrix }

func (Affine) isTransformer() {}

// Contour offsets a path outline by Width.
type Contour struct {
	Width      float32
	LineJoin   byte
	MiterLimit byte
}

func (Contour) isTransformer() {}

// Perspective applies a perspective transform; it carries no
// additional parameters on the wire.
type Perspective struct{}

func (Perspective) isTransformer() {}

// Stroke converts a path into its stroke outline.
//
// LineCap is computed as (lineOpts << 4) & 0xFF, discarding any
// overflow out of the low nibble rather than packing a separate cap
// nibble — an asymmetry with LineJoin inherited unchanged from the
// source format; see DESIGN.md open question 2.
type Stroke struct {
	Width                         float32
	LineJoin, LineCap, MiterLimit byte
}

func (Stroke) isTransformer() {}

func readTransformer(r *reader) (Transformer, error) {
	tagPos := r.pos
	tag, err := r.u8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case transformerTagAffine:
		m, err := readMatrix(r)
		if err != nil {
			return nil, err
		}
		return Affine{M: m}, nil
	case transformerTagContour:
		b, err := r.bytes(3)
		if err != nil {
			return nil, err
		}
		return Contour{
			Width:      float32(b[0]) - 128.0,
			LineJoin:   b[1],
			MiterLimit: b[2],
		}, nil
	case transformerTagPerspective:
		return Perspective{}, nil
	case transformerTagStroke:
		b, err := r.bytes(3)
		if err != nil {
			return nil, err
		}
		lineOpts := b[1]
		return Stroke{
			Width:      float32(b[0]) - 128.0,
			LineJoin:   lineOpts & 0x0F,
			LineCap:    (lineOpts << 4) & 0xFF,
			MiterLimit: b[2],
		}, nil
	default:
		return nil, &DecodeError{Kind: UnknownTransformerTag, Pos: tagPos, Tag: tag}
	}
}
