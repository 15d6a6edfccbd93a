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

const shapeTagPathSource = 0x0A

// ShapeFlags is the raw shape flag byte, preserved verbatim.
type ShapeFlags byte

const (
	shapeFlagTransform   byte = 0x01
	shapeFlagHinting     byte = 0x02
	shapeFlagLodScale    byte = 0x04
	shapeFlagTransformer byte = 0x08
	shapeFlagTranslation byte = 0x10
)

func (f ShapeFlags) HasTransform() bool    { return isSet(byte(f), shapeFlagTransform) }
func (f ShapeFlags) HasHinting() bool      { return isSet(byte(f), shapeFlagHinting) }
func (f ShapeFlags) HasLodScale() bool     { return isSet(byte(f), shapeFlagLodScale) }
func (f ShapeFlags) HasTransformers() bool { return isSet(byte(f), shapeFlagTransformer) }
func (f ShapeFlags) HasTranslation() bool  { return isSet(byte(f), shapeFlagTranslation) }

// ShapeModifier is an optional per-shape annotation. It is
// implemented by Hinting, Transform, Translate, LodScale and
// Transformers.
type ShapeModifier interface {
	isShapeModifier()
}

// Hinting marks that pixel-grid hinting should apply; it carries no
// data of its own.
type Hinting struct{}

func (Hinting) isShapeModifier() {}

// Transform overrides the shape's coordinate space with an affine
// matrix.
type Transform struct{ M Matrix }

func (Transform) isShapeModifier() {}

// Translate offsets the shape by P.
type Translate struct{ P Point }

func (Translate) isShapeModifier() {}

// LodScale clamps the range of scale factors at which the shape is
// drawn.
type LodScale struct{ Min, Max float32 }

func (LodScale) isShapeModifier() {}

// Transformers carries an ordered list of stroke-family operators.
type Transformers struct{ List []Transformer }

func (Transformers) isShapeModifier() {}

// Shape binds one style to one or more paths, with optional
// modifiers.
type Shape struct {
	StyleIndex  byte
	PathIndices []byte
	Flags       ShapeFlags
	Modifiers   []ShapeModifier
}

func readShape(r *reader) (Shape, error) {
	tagPos := r.pos
	tag, err := r.u8()
	if err != nil {
		return Shape{}, err
	}
	if tag != shapeTagPathSource {
		return Shape{}, &DecodeError{Kind: UnknownShapeTag, Pos: tagPos, Tag: tag}
	}

	styleIndex, err := r.u8()
	if err != nil {
		return Shape{}, err
	}

	m, err := r.u8()
	if err != nil {
		return Shape{}, err
	}
	pathIndices, err := r.bytes(int(m))
	if err != nil {
		return Shape{}, err
	}
	// copy out of the reader's backing slice: the decoder does not
	// retain references to the input bytes.
	pathIndicesCopy := append([]byte(nil), pathIndices...)

	flagsByte, err := r.u8()
	if err != nil {
		return Shape{}, err
	}
	flags := ShapeFlags(flagsByte)

	var modifiers []ShapeModifier

	if flags.HasHinting() {
		modifiers = append(modifiers, Hinting{})
	}
	if flags.HasTransform() {
		mat, err := readMatrix(r)
		if err != nil {
			return Shape{}, err
		}
		modifiers = append(modifiers, Transform{M: mat})
	}
	if flags.HasTranslation() {
		p, err := readPoint(r)
		if err != nil {
			return Shape{}, err
		}
		modifiers = append(modifiers, Translate{P: p})
	}
	if flags.HasLodScale() {
		uv, err := r.bytes(2)
		if err != nil {
			return Shape{}, err
		}
		modifiers = append(modifiers, LodScale{
			Min: float32(uv[0]) / 63.75,
			Max: float32(uv[1]) / 63.75,
		})
	}
	if flags.HasTransformers() {
		k, err := r.u8()
		if err != nil {
			return Shape{}, err
		}
		list := make([]Transformer, 0, k)
		for i := byte(0); i < k; i++ {
			t, err := readTransformer(r)
			if err != nil {
				return Shape{}, err
			}
			list = append(list, t)
		}
		modifiers = append(modifiers, Transformers{List: list})
	}

	return Shape{
		StyleIndex:  styleIndex,
		PathIndices: pathIndicesCopy,
		Flags:       flags,
		Modifiers:   modifiers,
	}, nil
}
