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

// StyleType is the 1-byte wire tag that selects a Style variant.
type StyleType byte

const (
	StyleTypeSolidColor       StyleType = 1
	StyleTypeGradient         StyleType = 2
	StyleTypeSolidColorOpaque StyleType = 3
	StyleTypeSolidGray        StyleType = 4
	StyleTypeSolidGrayOpaque  StyleType = 5
)

// Style is a paint source referenced by index from a shape. It is
// implemented by SolidColor, SolidColorOpaque, SolidGray,
// SolidGrayOpaque and Gradient.
type Style interface {
	isStyle()
}

// StyleKind returns the wire tag that produced s. Gradient already
// carries its own Kind field for the gradient shape, so this is a
// free function rather than a method to avoid shadowing it.
func StyleKind(s Style) StyleType {
	switch s.(type) {
	case SolidColor:
		return StyleTypeSolidColor
	case Gradient:
		return StyleTypeGradient
	case SolidColorOpaque:
		return StyleTypeSolidColorOpaque
	case SolidGray:
		return StyleTypeSolidGray
	case SolidGrayOpaque:
		return StyleTypeSolidGrayOpaque
	default:
		panic("hvif: unreachable style type")
	}
}

// SolidColor is an RGBA solid fill; the wire order of its leading
// bytes is A,R,G,B.
type SolidColor struct {
	R, G, B, A byte
}

func (SolidColor) isStyle() {}

// SolidColorOpaque is an RGB solid fill with alpha fixed at 255.
type SolidColorOpaque struct {
	R, G, B byte
}

func (SolidColorOpaque) isStyle() {}

// SolidGray is a solid fill where R, G and B are all equal to V.
type SolidGray struct {
	V, A byte
}

func (SolidGray) isStyle() {}

// SolidGrayOpaque is a SolidGray with alpha fixed at 255.
type SolidGrayOpaque struct {
	V byte
}

func (SolidGrayOpaque) isStyle() {}

func readStyle(r *reader) (Style, error) {
	tagPos := r.pos
	tag, err := r.u8()
	if err != nil {
		return nil, err
	}
	switch StyleType(tag) {
	case StyleTypeSolidColor:
		b, err := r.bytes(4)
		if err != nil {
			return nil, err
		}
		return SolidColor{R: b[1], G: b[2], B: b[3], A: b[0]}, nil
	case StyleTypeGradient:
		return readGradient(r)
	case StyleTypeSolidColorOpaque:
		b, err := r.bytes(3)
		if err != nil {
			return nil, err
		}
		return SolidColorOpaque{R: b[0], G: b[1], B: b[2]}, nil
	case StyleTypeSolidGray:
		b, err := r.bytes(2)
		if err != nil {
			return nil, err
		}
		return SolidGray{A: b[0], V: b[1]}, nil
	case StyleTypeSolidGrayOpaque:
		v, err := r.u8()
		if err != nil {
			return nil, err
		}
		return SolidGrayOpaque{V: v}, nil
	default:
		return nil, &DecodeError{Kind: UnknownStyleTag, Pos: tagPos, Tag: tag}
	}
}
