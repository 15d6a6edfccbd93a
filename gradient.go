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

// GradientKind selects the geometric shape a Gradient paints.
type GradientKind byte

const (
	GradientLinear   GradientKind = 0
	GradientCircular GradientKind = 1
	GradientDiamond  GradientKind = 2
	GradientConic    GradientKind = 3
	GradientXY       GradientKind = 4
	GradientSqrtXY   GradientKind = 5
)

// GradientFlags is the raw gradient flag byte, preserved verbatim.
type GradientFlags byte

const (
	gradientFlagTransform   byte = 0x01
	gradientFlagNoAlpha     byte = 0x02
	gradientFlagColors16Bit byte = 0x04
	gradientFlagGrays       byte = 0x08
)

// HasTransform reports whether the TRANSFORM bit is set. The bit is
// accepted and preserved but causes no extra bytes to be read.
func (f GradientFlags) HasTransform() bool { return isSet(byte(f), gradientFlagTransform) }

// HasNoAlpha reports whether the NO_ALPHA bit is set: every stop's
// alpha is implicitly 255 and no alpha byte is read on the wire.
func (f GradientFlags) HasNoAlpha() bool { return isSet(byte(f), gradientFlagNoAlpha) }

// Has16BitColors reports whether the COLORS_16BIT bit is set. The bit
// is accepted and preserved but causes no extra bytes to be read.
func (f GradientFlags) Has16BitColors() bool { return isSet(byte(f), gradientFlagColors16Bit) }

// HasGrays reports whether the GRAYS bit is set: every stop reads a
// single color byte instead of three, with r=g=b=v.
func (f GradientFlags) HasGrays() bool { return isSet(byte(f), gradientFlagGrays) }

// GradientStop is one color stop along a Gradient.
type GradientStop struct {
	Offset     byte
	R, G, B, A byte
}

// Gradient is a multi-stop paint source.
type Gradient struct {
	Kind  GradientKind
	Flags GradientFlags
	Stops []GradientStop
}

func (Gradient) isStyle() {}

func readGradient(r *reader) (Style, error) {
	kindPos := r.pos
	kindByte, err := r.u8()
	if err != nil {
		return nil, err
	}
	if kindByte > byte(GradientSqrtXY) {
		return nil, &DecodeError{Kind: UnknownGradientKind, Pos: kindPos, Tag: kindByte}
	}
	kind := GradientKind(kindByte)

	flagsByte, err := r.u8()
	if err != nil {
		return nil, err
	}
	flags := GradientFlags(flagsByte)

	n, err := r.u8()
	if err != nil {
		return nil, err
	}

	stops := make([]GradientStop, 0, n)
	for i := byte(0); i < n; i++ {
		offset, err := r.u8()
		if err != nil {
			return nil, err
		}

		var red, green, blue byte
		if flags.HasGrays() {
			v, err := r.u8()
			if err != nil {
				return nil, err
			}
			red, green, blue = v, v, v
		} else {
			rgb, err := r.bytes(3)
			if err != nil {
				return nil, err
			}
			red, green, blue = rgb[0], rgb[1], rgb[2]
		}

		alpha := byte(255)
		if !flags.HasNoAlpha() {
			alpha, err = r.u8()
			if err != nil {
				return nil, err
			}
		}

		stops = append(stops, GradientStop{Offset: offset, R: red, G: green, B: blue, A: alpha})
	}

	return Gradient{Kind: kind, Flags: flags, Stops: stops}, nil
}
