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

// PathFlags is the raw path flag byte, preserved verbatim.
type PathFlags byte

const (
	pathFlagClosed       byte = 0x01
	pathFlagUsesCommands byte = 0x02
	pathFlagNoCurves     byte = 0x04
)

// IsClosed reports whether the CLOSED bit is set. This is a drawing
// hint for consumers; the decoder never closes the polyline itself.
func (f PathFlags) IsClosed() bool { return isSet(byte(f), pathFlagClosed) }

// UsesCommands reports whether the point stream is encoded as a
// bit-packed command header followed by per-command bodies, rather
// than a uniform run of one point kind.
func (f PathFlags) UsesCommands() bool { return isSet(byte(f), pathFlagUsesCommands) }

// NoCurves reports whether, for a path not using commands, every
// point is a Line rather than a Curve.
func (f PathFlags) NoCurves() bool { return isSet(byte(f), pathFlagNoCurves) }

// PointCommand is a single step in a path. It is implemented by
// HLine, VLine, Line and Curve.
type PointCommand interface {
	isPointCommand()
}

// HLine is a horizontal line to the given x, at the prior y.
type HLine struct{ X float32 }

func (HLine) isPointCommand() {}

// VLine is a vertical line to the given y, at the prior x.
type VLine struct{ Y float32 }

func (VLine) isPointCommand() {}

// Line is a straight line to P.
type Line struct{ P Point }

func (Line) isPointCommand() {}

// Curve is a cubic Bézier segment: In and Out are control points, P
// is the on-curve endpoint.
type Curve struct {
	In, P, Out Point
}

func (Curve) isPointCommand() {}

// Path is an ordered sequence of point-commands describing a 2D curve.
type Path struct {
	Flags  PathFlags
	Points []PointCommand
}

func readPath(r *reader) (Path, error) {
	flagsByte, err := r.u8()
	if err != nil {
		return Path{}, err
	}
	flags := PathFlags(flagsByte)

	n, err := r.u8()
	if err != nil {
		return Path{}, err
	}

	var points []PointCommand
	switch {
	case flags.UsesCommands():
		points, err = readCommandStream(r, int(n))
	case flags.NoCurves():
		points, err = readLineStream(r, int(n))
	default:
		points, err = readCurveStream(r, int(n))
	}
	if err != nil {
		return Path{}, err
	}

	return Path{Flags: flags, Points: points}, nil
}

// readCommandStream reads the bit-packed command header (ceil(n/4)
// bytes, four 2-bit codes per byte, low-order pair first) and then
// the n command bodies it selects.
func readCommandStream(r *reader, n int) ([]PointCommand, error) {
	headerLen := (n + 3) / 4
	header, err := r.bytes(headerLen)
	if err != nil {
		return nil, err
	}

	points := make([]PointCommand, 0, n)
	for i := 0; i < n; i++ {
		b := header[i/4]
		code := (b >> uint((i%4)*2)) & 0x3

		var cmd PointCommand
		switch code {
		case 0:
			x, err := r.coord()
			if err != nil {
				return nil, err
			}
			cmd = HLine{X: x}
		case 1:
			y, err := r.coord()
			if err != nil {
				return nil, err
			}
			cmd = VLine{Y: y}
		case 2:
			p, err := readPoint(r)
			if err != nil {
				return nil, err
			}
			cmd = Line{P: p}
		case 3:
			p, err := readPoint(r)
			if err != nil {
				return nil, err
			}
			in, err := readPoint(r)
			if err != nil {
				return nil, err
			}
			out, err := readPoint(r)
			if err != nil {
				return nil, err
			}
			cmd = Curve{In: in, P: p, Out: out}
		default:
			return nil, &DecodeError{Kind: UnknownCommandCode, Pos: r.pos, Tag: code}
		}
		points = append(points, cmd)
	}
	return points, nil
}

func readLineStream(r *reader, n int) ([]PointCommand, error) {
	points := make([]PointCommand, 0, n)
	for i := 0; i < n; i++ {
		p, err := readPoint(r)
		if err != nil {
			return nil, err
		}
		points = append(points, Line{P: p})
	}
	return points, nil
}

func readCurveStream(r *reader, n int) ([]PointCommand, error) {
	points := make([]PointCommand, 0, n)
	for i := 0; i < n; i++ {
		p, err := readPoint(r)
		if err != nil {
			return nil, err
		}
		in, err := readPoint(r)
		if err != nil {
			return nil, err
		}
		out, err := readPoint(r)
		if err != nil {
			return nil, err
		}
		points = append(points, Curve{In: in, P: p, Out: out})
	}
	return points, nil
}
