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

import "strconv"

// ErrorKind identifies the structural reason a decode failed.
type ErrorKind int

const (
	BadMagic ErrorKind = iota
	UnexpectedEOF
	UnknownStyleTag
	UnknownGradientKind
	UnknownShapeTag
	UnknownTransformerTag
	UnknownCommandCode
)

func (k ErrorKind) String() string {
	switch k {
	case BadMagic:
		return "bad magic"
	case UnexpectedEOF:
		return "unexpected end of input"
	case UnknownStyleTag:
		return "unknown style tag"
	case UnknownGradientKind:
		return "unknown gradient kind"
	case UnknownShapeTag:
		return "unknown shape tag"
	case UnknownTransformerTag:
		return "unknown transformer tag"
	case UnknownCommandCode:
		return "unknown command code"
	default:
		return "unknown error"
	}
}

// DecodeError indicates that the input could not be decoded as an
// HVIF icon. Pos is the byte offset at which the problem was
// detected. Tag carries the offending byte for the Unknown* kinds; it
// is zero and meaningless for BadMagic and UnexpectedEOF.
type DecodeError struct {
	Kind ErrorKind
	Pos  int
	Tag  byte
}

func (err *DecodeError) Error() string {
	msg := "hvif: " + err.Kind.String()
	switch err.Kind {
	case UnknownStyleTag, UnknownGradientKind, UnknownShapeTag,
		UnknownTransformerTag, UnknownCommandCode:
		msg += " " + strconv.Itoa(int(err.Tag))
	}
	return msg + " (at byte " + strconv.Itoa(err.Pos) + ")"
}
