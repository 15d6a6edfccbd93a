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

import "testing"

func TestReadTransformerContour(t *testing.T) {
	tr, err := readTransformer(newReader([]byte{21, 0x90, 0x02, 0x04}))
	if err != nil {
		t.Fatalf("readTransformer: %v", err)
	}
	want := Contour{Width: float32(0x90) - 128.0, LineJoin: 0x02, MiterLimit: 0x04}
	if tr != want {
		t.Errorf("got %+v, want %+v", tr, want)
	}
}

func TestReadTransformerStrokeCapJoinPacking(t *testing.T) {
	// lineOpts = 0b1010_0011: low nibble (join) = 0x3, high nibble after
	// shift (cap) = (0xA3 << 4) & 0xFF = 0x30.
	lineOpts := byte(0xA3)
	tr, err := readTransformer(newReader([]byte{23, 0x90, lineOpts, 0x07}))
	if err != nil {
		t.Fatalf("readTransformer: %v", err)
	}
	want := Stroke{
		Width:      float32(0x90) - 128.0,
		LineJoin:   0x03,
		LineCap:    0x30,
		MiterLimit: 0x07,
	}
	if tr != want {
		t.Errorf("got %+v, want %+v", tr, want)
	}
}

func TestReadTransformerPerspectiveNoBody(t *testing.T) {
	r := newReader([]byte{22})
	tr, err := readTransformer(r)
	if err != nil {
		t.Fatalf("readTransformer: %v", err)
	}
	if _, ok := tr.(Perspective); !ok {
		t.Errorf("got %T, want Perspective", tr)
	}
	if r.pos != 1 {
		t.Errorf("consumed %d bytes, want 1", r.pos)
	}
}

func TestReadTransformerUnknownTag(t *testing.T) {
	_, err := readTransformer(newReader([]byte{99}))
	var decErr *DecodeError
	if !asDecodeError(err, &decErr) || decErr.Kind != UnknownTransformerTag {
		t.Errorf("got %v, want UnknownTransformerTag", err)
	}
}
