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

func TestCoordOneByte(t *testing.T) {
	r := newReader([]byte{0x40})
	v, err := r.coord()
	if err != nil {
		t.Fatalf("coord: %v", err)
	}
	if v != 32.0 {
		t.Errorf("got %v, want 32.0", v)
	}
	if r.pos != 1 {
		t.Errorf("consumed %d bytes, want 1", r.pos)
	}
}

func TestCoordTwoByteHighBitNotMasked(t *testing.T) {
	// b0=0x80 (high bit set, low bits zero), b1=0x00.
	// u16 = 0x8000 = 32768; value = 32768/102 - 128.
	r := newReader([]byte{0x80, 0x00})
	v, err := r.coord()
	if err != nil {
		t.Fatalf("coord: %v", err)
	}
	want := float32(32768)/102.0 - 128.0
	if v != want {
		t.Errorf("got %v, want %v", v, want)
	}
	if r.pos != 2 {
		t.Errorf("consumed %d bytes, want 2", r.pos)
	}
}

func TestCoordTruncated(t *testing.T) {
	r := newReader([]byte{0x80})
	_, err := r.coord()
	var decErr *DecodeError
	if !asDecodeError(err, &decErr) || decErr.Kind != UnexpectedEOF {
		t.Errorf("got %v, want UnexpectedEOF", err)
	}
}

func TestF24One(t *testing.T) {
	// sign=0, exp=31 (bias 31 -> base 0), mantissa=0: value = 2^0 = 1.0
	// w = exp<<17 = 31<<17 = 0x3E0000
	r := newReader([]byte{0x3E, 0x00, 0x00})
	v, err := r.f24()
	if err != nil {
		t.Fatalf("f24: %v", err)
	}
	if v != 1.0 {
		t.Errorf("got %v, want 1.0", v)
	}
}

func TestF24Negative(t *testing.T) {
	// sign bit set on top of the same pattern as TestF24One.
	r := newReader([]byte{0xBE, 0x00, 0x00})
	v, err := r.f24()
	if err != nil {
		t.Fatalf("f24: %v", err)
	}
	if v != -1.0 {
		t.Errorf("got %v, want -1.0", v)
	}
}

func TestU8Truncated(t *testing.T) {
	r := newReader(nil)
	_, err := r.u8()
	var decErr *DecodeError
	if !asDecodeError(err, &decErr) || decErr.Kind != UnexpectedEOF {
		t.Errorf("got %v, want UnexpectedEOF", err)
	}
}
