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

import "golang.org/x/image/math/f32"

// Point is a decoded 2D coordinate, x at index 0 and y at index 1.
type Point = f32.Vec2

func readPoint(r *reader) (Point, error) {
	x, err := r.coord()
	if err != nil {
		return Point{}, err
	}
	y, err := r.coord()
	if err != nil {
		return Point{}, err
	}
	return Point{x, y}, nil
}

// Matrix holds the six entries of a decoded 2D affine transform, in
// wire order.
type Matrix struct {
	A, B, C, D, E, F float32
}

func readMatrix(r *reader) (Matrix, error) {
	var vals [6]float32
	for i := range vals {
		v, err := r.f24()
		if err != nil {
			return Matrix{}, err
		}
		vals[i] = v
	}
	return Matrix{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]}, nil
}
