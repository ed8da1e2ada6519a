// seehuhn.de/go/cffdump - analyze and dump CFF and Type 1 fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package cff

import "strconv"

// dictValue is one operand in a CFF DICT.
//
// Real numbers keep the textual form decoded from their BCD nibbles.
// A real which is round-tripped through a float and formatted again
// would come out as something like "0.36363598704338074" where the
// data says "0.363636"; the dump must reproduce the original digits.
type dictValue struct {
	isReal bool
	i      int32
	f      float64
	text   string
}

func dictInt(i int32) dictValue {
	return dictValue{i: i, f: float64(i)}
}

func dictReal(f float64, text string) dictValue {
	return dictValue{isReal: true, i: int32(f), f: f, text: text}
}

func (v dictValue) Int() int32 {
	if v.isReal {
		return int32(v.f)
	}
	return v.i
}

func (v dictValue) Real() float64 {
	return v.f
}

func (v dictValue) String() string {
	if v.isReal {
		return v.text
	}
	return strconv.Itoa(int(v.i))
}
