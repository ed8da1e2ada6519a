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

// Package filter provides the streaming decoders which can sit between
// a font file and the font parsers: ASCII-hex, ASCII-85, deflate, the
// PFB segment stripper, and the eexec decryptor.  All decoders are
// io.Readers wrapping another byte source, composable left-to-right.
package filter

import (
	"compress/flate"
	"io"
)

// Filter identifies an outer encoding of the input data.
type Filter int

// The supported outer encodings.
const (
	None Filter = iota
	Hex
	Deflate
)

// Decode wraps r with the decoder for f.
func Decode(r io.Reader, f Filter) io.Reader {
	switch f {
	case Hex:
		return NewHexDecoder(r)
	case Deflate:
		return flate.NewReader(r)
	default:
		return r
	}
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'A' <= c && c <= 'F' || 'a' <= c && c <= 'f'
}

func hexToDec(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	}
	return 0
}

// isPSSpace reports whether c is white space in the sense of the
// PostScript filters: space, tab, LF, CR, NUL, or FF.
func isPSSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == 0 || c == '\f'
}
