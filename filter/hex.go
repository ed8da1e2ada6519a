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

package filter

import (
	"bufio"
	"fmt"
	"io"
)

// NewHexDecoder returns a reader which decodes ASCII-hex encoded data
// from r.  White space is skipped.  The data ends at '>' or at the end
// of r; a pending odd digit is completed with '0'.
func NewHexDecoder(r io.Reader) io.Reader {
	return &hexReader{r: bufio.NewReader(r)}
}

type hexReader struct {
	r   *bufio.Reader
	eod bool
}

func (h *hexReader) Read(b []byte) (n int, err error) {
	for n < len(b) {
		if h.eod {
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		}

		var digits [2]byte
		count := 0
		for count < 2 {
			c, err := h.r.ReadByte()
			if err == io.EOF || (err == nil && c == '>') {
				h.eod = true
				break
			} else if err != nil {
				return n, err
			}
			if isPSSpace(c) {
				continue
			}
			if !isHexDigit(c) {
				h.eod = true
				return n, fmt.Errorf("filter: illegal hex character %q", c)
			}
			digits[count] = c
			count++
		}

		switch count {
		case 0:
			continue
		case 1:
			// odd number of digits: behave as if an extra '0' was read
			digits[1] = '0'
		}
		b[n] = byte(hexToDec(digits[0])<<4 | hexToDec(digits[1]))
		n++
	}
	return n, nil
}
