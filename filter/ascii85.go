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

// NewASCII85Decoder returns a reader which decodes ASCII-85 encoded
// data from r.  Each group of five characters in the range '!' to 'u'
// decodes to four bytes; 'z' stands for four zero bytes and is only
// allowed at a group boundary.  The data ends at '~'.  A partial final
// group of k characters contributes k-1 bytes, with the missing
// characters taken to be 'u'.
func NewASCII85Decoder(r io.Reader) io.Reader {
	return &ascii85Reader{r: bufio.NewReader(r)}
}

type ascii85Reader struct {
	r    *bufio.Reader
	buf  [4]byte
	pos  int // next byte in buf
	have int // number of valid bytes in buf
	eod  bool
}

func (a *ascii85Reader) Read(b []byte) (n int, err error) {
	for n < len(b) {
		if a.pos >= a.have {
			err = a.decodeGroup()
			if err != nil {
				if n > 0 && err == io.EOF {
					return n, nil
				}
				return n, err
			}
		}
		b[n] = a.buf[a.pos]
		a.pos++
		n++
	}
	return n, nil
}

// decodeGroup refills buf with the next decoded group.
func (a *ascii85Reader) decodeGroup() error {
	if a.eod {
		return io.EOF
	}

	var word uint64
	count := 0
	for count < 5 && !a.eod {
		c, err := a.readNonSpace()
		if err == io.EOF {
			a.eod = true
			break
		} else if err != nil {
			return err
		}
		switch {
		case c == '~':
			a.eod = true
		case c == 'z':
			if count > 0 {
				return fmt.Errorf("filter: 'z' inside an ASCII-85 group")
			}
			a.buf = [4]byte{0, 0, 0, 0}
			a.pos = 0
			a.have = 4
			return nil
		case c >= 33 && c <= 117:
			word = 85*word + uint64(c-33)
			count++
		default:
			return fmt.Errorf("filter: illegal ASCII-85 character %q", c)
		}
	}

	if count == 5 {
		if word > 0xFFFFFFFF {
			return fmt.Errorf("filter: ASCII-85 group value out of range")
		}
		a.store(word, 4)
		return nil
	}

	// a partial final group of count characters yields count-1 bytes
	switch count {
	case 0:
		return io.EOF
	case 1:
		return fmt.Errorf("filter: ASCII-85 final group of 1 character")
	default:
		for i := count; i < 5; i++ {
			word = 85*word + ('u' - 33)
		}
		if word > 0xFFFFFFFF {
			return fmt.Errorf("filter: ASCII-85 group value out of range")
		}
		a.store(word, count-1)
	}
	return nil
}

func (a *ascii85Reader) store(word uint64, numBytes int) {
	a.buf[0] = byte(word >> 24)
	a.buf[1] = byte(word >> 16)
	a.buf[2] = byte(word >> 8)
	a.buf[3] = byte(word)
	a.pos = 0
	a.have = numBytes
}

func (a *ascii85Reader) readNonSpace() (byte, error) {
	for {
		c, err := a.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isPSSpace(c) {
			return c, nil
		}
	}
}
