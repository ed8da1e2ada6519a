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
	"errors"
	"fmt"
	"io"
)

// ErrInvalidPFB is returned when a PFB segment header is malformed.
var ErrInvalidPFB = errors.New("filter: invalid PFB segment header")

// NewPFBReader returns a reader which strips the 6-byte segment headers
// of a PFB file and passes the segment payloads through unchanged.
// Each header consists of the magic byte 0x80, a type byte (1 = text,
// 2 = binary, 3 = end of file) and a little-endian 32-bit segment
// length.
func NewPFBReader(r io.Reader) io.Reader {
	return &pfbReader{r: r}
}

type pfbReader struct {
	r      io.Reader
	remain int64
	closed bool
}

func (p *pfbReader) Read(b []byte) (n int, err error) {
	for {
		if p.closed {
			return 0, io.EOF
		}
		if p.remain == 0 {
			err = p.readSegmentHeader()
			if err != nil {
				return 0, err
			}
			continue
		}
		k := len(b)
		if int64(k) > p.remain {
			k = int(p.remain)
		}
		n, err = p.r.Read(b[:k])
		p.remain -= int64(n)
		if err == io.EOF && p.remain > 0 {
			err = io.ErrUnexpectedEOF
		}
		return n, err
	}
}

func (p *pfbReader) readSegmentHeader() error {
	var buf [6]byte
	_, err := io.ReadFull(p.r, buf[:2])
	if err != nil {
		return err
	}
	if buf[0] != 0x80 {
		return fmt.Errorf("%w: magic byte is 0x%02X", ErrInvalidPFB, buf[0])
	}
	switch buf[1] {
	case 3:
		p.closed = true
		return nil
	case 1, 2:
		_, err = io.ReadFull(p.r, buf[2:])
		if err != nil {
			return err
		}
		p.remain = int64(buf[2]) | int64(buf[3])<<8 | int64(buf[4])<<16 | int64(buf[5])<<24
		return nil
	default:
		return fmt.Errorf("%w: segment type %d", ErrInvalidPFB, buf[1])
	}
}
