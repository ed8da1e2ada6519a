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

// Package reader provides a positionable cursor over an in-memory byte
// slice, with big-endian typed reads and a movable upper limit.
//
// The limit masks the visible tail of the buffer.  A charstring
// interpreter can enter a subroutine by narrowing the limit to the
// subroutine's end offset and restore the previous limit on return, so
// that a corrupt length cannot carry it into the next glyph's bytes.
// This package contains no such interpreter itself.
package reader

import (
	"errors"
	"fmt"
)

// ErrShortRead is returned when a typed read would cross the current limit.
var ErrShortRead = errors.New("reader: unexpected end of data")

// Reader is a cursor over a byte slice.
type Reader struct {
	data  []byte
	pos   int
	limit int
}

// New creates a Reader for data.  The limit is initialized to len(data).
func New(data []byte) *Reader {
	return &Reader{
		data:  data,
		limit: len(data),
	}
}

// Size returns the total length of the underlying buffer,
// independent of the current limit.
func (r *Reader) Size() int {
	return len(r.data)
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Seek sets the read position.
func (r *Reader) Seek(pos int) {
	r.pos = pos
}

// Limit returns the current limit.
func (r *Reader) Limit() int {
	return r.limit
}

// SetLimit sets the limit.  Reads at or beyond the limit fail with
// ErrShortRead.
func (r *Reader) SetLimit(l int) {
	r.limit = l
}

// Unlimit resets the limit to the buffer length.
func (r *Reader) Unlimit() {
	r.limit = len(r.data)
}

// Remaining returns the number of bytes between the current position
// and the limit.
func (r *Reader) Remaining() int {
	return r.limit - r.pos
}

// ReadUint8 reads one unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.pos+1 > r.limit {
		return 0, ErrShortRead
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadUint16 reads a big-endian 16-bit unsigned integer.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.pos+2 > r.limit {
		return 0, ErrShortRead
	}
	x := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return x, nil
}

// ReadUint24 reads a big-endian 24-bit unsigned integer.
func (r *Reader) ReadUint24() (uint32, error) {
	if r.pos+3 > r.limit {
		return 0, ErrShortRead
	}
	x := uint32(r.data[r.pos])<<16 | uint32(r.data[r.pos+1])<<8 | uint32(r.data[r.pos+2])
	r.pos += 3
	return x, nil
}

// ReadUint32 reads a big-endian 32-bit unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.pos+4 > r.limit {
		return 0, ErrShortRead
	}
	x := uint32(r.data[r.pos])<<24 | uint32(r.data[r.pos+1])<<16 |
		uint32(r.data[r.pos+2])<<8 | uint32(r.data[r.pos+3])
	r.pos += 4
	return x, nil
}

// ReadInt16 reads a big-endian 16-bit signed integer.
func (r *Reader) ReadInt16() (int16, error) {
	x, err := r.ReadUint16()
	return int16(x), err
}

// ReadInt32 reads a big-endian 32-bit signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	x, err := r.ReadUint32()
	return int32(x), err
}

// ReadOffSize reads an offset-size byte.  Only values 1 to 4 are valid.
func (r *Reader) ReadOffSize() (int, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}
	if b < 1 || b > 4 {
		return 0, fmt.Errorf("reader: invalid OffSize value %d", b)
	}
	return int(b), nil
}

// ReadOffset reads an offSize-byte big-endian unsigned offset.
func (r *Reader) ReadOffset(offSize int) (int, error) {
	switch offSize {
	case 1:
		x, err := r.ReadUint8()
		return int(x), err
	case 2:
		x, err := r.ReadUint16()
		return int(x), err
	case 3:
		x, err := r.ReadUint24()
		return int(x), err
	case 4:
		x, err := r.ReadUint32()
		return int(x), err
	default:
		return 0, fmt.Errorf("reader: invalid OffSize value %d", offSize)
	}
}
