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
	"errors"
	"io"
)

// The eexec cipher parameters.
const (
	EexecC1 = 52845
	EexecC2 = 22719
	EexecR0 = 55665

	// CharstringR0 is the initial cipher state for Type 1 charstring
	// decryption.
	CharstringR0 = 4330
)

// Cipher is the Type 1 stream cipher.  The same recurrence is used for
// the eexec layer (initial state EexecR0) and for charstring
// obfuscation (initial state CharstringR0).
type Cipher struct {
	R uint16
}

// Decrypt decrypts one ciphertext byte and advances the cipher state.
func (c *Cipher) Decrypt(cipher byte) byte {
	plain := cipher ^ byte(c.R>>8)
	c.R = (uint16(cipher)+c.R)*EexecC1 + EexecC2
	return plain
}

// NewEexec returns a reader which decrypts the eexec-encrypted section
// of a Type 1 font.  It skips white space (space, LF, CR, tab only)
// after the eexec keyword, inspects the first four raw bytes to decide
// between binary and ASCII-hex data, and discards the four plaintext
// bytes which initialize the cipher state.
func NewEexec(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	// The first data byte cannot be white space.
	var b0 byte
	found := false
	for i := 0; i < 1000; i++ {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if c != ' ' && c != '\n' && c != '\r' && c != '\t' {
			b0 = c
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("filter: cannot find start of eexec data")
	}

	var head [4]byte
	head[0] = b0
	_, err := io.ReadFull(br, head[1:])
	if err != nil {
		return nil, errors.New("filter: unexpected end of eexec data")
	}

	isBinary := false
	for _, c := range head {
		if !isHexDigit(c) {
			isBinary = true
		}
	}

	e := &eexecReader{cipher: Cipher{R: EexecR0}}
	if isBinary {
		e.r = br
		for _, c := range head {
			e.cipher.Decrypt(c)
		}
	} else {
		// The four bytes read so far are hex digits encoding two of the
		// four initializer bytes.
		e.cipher.Decrypt(byte(hexToDec(head[0])<<4 | hexToDec(head[1])))
		e.cipher.Decrypt(byte(hexToDec(head[2])<<4 | hexToDec(head[3])))
		e.r = NewHexDecoder(br)
		var rest [2]byte
		_, err = io.ReadFull(e, rest[:])
		if err != nil {
			return nil, errors.New("filter: unexpected end of eexec data")
		}
	}
	return e, nil
}

type eexecReader struct {
	r      io.Reader
	cipher Cipher
}

func (e *eexecReader) Read(b []byte) (n int, err error) {
	n, err = e.r.Read(b)
	for i := 0; i < n; i++ {
		b[i] = e.cipher.Decrypt(b[i])
	}
	return n, err
}
