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
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHexDecoder(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"48656c6c6f", []byte("Hello")},
		{"48 65\t6c\n6c\r6f", []byte("Hello")},
		{"4180>", []byte{0x41, 0x80}},
		{"414", []byte{0x41, 0x40}}, // odd digit padded with '0'
		{"4>", []byte{0x40}},
		{"", nil},
	}
	for _, c := range cases {
		got, err := io.ReadAll(NewHexDecoder(bytes.NewReader([]byte(c.in))))
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got, cmp.Comparer(bytesEqual)); d != "" {
			t.Errorf("%q: got % x, want % x", c.in, got, c.want)
		}
	}

	_, err := io.ReadAll(NewHexDecoder(bytes.NewReader([]byte("4g"))))
	if err == nil {
		t.Error("expected error for non-hex character")
	}
}

func bytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// a85encode builds ASCII-85 test input, without using 'z'.
func a85encode(data []byte) string {
	var out []byte
	for len(data) > 0 {
		k := len(data)
		if k > 4 {
			k = 4
		}
		var word uint64
		for i := 0; i < 4; i++ {
			word <<= 8
			if i < k {
				word |= uint64(data[i])
			}
		}
		var group [5]byte
		for i := 4; i >= 0; i-- {
			group[i] = byte(word%85) + 33
			word /= 85
		}
		out = append(out, group[:k+1]...)
		data = data[k:]
	}
	return string(out)
}

func TestASCII85Decoder(t *testing.T) {
	payloads := [][]byte{
		[]byte("easy"),
		[]byte("12345678"),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcde"),
		{0xFF, 0xFF, 0xFF, 0xFF, 0x00},
	}
	for _, want := range payloads {
		for _, suffix := range []string{"", "~>"} {
			in := a85encode(want) + suffix
			got, err := io.ReadAll(NewASCII85Decoder(bytes.NewReader([]byte(in))))
			if err != nil {
				t.Errorf("%q: %v", in, err)
				continue
			}
			if !bytes.Equal(got, want) {
				t.Errorf("%q: got % x, want % x", in, got, want)
			}
		}
	}

	// 'z' stands for four zero bytes
	in := a85encode([]byte("easy")) + " z " + a85encode([]byte("easy"))
	got, err := io.ReadAll(NewASCII85Decoder(bytes.NewReader([]byte(in))))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte("easy\x00\x00\x00\x00easy")
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}

	bad := []string{
		"87cU\x01",                      // illegal character
		"87zUR",                         // 'z' inside a group
		"s8W-\"",                        // group value > 2^32-1
		a85encode([]byte("easy")) + "8", // final group of 1 character
	}
	for _, in := range bad {
		_, err := io.ReadAll(NewASCII85Decoder(bytes.NewReader([]byte(in))))
		if err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestPFBReader(t *testing.T) {
	var in bytes.Buffer
	in.Write([]byte{0x80, 1, 5, 0, 0, 0})
	in.WriteString("%!PS\n")
	in.Write([]byte{0x80, 2, 3, 0, 0, 0})
	in.Write([]byte{0xAA, 0xBB, 0xCC})
	in.Write([]byte{0x80, 3})

	got, err := io.ReadAll(NewPFBReader(&in))
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte("%!PS\n"), 0xAA, 0xBB, 0xCC)
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}

	_, err = io.ReadAll(NewPFBReader(bytes.NewReader([]byte{0x81, 1, 0, 0, 0, 0})))
	if err == nil {
		t.Error("expected error for bad magic")
	}
}

// encrypt is the inverse of the eexec decryption, used to build test
// vectors.
func encrypt(plain []byte, r0 uint16) []byte {
	r := r0
	cipher := make([]byte, len(plain))
	for i, p := range plain {
		c := p ^ byte(r>>8)
		r = (uint16(c)+r)*EexecC1 + EexecC2
		cipher[i] = c
	}
	return cipher
}

func TestEexecBinary(t *testing.T) {
	plain := append([]byte{0xAB, 0xCD, 0xEF, 0x01}, []byte("dup /Private 17 dict def")...)
	cipher := encrypt(plain, EexecR0)

	in := append([]byte(" \r\n\t"), cipher...)
	e, err := NewEexec(bytes.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(e)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain[4:]) {
		t.Errorf("got %q, want %q", got, plain[4:])
	}
}

func TestEexecHex(t *testing.T) {
	plain := append([]byte{1, 2, 3, 4}, []byte("/lenIV 4 def")...)
	cipher := encrypt(plain, EexecR0)

	var in bytes.Buffer
	in.WriteString("\r\n")
	for i, c := range cipher {
		if i > 0 && i%16 == 0 {
			in.WriteByte('\n')
		}
		in.WriteByte("0123456789abcdef"[c>>4])
		in.WriteByte("0123456789abcdef"[c&0x0F])
	}

	e, err := NewEexec(&in)
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(e)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain[4:]) {
		t.Errorf("got %q, want %q", got, plain[4:])
	}
}

func TestCharstringCipher(t *testing.T) {
	plain := []byte{13, 139, 21}
	iv := []byte{0, 0, 0, 0}
	cipherText := encrypt(append(iv, plain...), CharstringR0)

	c := Cipher{R: CharstringR0}
	var got []byte
	for i, b := range cipherText {
		p := c.Decrypt(b)
		if i >= len(iv) {
			got = append(got, p)
		}
	}
	if !bytes.Equal(got, plain) {
		t.Errorf("got % x, want % x", got, plain)
	}
}
