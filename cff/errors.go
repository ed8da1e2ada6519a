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

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ParseError indicates that the font data is damaged beyond what the
// dumper can skip over, or that it uses a construct the dumper does not
// support.
type ParseError struct {
	Reason string
}

func (err *ParseError) Error() string {
	return "cff: " + err.Reason
}

func invalidSince(reason string) error {
	return &ParseError{Reason: reason}
}

func unsupported(reason string) error {
	return &ParseError{Reason: "unsupported: " + reason}
}

// FormatError indicates that the input is not CFF data at all.
// Magic holds the first four bytes of the input.
type FormatError struct {
	Magic uint32
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("cff: not a supported font format (first bytes 0x%08X)", err.Magic)
}

// addError records a non-fatal diagnostic.  Repeated messages are
// coalesced; only the repetition count is kept.
func (d *Dumper) addError(msg string) {
	if d.silenceNumOperandErrs && strings.Contains(msg, invalidNumOperandsText) {
		d.hasSilencedNumOperandErrs = true
		return
	}
	if d.errs == nil {
		d.errs = make(map[string]int)
	}
	d.errs[msg]++
}

// HasErrors reports whether any diagnostics were recorded.
func (d *Dumper) HasErrors() bool {
	return len(d.errs) > 0
}

// Errors returns the recorded diagnostics, one per line, or the empty
// string if the font is clean.
func (d *Dumper) Errors() string {
	if len(d.errs) == 0 {
		return ""
	}
	msgs := maps.Keys(d.errs)
	slices.Sort(msgs)

	var sb []byte
	for _, msg := range msgs {
		sb = append(sb, msg...)
		if count := d.errs[msg]; count > 1 {
			sb = append(sb, fmt.Sprintf(" (repeated %d times)", count)...)
		}
		sb = append(sb, '\n')
	}
	return string(sb)
}
