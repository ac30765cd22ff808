/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ucnv

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// charset decodes and encodes one character at a time.
type charset interface {
	// decode returns the character at the start of p, which is never
	// empty, and its length in bytes. ok is false when p does not start
	// with a valid sequence; n is then meaningless.
	decode(p []byte) (r rune, n int, ok bool)
	// encode appends the encoded form of r to dst. ok is false when r has
	// no representation in the charset.
	encode(dst []byte, r rune) (out []byte, ok bool)
}

type asciiCharset struct{}

func (asciiCharset) decode(p []byte) (rune, int, bool) {
	if p[0] >= utf8.RuneSelf {
		return 0, 0, false
	}
	return rune(p[0]), 1, true
}

func (asciiCharset) encode(dst []byte, r rune) ([]byte, bool) {
	if r < 0 || r >= utf8.RuneSelf {
		return dst, false
	}
	return append(dst, byte(r)), true
}

type utf8Charset struct{}

func (utf8Charset) decode(p []byte) (rune, int, bool) {
	r, n := utf8.DecodeRune(p)
	if r == utf8.RuneError && n <= 1 {
		return 0, 0, false
	}
	return r, n, true
}

func (utf8Charset) encode(dst []byte, r rune) ([]byte, bool) {
	if !utf8.ValidRune(r) {
		return dst, false
	}
	return utf8.AppendRune(dst, r), true
}

// byteOrder is implemented by binary.BigEndian and binary.LittleEndian.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type utf16Charset struct {
	order byteOrder
}

func (c utf16Charset) decode(p []byte) (rune, int, bool) {
	if len(p) < 2 {
		return 0, 0, false
	}
	u := c.order.Uint16(p)
	switch {
	case u < 0xD800 || u > 0xDFFF:
		return rune(u), 2, true
	case u >= 0xDC00:
		return 0, 0, false
	}
	if len(p) < 4 {
		return 0, 0, false
	}
	r := utf16.DecodeRune(rune(u), rune(c.order.Uint16(p[2:])))
	if r == utf8.RuneError {
		return 0, 0, false
	}
	return r, 4, true
}

func (c utf16Charset) encode(dst []byte, r rune) ([]byte, bool) {
	if !utf8.ValidRune(r) {
		return dst, false
	}
	if r < 0x10000 {
		return c.order.AppendUint16(dst, uint16(r)), true
	}
	hi, lo := utf16.EncodeRune(r)
	dst = c.order.AppendUint16(dst, uint16(hi))
	return c.order.AppendUint16(dst, uint16(lo)), true
}

type utf32Charset struct {
	order byteOrder
}

func (c utf32Charset) decode(p []byte) (rune, int, bool) {
	if len(p) < 4 {
		return 0, 0, false
	}
	r := rune(c.order.Uint32(p))
	if !utf8.ValidRune(r) {
		return 0, 0, false
	}
	return r, 4, true
}

func (c utf32Charset) encode(dst []byte, r rune) ([]byte, bool) {
	if !utf8.ValidRune(r) {
		return dst, false
	}
	return c.order.AppendUint32(dst, uint32(r)), true
}

// byteCharset is a single-byte charset defined by an x/text code page.
type byteCharset struct {
	cm *charmap.Charmap
}

func (c byteCharset) decode(p []byte) (rune, int, bool) {
	r := c.cm.DecodeByte(p[0])
	if r == utf8.RuneError {
		return 0, 0, false
	}
	return r, 1, true
}

func (c byteCharset) encode(dst []byte, r rune) ([]byte, bool) {
	b, ok := c.cm.EncodeRune(r)
	if !ok {
		return dst, false
	}
	return append(dst, b), true
}

// multiByteCharset is an ASCII-compatible multi-byte charset converted by
// x/text. width returns the length of the sequence introduced by a lead
// byte, or 0 when the byte cannot start a sequence.
type multiByteCharset struct {
	enc   encoding.Encoding
	width func(lead byte) int
}

func (c multiByteCharset) decode(p []byte) (rune, int, bool) {
	if p[0] < utf8.RuneSelf {
		return rune(p[0]), 1, true
	}
	n := c.width(p[0])
	if n == 0 || n > len(p) {
		return 0, 0, false
	}
	out, err := c.enc.NewDecoder().Bytes(p[:n])
	if err != nil {
		return 0, 0, false
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError || size != len(out) {
		return 0, 0, false
	}
	return r, n, true
}

func (c multiByteCharset) encode(dst []byte, r rune) ([]byte, bool) {
	if r >= 0 && r < utf8.RuneSelf {
		return append(dst, byte(r)), true
	}
	if !utf8.ValidRune(r) {
		return dst, false
	}
	out, err := c.enc.NewEncoder().Bytes(utf8.AppendRune(nil, r))
	if err != nil || len(out) == 0 {
		return dst, false
	}
	return append(dst, out...), true
}

func big5Width(lead byte) int {
	if lead >= 0x81 && lead <= 0xFE {
		return 2
	}
	return 0
}

func eucJPWidth(lead byte) int {
	switch {
	case lead == 0x8E:
		return 2
	case lead == 0x8F:
		return 3
	case lead >= 0xA1 && lead <= 0xFE:
		return 2
	}
	return 0
}
