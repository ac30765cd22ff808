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

// Package ucnv is the conversion backend of the encoding registry. It
// provides the nine string operations for every built-in encoding except
// ASCII-8BIT, on top of golang.org/x/text code pages and the Unicode
// transformation formats.
package ucnv

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"vitess.io/strenc/go/encoding"
	"vitess.io/strenc/go/rstr"
)

// family is the converter of one encoding, keyed by its public name.
type family struct {
	charset charset
	// textual is the x/text form of the encoding; nil when x/text has none.
	textual xencoding.Encoding
}

var families = map[string]family{
	"US-ASCII": {charset: asciiCharset{}},
	"UTF-8":    {charset: utf8Charset{}, textual: unicode.UTF8},
	"UTF-16BE": {
		charset: utf16Charset{order: binary.BigEndian},
		textual: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	},
	"UTF-16LE": {
		charset: utf16Charset{order: binary.LittleEndian},
		textual: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	},
	"UTF-32BE": {
		charset: utf32Charset{order: binary.BigEndian},
		textual: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	},
	"UTF-32LE": {
		charset: utf32Charset{order: binary.LittleEndian},
		textual: utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	},
	"ISO-8859-1":  {charset: byteCharset{cm: charmap.ISO8859_1}, textual: charmap.ISO8859_1},
	"macRoman":    {charset: byteCharset{cm: charmap.Macintosh}, textual: charmap.Macintosh},
	"macCyrillic": {charset: byteCharset{cm: charmap.MacintoshCyrillic}, textual: charmap.MacintoshCyrillic},
	"Big5": {
		charset: multiByteCharset{enc: traditionalchinese.Big5, width: big5Width},
		textual: traditionalchinese.Big5,
	},
	"EUC-JP": {
		charset: multiByteCharset{enc: japanese.EUCJP, width: eucJPWidth},
		textual: japanese.EUCJP,
	},
}

// Backend installs the operations of the built-in conversion-backend
// encodings.
type Backend struct{}

// New returns the backend.
func New() *Backend {
	return &Backend{}
}

// Install implements encoding.Backend. Installing an encoding the backend
// has no converter for is an integrity violation.
func (b *Backend) Install(enc *encoding.Encoding, ops *encoding.Operations) {
	fam, ok := families[enc.Name()]
	if !ok {
		encoding.Fatalf("%s: no converter in the conversion backend", enc.Name())
	}
	c := &converter{enc: enc, cs: fam.charset}

	ops.UpdateFlags = c.updateFlags
	ops.MakeDataBinary = c.makeDataBinary
	ops.TryMakingDataUChars = c.tryMakingDataUChars
	ops.Length = c.length
	ops.Bytesize = c.bytesize
	ops.GetCharacterBoundaries = c.getCharacterBoundaries
	ops.OffsetInBytesToIndex = c.offsetInBytesToIndex
	ops.TranscodeToUTF16 = c.transcodeToUTF16
	ops.TranscodeFromUTF16 = c.transcodeFromUTF16
}

// Textual returns the golang.org/x/text form of enc.
func Textual(enc *encoding.Encoding) (xencoding.Encoding, bool) {
	fam, ok := families[enc.Name()]
	if !ok || fam.textual == nil {
		return nil, false
	}
	return fam.textual, true
}

// Valid reports whether b is a valid sequence in enc. It reports false for
// encodings without a converter.
func Valid(enc *encoding.Encoding, b []byte) bool {
	fam, ok := families[enc.Name()]
	if !ok {
		return false
	}
	for len(b) > 0 {
		_, n, ok := fam.charset.decode(b)
		if !ok {
			return false
		}
		b = b[n:]
	}
	return true
}

// Replace converts b from src to dst, substituting U+FFFD for invalid
// sequences of src and '?' for characters dst cannot represent. It returns
// the converted bytes and the number of substitutions.
func Replace(src, dst *encoding.Encoding, b []byte) ([]byte, int, bool) {
	from, ok := families[src.Name()]
	if !ok {
		return nil, 0, false
	}
	to, ok := families[dst.Name()]
	if !ok {
		return nil, 0, false
	}

	var (
		out          = make([]byte, 0, len(b))
		replacements int
	)
	for len(b) > 0 {
		r, n, ok := from.charset.decode(b)
		if !ok {
			r, n = utf8.RuneError, min(src.MinCharSize(), len(b))
			replacements++
		}
		b = b[n:]

		if out, ok = to.charset.encode(out, r); !ok {
			out, _ = to.charset.encode(out, '?')
			if r != utf8.RuneError {
				replacements++
			}
		}
	}
	return out, replacements, true
}

type converter struct {
	enc *encoding.Encoding
	cs  charset
}

// next returns the character at the start of p. An invalid sequence counts
// as one character of the encoding's minimum size, clamped to len(p).
func (c *converter) next(p []byte) (r rune, n int, ok bool) {
	r, n, ok = c.cs.decode(p)
	if !ok {
		n = min(c.enc.MinCharSize(), len(p))
	}
	return r, n, ok
}

// units is the number of indexes taken by a character. In ucs2 mode a valid
// character outside the BMP takes two, one per surrogate.
func units(r rune, ok, ucs2 bool) int {
	if ucs2 && ok && r >= 0x10000 {
		return 2
	}
	return 1
}

func (c *converter) updateFlags(s *rstr.Str) {
	valid, ascii := true, c.enc.ASCIICompatible()
	for p := s.Bytes(); len(p) > 0; {
		r, n, ok := c.next(p)
		if !ok {
			valid = false
		} else if r >= utf8.RuneSelf {
			ascii = false
		}
		p = p[n:]
	}

	set := rstr.FlagsComputed
	if valid {
		set |= rstr.Valid
		if ascii {
			set |= rstr.ASCIIOnly
		}
	}
	s.SetFlags(set, rstr.Valid|rstr.ASCIIOnly)
}

func (c *converter) makeDataBinary(s *rstr.Str) {
	s.DropUChars()
	s.SetFlags(rstr.Binary, 0)
}

func (c *converter) tryMakingDataUChars(s *rstr.Str) bool {
	if s.Has(rstr.HasUChars) {
		return true
	}
	u, next := c.toUTF16(s.Bytes(), 0)
	if next != s.Len() {
		return false
	}
	s.SetUChars(u)
	return true
}

func (c *converter) length(s *rstr.Str, ucs2 bool) int {
	switch {
	case ucs2 && s.Has(rstr.HasUChars):
		return len(s.UChars())
	case !ucs2 && c.enc.SingleByte():
		return s.Len()
	}

	count := 0
	for p := s.Bytes(); len(p) > 0; {
		r, n, ok := c.next(p)
		count += units(r, ok, ucs2)
		p = p[n:]
	}
	return count
}

func (c *converter) bytesize(s *rstr.Str) int {
	return s.Len()
}

func (c *converter) getCharacterBoundaries(s *rstr.Str, index int, ucs2 bool) encoding.CharacterBoundaries {
	if index < 0 {
		return encoding.CharacterBoundaries{Start: -1, End: -1}
	}
	p := s.Bytes()
	for pos, idx := 0, 0; pos < len(p); {
		r, n, ok := c.next(p[pos:])
		idx += units(r, ok, ucs2)
		if index < idx {
			return encoding.CharacterBoundaries{Start: pos, End: pos + n}
		}
		pos += n
	}
	return encoding.CharacterBoundaries{Start: -1, End: -1}
}

func (c *converter) offsetInBytesToIndex(s *rstr.Str, offset int, ucs2 bool) int {
	p := s.Bytes()
	if offset < 0 || offset >= len(p) {
		return -1
	}
	pos, idx := 0, 0
	for {
		r, n, ok := c.next(p[pos:])
		if offset < pos+n {
			return idx
		}
		pos += n
		idx += units(r, ok, ucs2)
	}
}

func (c *converter) transcodeToUTF16(_ *encoding.Encoding, s *rstr.Str, pos int) ([]uint16, int) {
	if pos < 0 || pos > s.Len() {
		return nil, -1
	}
	return c.toUTF16(s.Bytes(), pos)
}

func (c *converter) toUTF16(p []byte, pos int) ([]uint16, int) {
	u := make([]uint16, 0, len(p)-pos)
	for pos < len(p) {
		r, n, ok := c.cs.decode(p[pos:])
		if !ok {
			break
		}
		u = utf16.AppendRune(u, r)
		pos += n
	}
	return u, pos
}

func (c *converter) transcodeFromUTF16(_ *encoding.Encoding, u []uint16, pos int) ([]byte, int) {
	if pos < 0 || pos > len(u) {
		return nil, -1
	}
	out := make([]byte, 0, len(u)-pos)
	for pos < len(u) {
		r, n := decodeUTF16(u[pos:])
		if n == 0 {
			break
		}
		var ok bool
		if out, ok = c.cs.encode(out, r); !ok {
			break
		}
		pos += n
	}
	return out, pos
}

// decodeUTF16 returns the character at the start of u and the number of
// units it takes, or 0 units for an unpaired surrogate.
func decodeUTF16(u []uint16) (rune, int) {
	r := rune(u[0])
	if !utf16.IsSurrogate(r) {
		return r, 1
	}
	if r < 0xDC00 && len(u) > 1 {
		if dec := utf16.DecodeRune(r, rune(u[1])); dec != utf8.RuneError {
			return dec, 2
		}
	}
	return 0, 0
}
