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

package ucnv_test

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/strenc/go/encoding"
	"vitess.io/strenc/go/encoding/ucnv"
	"vitess.io/strenc/go/rstr"
	"vitess.io/strenc/go/test/utils"
)

var catalog = func() *encoding.Registry {
	reg := encoding.NewRegistry(int(encoding.Count), ucnv.New())
	encoding.RegisterCatalog(reg)
	reg.Seal()
	return reg
}()

func enc(id encoding.ID) *encoding.Encoding {
	return catalog.Get(id)
}

func str(s string) *rstr.Str {
	return rstr.NewString(s)
}

func span(start, end int) encoding.CharacterBoundaries {
	return encoding.CharacterBoundaries{Start: start, End: end}
}

func backendEncodings() []*encoding.Encoding {
	var encs []*encoding.Encoding
	for _, e := range catalog.All() {
		if e.Kind() == encoding.KindConversionBackend {
			encs = append(encs, e)
		}
	}
	return encs
}

func TestASCIIRoundTrip(t *testing.T) {
	const text = "Hello, World! 0123456789 ~"
	want := utf16.Encode([]rune(text))

	for _, e := range backendEncodings() {
		t.Run(e.Name(), func(t *testing.T) {
			encoded, next := e.TranscodeFromUTF16(want, 0)
			require.Equal(t, len(want), next)
			if e.ASCIICompatible() {
				assert.Equal(t, text, string(encoded))
			}

			s := rstr.New(encoded)
			assert.Equal(t, len(text), e.Length(s, false))
			assert.Equal(t, len(text), e.Length(s, true))
			assert.Equal(t, len(encoded), e.Bytesize(s))

			units, next := e.TranscodeToUTF16(s, 0)
			require.Equal(t, len(encoded), next)
			assert.Equal(t, want, units)

			e.UpdateFlags(s)
			assert.True(t, s.Has(rstr.FlagsComputed|rstr.Valid))
			assert.Equal(t, e.ASCIICompatible(), s.Has(rstr.ASCIIOnly))
		})
	}
}

func TestUTF8Characters(t *testing.T) {
	utf8 := enc(encoding.UTF8)
	s := str("a😀b")

	assert.Equal(t, 3, utf8.Length(s, false))
	assert.Equal(t, 4, utf8.Length(s, true))
	assert.Equal(t, 6, utf8.Bytesize(s))

	testcases := []struct {
		index int
		ucs2  bool
		want  encoding.CharacterBoundaries
	}{
		{0, false, span(0, 1)},
		{1, false, span(1, 5)},
		{2, false, span(5, 6)},
		{3, false, span(-1, -1)},
		{-1, false, span(-1, -1)},
		{1, true, span(1, 5)},
		{2, true, span(1, 5)},
		{3, true, span(5, 6)},
		{4, true, span(-1, -1)},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.want, utf8.GetCharacterBoundaries(s, tc.index, tc.ucs2), "index %d ucs2 %v", tc.index, tc.ucs2)
	}

	assert.Equal(t, 0, utf8.OffsetInBytesToIndex(s, 0, false))
	assert.Equal(t, 1, utf8.OffsetInBytesToIndex(s, 3, false))
	assert.Equal(t, 2, utf8.OffsetInBytesToIndex(s, 5, false))
	assert.Equal(t, 3, utf8.OffsetInBytesToIndex(s, 5, true))
	assert.Equal(t, -1, utf8.OffsetInBytesToIndex(s, 6, false))
	assert.Equal(t, -1, utf8.OffsetInBytesToIndex(s, -1, false))
}

func TestInvalidSequences(t *testing.T) {
	testcases := []struct {
		name   string
		enc    encoding.ID
		input  string
		length int
		second encoding.CharacterBoundaries
	}{
		{"utf-8 stray byte", encoding.UTF8, "a\xffb", 3, span(1, 2)},
		{"utf-8 truncated", encoding.UTF8, "a\xe2\x82", 3, span(1, 2)},
		{"ascii high byte", encoding.ASCII, "a\x80b", 3, span(1, 2)},
		{"utf-16le odd length", encoding.UTF16LE, "a\x00b", 2, span(2, 3)},
		{"utf-16be lone low surrogate", encoding.UTF16BE, "\x00a\xdc\x00", 2, span(2, 4)},
		{"utf-32le out of range", encoding.UTF32LE, "a\x00\x00\x00\x00\x00\x11\x00", 2, span(4, 8)},
		{"big5 truncated", encoding.Big5, "a\xa4", 2, span(1, 2)},
		{"euc-jp bad lead", encoding.EUCJP, "a\x80", 2, span(1, 2)},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e := enc(tc.enc)
			s := str(tc.input)

			assert.Equal(t, tc.length, e.Length(s, false))
			assert.Equal(t, tc.second, e.GetCharacterBoundaries(s, 1, false))
			assert.False(t, ucnv.Valid(e, s.Bytes()))

			e.UpdateFlags(s)
			assert.True(t, s.Has(rstr.FlagsComputed))
			assert.False(t, s.Has(rstr.Valid))
			assert.False(t, s.Has(rstr.ASCIIOnly))

			assert.False(t, e.TryMakingDataUChars(s))
			assert.False(t, s.Has(rstr.HasUChars))
			assert.Nil(t, s.UChars())
		})
	}
}

func TestUpdateFlags(t *testing.T) {
	s := str("héllo")
	enc(encoding.UTF8).UpdateFlags(s)
	assert.Equal(t, rstr.FlagsComputed|rstr.Valid, s.Flags())

	s = str("hello")
	enc(encoding.UTF8).UpdateFlags(s)
	assert.Equal(t, rstr.FlagsComputed|rstr.Valid|rstr.ASCIIOnly, s.Flags())

	s.SetBytes([]byte("\xe9"))
	enc(encoding.ISO8859_1).UpdateFlags(s)
	assert.Equal(t, rstr.FlagsComputed|rstr.Valid, s.Flags())
}

func TestUCharsCache(t *testing.T) {
	utf8 := enc(encoding.UTF8)
	s := str("a😀")

	require.True(t, utf8.TryMakingDataUChars(s))
	assert.Equal(t, []uint16{'a', 0xD83D, 0xDE00}, s.UChars())
	assert.Equal(t, 3, utf8.Length(s, true))
	require.True(t, utf8.TryMakingDataUChars(s))

	utf8.MakeDataBinary(s)
	assert.True(t, s.Has(rstr.Binary))
	assert.False(t, s.Has(rstr.HasUChars))
	assert.Equal(t, "a😀", string(s.Bytes()))
}

func TestMultiByteEncodings(t *testing.T) {
	defer utils.EnsureNoLeaks(t)
	testcases := []struct {
		enc     encoding.ID
		input   string
		text    string
		offsets []int
	}{
		{encoding.Big5, "a\xa4\xa4\xa4\xe5", "a中文", []int{0, 1, 1, 2, 2}},
		{encoding.EUCJP, "\xc6\xfc\xcb\xdc", "日本", []int{0, 0, 1, 1}},
		{encoding.EUCJP, "\x8e\xb1x", "ｱx", []int{0, 0, 1}},
		{encoding.MacRoman, "caf\x8e", "café", []int{0, 1, 2, 3}},
		{encoding.MacCyrillic, "\x80\x81", "АБ", []int{0, 1}},
		{encoding.UTF16BE, "\xd8\x3d\xde\x00", "😀", []int{0, 0, 0, 0}},
		{encoding.UTF32LE, "\x00\xf6\x01\x00", "😀", []int{0, 0, 0, 0}},
	}
	for _, tc := range testcases {
		e := enc(tc.enc)
		t.Run(e.Name()+"/"+tc.text, func(t *testing.T) {
			s := str(tc.input)
			want := utf16.Encode([]rune(tc.text))

			assert.Equal(t, len([]rune(tc.text)), e.Length(s, false))
			assert.Equal(t, len(want), e.Length(s, true))
			for offset, idx := range tc.offsets {
				assert.Equal(t, idx, e.OffsetInBytesToIndex(s, offset, false), "offset %d", offset)
			}

			units, next := e.TranscodeToUTF16(s, 0)
			require.Equal(t, len(tc.input), next)
			assert.Equal(t, want, units)

			encoded, next := e.TranscodeFromUTF16(units, 0)
			require.Equal(t, len(units), next)
			assert.Equal(t, tc.input, string(encoded))
		})
	}
}

func TestTranscodeStopsAtFirstFailure(t *testing.T) {
	units, next := enc(encoding.UTF8).TranscodeToUTF16(str("ab\xffc"), 0)
	assert.Equal(t, []uint16{'a', 'b'}, units)
	assert.Equal(t, 2, next)

	units, next = enc(encoding.UTF8).TranscodeToUTF16(str("ab\xffc"), 3)
	assert.Equal(t, []uint16{'c'}, units)
	assert.Equal(t, 4, next)

	latin1 := enc(encoding.ISO8859_1)
	encoded, next := latin1.TranscodeFromUTF16(utf16.Encode([]rune("aé€")), 0)
	assert.Equal(t, "a\xe9", string(encoded))
	assert.Equal(t, 2, next)

	encoded, next = enc(encoding.UTF8).TranscodeFromUTF16([]uint16{'x', 0xD800, 'y'}, 0)
	assert.Equal(t, "x", string(encoded))
	assert.Equal(t, 1, next)

	_, next = latin1.TranscodeFromUTF16([]uint16{'x'}, 5)
	assert.Equal(t, -1, next)
	_, next = latin1.TranscodeToUTF16(str("x"), -1)
	assert.Equal(t, -1, next)
}

func TestReplace(t *testing.T) {
	out, n, ok := ucnv.Replace(enc(encoding.UTF8), enc(encoding.ISO8859_1), []byte("a€\xffé"))
	require.True(t, ok)
	assert.Equal(t, "a??\xe9", string(out))
	assert.Equal(t, 2, n)

	out, n, ok = ucnv.Replace(enc(encoding.ISO8859_1), enc(encoding.UTF8), []byte("caf\xe9"))
	require.True(t, ok)
	assert.Equal(t, "café", string(out))
	assert.Zero(t, n)

	_, _, ok = ucnv.Replace(enc(encoding.Binary), enc(encoding.UTF8), []byte("x"))
	assert.False(t, ok)
}

func TestTextualAgreesWithOperations(t *testing.T) {
	defer utils.EnsureNoLeaks(t)
	const text = "Grüße, 世界"

	for _, e := range backendEncodings() {
		t.Run(e.Name(), func(t *testing.T) {
			textual, ok := ucnv.Textual(e)
			if e.ID() == encoding.ASCII {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)

			encoded, err := textual.NewEncoder().Bytes([]byte(text))
			if err != nil {
				// Not every code page can represent the sample.
				return
			}
			assert.True(t, ucnv.Valid(e, encoded))

			units, next := e.TranscodeToUTF16(rstr.New(encoded), 0)
			require.Equal(t, len(encoded), next)
			assert.Equal(t, utf16.Encode([]rune(text)), units)
		})
	}

	_, ok := ucnv.Textual(enc(encoding.Binary))
	assert.False(t, ok)
}
