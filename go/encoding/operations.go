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

package encoding

import (
	"vitess.io/strenc/go/rstr"
)

// CharacterBoundaries is the byte span [Start, End) of one character.
// Both fields are -1 when the character does not exist.
type CharacterBoundaries struct {
	Start int
	End   int
}

// Operations is the table of encoding-aware string operations of one
// encoding. Every slot is always set: slots a backend does not provide are
// bound to a default that reports an integrity violation through Fatalf.
type Operations struct {
	// UpdateFlags recomputes the Valid and ASCIIOnly flags of s.
	UpdateFlags func(s *rstr.Str)
	// MakeDataBinary collapses s to its raw bytes, discarding cached
	// decoded forms.
	MakeDataBinary func(s *rstr.Str)
	// TryMakingDataUChars fills the UTF-16 cache of s. It reports false,
	// leaving s unchanged, when s is not valid in the encoding.
	TryMakingDataUChars func(s *rstr.Str) bool
	// Length counts characters, or UTF-16 units when ucs2 is set.
	Length func(s *rstr.Str, ucs2 bool) int
	// Bytesize returns the encoded byte length of s.
	Bytesize func(s *rstr.Str) int
	// GetCharacterBoundaries returns the byte span of the character at index.
	GetCharacterBoundaries func(s *rstr.Str, index int, ucs2 bool) CharacterBoundaries
	// OffsetInBytesToIndex returns the index of the character containing
	// the given byte offset.
	OffsetInBytesToIndex func(s *rstr.Str, offset int, ucs2 bool) int
	// TranscodeToUTF16 converts s from byte offset pos onward.
	TranscodeToUTF16 func(src *Encoding, s *rstr.Str, pos int) (utf16 []uint16, next int)
	// TranscodeFromUTF16 converts utf16 from unit pos onward.
	TranscodeFromUTF16 func(dst *Encoding, utf16 []uint16, pos int) (bytes []byte, next int)
}

// bindUndefined binds every unset slot to the fatal default of enc and
// returns the names of the slots it bound.
func (ops *Operations) bindUndefined(enc *Encoding) []string {
	var undefined []string
	undef := func(op string) {
		undefined = append(undefined, op)
	}
	fatal := func(op string) {
		Fatalf("%s: %s is not implemented", enc.name, op)
	}

	if ops.UpdateFlags == nil {
		undef("update_flags")
		ops.UpdateFlags = func(*rstr.Str) {
			fatal("update_flags")
		}
	}
	if ops.MakeDataBinary == nil {
		undef("make_data_binary")
		ops.MakeDataBinary = func(*rstr.Str) {
			fatal("make_data_binary")
		}
	}
	if ops.TryMakingDataUChars == nil {
		undef("try_making_data_uchars")
		ops.TryMakingDataUChars = func(*rstr.Str) bool {
			fatal("try_making_data_uchars")
			return false
		}
	}
	if ops.Length == nil {
		undef("length")
		ops.Length = func(*rstr.Str, bool) int {
			fatal("length")
			return 0
		}
	}
	if ops.Bytesize == nil {
		undef("bytesize")
		ops.Bytesize = func(*rstr.Str) int {
			fatal("bytesize")
			return 0
		}
	}
	if ops.GetCharacterBoundaries == nil {
		undef("get_character_boundaries")
		ops.GetCharacterBoundaries = func(*rstr.Str, int, bool) CharacterBoundaries {
			fatal("get_character_boundaries")
			return CharacterBoundaries{-1, -1}
		}
	}
	if ops.OffsetInBytesToIndex == nil {
		undef("offset_in_bytes_to_index")
		ops.OffsetInBytesToIndex = func(*rstr.Str, int, bool) int {
			fatal("offset_in_bytes_to_index")
			return -1
		}
	}
	if ops.TranscodeToUTF16 == nil {
		undef("transcode_to_utf16")
		ops.TranscodeToUTF16 = func(*Encoding, *rstr.Str, int) ([]uint16, int) {
			fatal("transcode_to_utf16")
			return nil, 0
		}
	}
	if ops.TranscodeFromUTF16 == nil {
		undef("transcode_from_utf16")
		ops.TranscodeFromUTF16 = func(*Encoding, []uint16, int) ([]byte, int) {
			fatal("transcode_from_utf16")
			return nil, 0
		}
	}
	return undefined
}
