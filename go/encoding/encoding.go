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

// Package encoding implements the encoding registry of the string engine.
//
// Every known encoding is described by an *Encoding: immutable metadata plus
// an Operations table holding the nine encoding-aware string operations.
// Encodings are created once, while a single goroutine runs the startup
// phase, by registering Definitions in a Registry. Sealing the registry ends
// the startup phase; from then on the registry and every *Encoding are
// read-only and may be shared freely between goroutines.
//
// The only mutable state left after startup is the pair of default
// encodings held by Defaults, which serializes its own access.
package encoding

import (
	"fmt"

	"vitess.io/strenc/go/rstr"
)

// ID is the dense index of an encoding in its registry.
type ID uint

// Kind selects how the operations of an encoding are provided.
type Kind int

const (
	// KindSpecial encodings are pure metadata: every operation keeps its
	// fatal default.
	KindSpecial Kind = iota
	// KindConversionBackend encodings get their operations from the
	// registry's Backend.
	KindConversionBackend
)

func (k Kind) String() string {
	switch k {
	case KindSpecial:
		return "special"
	case KindConversionBackend:
		return "conversion-backend"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Encoding describes one registered encoding.
type Encoding struct {
	id              ID
	kind            Kind
	name            string
	aliases         []string
	minCharSize     int
	singleByte      bool
	asciiCompatible bool

	ops       Operations
	undefined []string
}

// ID returns the index of the encoding in its registry.
func (e *Encoding) ID() ID { return e.id }

// Kind returns how the operations of the encoding are provided.
func (e *Encoding) Kind() Kind { return e.kind }

// Name returns the public name of the encoding.
func (e *Encoding) Name() string { return e.name }

// String returns the public name of the encoding.
func (e *Encoding) String() string { return e.name }

// Inspect returns the host-language representation of the encoding.
func (e *Encoding) Inspect() string {
	return "#<Encoding:" + e.name + ">"
}

// Aliases returns a copy of the alternate names of the encoding, in
// registration order.
func (e *Encoding) Aliases() []string {
	return append([]string(nil), e.aliases...)
}

// Names returns the public name followed by every alias.
func (e *Encoding) Names() []string {
	names := make([]string, 0, len(e.aliases)+1)
	names = append(names, e.name)
	return append(names, e.aliases...)
}

// MinCharSize returns the minimum number of bytes of an encoded character.
func (e *Encoding) MinCharSize() int { return e.minCharSize }

// MaxCharSize returns the maximum number of bytes of an encoded character,
// as reported to the host language.
func (e *Encoding) MaxCharSize() int {
	if e.singleByte {
		return 1
	}
	return 10
}

// SingleByte reports whether every character takes exactly one byte.
func (e *Encoding) SingleByte() bool { return e.singleByte }

// ASCIICompatible reports whether ASCII characters are encoded as
// themselves.
func (e *Encoding) ASCIICompatible() bool { return e.asciiCompatible }

// Dummy always reports false: every registered encoding is a real one.
func (e *Encoding) Dummy() bool { return false }

// Ops returns the operation table of the encoding.
func (e *Encoding) Ops() *Operations { return &e.ops }

// UndefinedOperations returns the names of the operations still bound to
// the fatal default.
func (e *Encoding) UndefinedOperations() []string {
	return append([]string(nil), e.undefined...)
}

func (e *Encoding) UpdateFlags(s *rstr.Str) {
	e.ops.UpdateFlags(s)
}

func (e *Encoding) MakeDataBinary(s *rstr.Str) {
	e.ops.MakeDataBinary(s)
}

func (e *Encoding) TryMakingDataUChars(s *rstr.Str) bool {
	return e.ops.TryMakingDataUChars(s)
}

func (e *Encoding) Length(s *rstr.Str, ucs2 bool) int {
	return e.ops.Length(s, ucs2)
}

func (e *Encoding) Bytesize(s *rstr.Str) int {
	return e.ops.Bytesize(s)
}

func (e *Encoding) GetCharacterBoundaries(s *rstr.Str, index int, ucs2 bool) CharacterBoundaries {
	return e.ops.GetCharacterBoundaries(s, index, ucs2)
}

func (e *Encoding) OffsetInBytesToIndex(s *rstr.Str, offset int, ucs2 bool) int {
	return e.ops.OffsetInBytesToIndex(s, offset, ucs2)
}

// TranscodeToUTF16 converts s, starting at byte offset pos, to UTF-16. It
// returns the converted units and the byte offset where conversion stopped.
func (e *Encoding) TranscodeToUTF16(s *rstr.Str, pos int) ([]uint16, int) {
	return e.ops.TranscodeToUTF16(e, s, pos)
}

// TranscodeFromUTF16 converts utf16, starting at unit pos, to this
// encoding. It returns the encoded bytes and the unit index where
// conversion stopped.
func (e *Encoding) TranscodeFromUTF16(utf16 []uint16, pos int) ([]byte, int) {
	return e.ops.TranscodeFromUTF16(e, utf16, pos)
}
