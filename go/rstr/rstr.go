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

// Package rstr holds the storage carried by a runtime string: its encoded
// bytes, an optional UTF-16 cache and the classification flags computed by
// the string's encoding. The encoding-aware operations that fill and read
// these fields live in the encoding packages; rstr itself knows nothing
// about encodings.
package rstr

// Flag is a set of cached classification bits.
type Flag uint8

const (
	// FlagsComputed is set once Valid and ASCIIOnly reflect the current bytes.
	FlagsComputed Flag = 1 << iota
	// Valid is set when the bytes form a valid sequence in the string's encoding.
	Valid
	// ASCIIOnly is set when every character is a 7-bit ASCII character.
	ASCIIOnly
	// HasUChars is set when UChars holds the UTF-16 form of the bytes.
	HasUChars
	// Binary is set after the storage was collapsed to raw bytes.
	Binary
)

// Str is the storage of a runtime string.
type Str struct {
	bytes  []byte
	uchars []uint16
	flags  Flag
}

// New returns a Str holding a copy of b.
func New(b []byte) *Str {
	return &Str{bytes: append([]byte(nil), b...)}
}

// NewString returns a Str holding the bytes of s.
func NewString(s string) *Str {
	return &Str{bytes: []byte(s)}
}

// Bytes returns the encoded bytes. The returned slice must not be modified.
func (s *Str) Bytes() []byte {
	return s.bytes
}

// Len returns the number of encoded bytes.
func (s *Str) Len() int {
	return len(s.bytes)
}

// SetBytes replaces the encoded bytes, invalidating every cached form.
func (s *Str) SetBytes(b []byte) {
	s.bytes = b
	s.uchars = nil
	s.flags = 0
}

// UChars returns the cached UTF-16 form, or nil when there is none.
func (s *Str) UChars() []uint16 {
	if s.flags&HasUChars == 0 {
		return nil
	}
	return s.uchars
}

// SetUChars installs the UTF-16 cache for the current bytes.
func (s *Str) SetUChars(u []uint16) {
	s.uchars = u
	s.flags |= HasUChars
	s.flags &^= Binary
}

// DropUChars discards the UTF-16 cache.
func (s *Str) DropUChars() {
	s.uchars = nil
	s.flags &^= HasUChars
}

// Flags returns the cached flags.
func (s *Str) Flags() Flag {
	return s.flags
}

// Has reports whether every bit of f is set.
func (s *Str) Has(f Flag) bool {
	return s.flags&f == f
}

// SetFlags sets the bits in set and clears the bits in clear.
func (s *Str) SetFlags(set, clear Flag) {
	s.flags = (s.flags &^ clear) | set
}
