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
	"sort"

	"vitess.io/strenc/go/vt/log"
)

// Identifier derives the identifier under which name is exposed to the host
// language. It reports false when name starts with a decimal digit and
// cannot be exposed.
func Identifier(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	c := name[0]
	if '0' <= c && c <= '9' {
		return "", false
	}

	ident := []byte(name)
	if 'a' <= c && c <= 'z' {
		ident[0] = c - ('a' - 'A')
	}
	for i, b := range ident {
		if b == '.' || b == '-' {
			ident[i] = '_'
		}
	}
	return string(ident), true
}

// IdentifierTable maps derived identifiers to encodings.
type IdentifierTable struct {
	byIdent map[string]*Encoding
}

// Identifiers derives an identifier for every public name and alias, in
// registration order. When two names derive the same identifier, the later
// one wins.
func (r *Registry) Identifiers() *IdentifierTable {
	if !r.Sealed() {
		Fatalf("encoding identifiers derived before the registry was sealed")
	}

	table := &IdentifierTable{byIdent: make(map[string]*Encoding)}
	for _, enc := range r.ordered {
		for _, name := range enc.Names() {
			ident, ok := Identifier(name)
			if !ok {
				continue
			}
			if prev, ok := table.byIdent[ident]; ok && prev != enc {
				log.WarnS("encoding identifier redefined", "identifier", ident, "previous", prev.name, "encoding", enc.name)
			}
			table.byIdent[ident] = enc
		}
	}
	return table
}

// Lookup returns the encoding bound to ident.
func (t *IdentifierTable) Lookup(ident string) (*Encoding, bool) {
	enc, ok := t.byIdent[ident]
	return enc, ok
}

// Len returns the number of identifiers.
func (t *IdentifierTable) Len() int {
	return len(t.byIdent)
}

// Names returns every identifier, sorted.
func (t *IdentifierTable) Names() []string {
	names := make([]string, 0, len(t.byIdent))
	for ident := range t.byIdent {
		names = append(names, ident)
	}
	sort.Strings(names)
	return names
}
