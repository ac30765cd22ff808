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
	"strings"
	"sync/atomic"

	"vitess.io/strenc/go/vt/vterrors"
	"vitess.io/strenc/go/vt/vtrpc"
)

// Backend provides the operations of KindConversionBackend encodings.
// Install overrides the slots it implements for the family of enc; slots
// left nil keep the fatal default.
type Backend interface {
	Install(enc *Encoding, ops *Operations)
}

// Definition describes an encoding to register.
type Definition struct {
	ID              ID
	Kind            Kind
	Name            string
	MinCharSize     int
	SingleByte      bool
	ASCIICompatible bool
	// Aliases must not include Name.
	Aliases []string
}

// Registry is a fixed-capacity, append-only collection of encodings.
//
// Register and Seal must be called from a single goroutine during startup.
// Every other method may be called concurrently once the registry is sealed.
type Registry struct {
	backend Backend

	byID    []*Encoding
	ordered []*Encoding
	sealed  atomic.Bool
}

// NewRegistry returns an empty registry able to hold capacity encodings,
// with ids in [0, capacity).
func NewRegistry(capacity int, backend Backend) *Registry {
	return &Registry{
		backend: backend,
		byID:    make([]*Encoding, capacity),
		ordered: make([]*Encoding, 0, capacity),
	}
}

// Register creates the encoding described by def. Any contract violation
// (id out of range or already used, empty name, unknown kind, registration
// after Seal) is an integrity violation.
func (r *Registry) Register(def Definition) *Encoding {
	switch {
	case r.sealed.Load():
		Fatalf("cannot register encoding %s: registry is sealed", def.Name)
	case int(def.ID) >= len(r.byID):
		Fatalf("cannot register encoding %s: id %d out of range [0, %d)", def.Name, def.ID, len(r.byID))
	case r.byID[def.ID] != nil:
		Fatalf("duplicated encoding id %d: %s (existing encoding is %s)", def.ID, def.Name, r.byID[def.ID].name)
	case def.Name == "":
		Fatalf("cannot register encoding with id %d: empty name", def.ID)
	}

	enc := &Encoding{
		id:              def.ID,
		kind:            def.Kind,
		name:            def.Name,
		aliases:         append([]string(nil), def.Aliases...),
		minCharSize:     def.MinCharSize,
		singleByte:      def.SingleByte,
		asciiCompatible: def.ASCIICompatible,
	}

	switch def.Kind {
	case KindSpecial:
	case KindConversionBackend:
		if r.backend == nil {
			Fatalf("cannot register encoding %s: no conversion backend", def.Name)
		}
		r.backend.Install(enc, &enc.ops)
	default:
		Fatalf("cannot register encoding %s: unknown encoding kind %v", def.Name, def.Kind)
	}
	enc.undefined = enc.ops.bindUndefined(enc)

	r.byID[def.ID] = enc
	r.ordered = append(r.ordered, enc)
	return enc
}

// Seal ends the startup phase. Every id in [0, capacity) must have been
// registered.
func (r *Registry) Seal() {
	for id, enc := range r.byID {
		if enc == nil {
			Fatalf("cannot seal registry: encoding id %d was never registered", id)
		}
	}
	r.sealed.Store(true)
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Len returns the number of registered encodings.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Get returns the encoding with the given id, or nil.
func (r *Registry) Get(id ID) *Encoding {
	if int(id) >= len(r.byID) {
		return nil
	}
	return r.byID[id]
}

// All returns every registered encoding ordered by id.
func (r *Registry) All() []*Encoding {
	all := make([]*Encoding, 0, len(r.ordered))
	for _, enc := range r.byID {
		if enc != nil {
			all = append(all, enc)
		}
	}
	return all
}

// Validate checks that public names and aliases are unique across the
// registry, ignoring ASCII case, and that the backend implemented every
// operation of the conversion-backend encodings.
func (r *Registry) Validate() error {
	seen := make(map[string]*Encoding)
	var dups []string
	for _, enc := range r.ordered {
		if enc.kind == KindConversionBackend && len(enc.undefined) > 0 {
			return vterrors.Errorf(vtrpc.Code_UNIMPLEMENTED, "%s: operations not implemented by the backend: %s", enc.name, strings.Join(enc.undefined, ", "))
		}
		for _, name := range enc.Names() {
			key := lowerASCII(name)
			if prev, ok := seen[key]; ok {
				dups = append(dups, name+" ("+prev.name+", "+enc.name+")")
				continue
			}
			seen[key] = enc
		}
	}
	if len(dups) > 0 {
		return vterrors.Errorf(vtrpc.Code_INTERNAL, "duplicated encoding names: %s", strings.Join(dups, ", "))
	}
	return nil
}
