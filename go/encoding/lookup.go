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
	"fmt"

	"vitess.io/strenc/go/vt/vterrors"
	"vitess.io/strenc/go/vt/vtrpc"
)

// UnknownEncodingError is returned when a name does not resolve to any
// registered encoding.
type UnknownEncodingError struct {
	Name string
}

func (e *UnknownEncodingError) Error() string {
	return "unknown encoding name - " + e.Name
}

func (e *UnknownEncodingError) ErrorCode() vtrpc.Code {
	return vtrpc.Code_INVALID_ARGUMENT
}

func (e *UnknownEncodingError) ErrorState() vterrors.State {
	return vterrors.UnknownEncoding
}

// equalFoldASCII compares like C's strcasecmp: only ASCII letters fold.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// lowerASCII maps the ASCII letters of s to lower case and leaves every
// other byte alone, so that lowerASCII(a) == lowerASCII(b) exactly when
// equalFoldASCII(a, b).
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// FindByName returns the first encoding, in registration order, whose
// public name or one of whose aliases matches name ignoring ASCII case.
// Public names are tried before the aliases of the same encoding.
func (r *Registry) FindByName(name string) (*Encoding, bool) {
	for _, enc := range r.ordered {
		if equalFoldASCII(enc.name, name) {
			lookupsTotal.WithLabelValues("hit").Inc()
			return enc, true
		}
		for _, alias := range enc.aliases {
			if equalFoldASCII(alias, name) {
				lookupsTotal.WithLabelValues("hit").Inc()
				return enc, true
			}
		}
	}
	lookupsTotal.WithLabelValues("miss").Inc()
	return nil, false
}

// Find is FindByName reporting a miss as an *UnknownEncodingError.
func (r *Registry) Find(name string) (*Encoding, error) {
	enc, ok := r.FindByName(name)
	if !ok {
		return nil, &UnknownEncodingError{Name: name}
	}
	return enc, nil
}

// Coerce turns v into an encoding. An *Encoding is returned as is; strings,
// byte slices and fmt.Stringers are resolved as names.
func (r *Registry) Coerce(v any) (*Encoding, error) {
	switch v := v.(type) {
	case *Encoding:
		if v == nil {
			return nil, vterrors.NewErrorf(vtrpc.Code_INVALID_ARGUMENT, vterrors.NoImplicitConversion, "no implicit conversion of nil into Encoding")
		}
		return v, nil
	case string:
		return r.Find(v)
	case []byte:
		return r.Find(string(v))
	case fmt.Stringer:
		return r.Find(v.String())
	default:
		return nil, vterrors.NewErrorf(vtrpc.Code_INVALID_ARGUMENT, vterrors.NoImplicitConversion, "no implicit conversion of %T into String", v)
	}
}

// NameList returns every public name and alias, flattened in registration
// order.
func (r *Registry) NameList() []string {
	var names []string
	for _, enc := range r.ordered {
		names = append(names, enc.name)
		names = append(names, enc.aliases...)
	}
	return names
}

// AliasMap maps every alias to the public name of its encoding.
func (r *Registry) AliasMap() map[string]string {
	aliases := make(map[string]string)
	for _, enc := range r.ordered {
		for _, alias := range enc.aliases {
			aliases[alias] = enc.name
		}
	}
	return aliases
}
