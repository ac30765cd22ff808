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
	"sync"

	"vitess.io/strenc/go/vt/log"
)

// Defaults holds the default external and default internal encodings.
type Defaults struct {
	reg *Registry

	mu       sync.RWMutex
	external *Encoding
	internal *Encoding
}

// NewDefaults binds both defaults to initial. The registry must be sealed
// and initial must belong to it.
func NewDefaults(reg *Registry, initial *Encoding) *Defaults {
	if !reg.Sealed() {
		Fatalf("default encodings initialized before the registry was sealed")
	}
	if initial == nil {
		Fatalf("no initial default encoding")
	}
	if reg.Get(initial.id) != initial {
		Fatalf("initial default encoding %s is not registered", initial.name)
	}
	return &Defaults{reg: reg, external: initial, internal: initial}
}

// External returns the default external encoding.
func (d *Defaults) External() *Encoding {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.external
}

// Internal returns the default internal encoding.
func (d *Defaults) Internal() *Encoding {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.internal
}

// Snapshot returns both defaults as seen at a single point in time.
func (d *Defaults) Snapshot() (external, internal *Encoding) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.external, d.internal
}

// SetExternal resolves v with Registry.Coerce and makes it the default
// external encoding. On error the current value is kept.
func (d *Defaults) SetExternal(v any) (*Encoding, error) {
	return d.set("external", &d.external, v)
}

// SetInternal resolves v with Registry.Coerce and makes it the default
// internal encoding. On error the current value is kept.
func (d *Defaults) SetInternal(v any) (*Encoding, error) {
	return d.set("internal", &d.internal, v)
}

func (d *Defaults) set(slot string, dst **Encoding, v any) (*Encoding, error) {
	enc, err := d.reg.Coerce(v)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	prev := *dst
	*dst = enc
	d.mu.Unlock()

	if prev != enc {
		defaultChangesTotal.WithLabelValues(slot).Inc()
		log.InfoS("default encoding changed", "slot", slot, "from", prev.name, "to", enc.name)
	}
	return enc, nil
}
