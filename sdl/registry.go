/**
 * Copyright (c) 2019, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package sdl

import (
	"sort"
	"sync"
)

// TypeRegistry maps canonical names to named type nodes. It is the single
// source of truth for "does this name exist yet" during construction, and the
// finished type graph afterwards.
//
// Every operation holds the registry lock only for the duration of the map
// access. The lock is never held across a call into a resolver or
// registration callback: those callbacks re-enter the registry, and holding
// the lock across them would deadlock. Once Build returns, callers must treat
// the registry as immutable; the registry itself does not enforce this.
type TypeRegistry struct {
	mu    sync.Mutex
	types map[string]Type
}

func newTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types: map[string]Type{},
	}
}

// Lookup finds the type registered under the given name. The name may still
// carry List/Non-Null decoration (e.g. "[Episode]!"); it is canonicalized
// before the lookup. Returns nil if no type is registered under the name.
func (r *TypeRegistry) Lookup(name string) Type {
	name = NamedTypeNameOf(name)
	r.mu.Lock()
	t := r.types[name]
	r.mu.Unlock()
	return t
}

// LookupByDefinition finds a registered type by the TypeDefinition that
// produced it rather than by name. It returns the first match; since names
// are unique, at most one entry matches in practice. Returns nil when no
// registered type was instantiated from the definition.
func (r *TypeRegistry) LookupByDefinition(def TypeDefinition) Type {
	if def == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.types {
		if definitionOf(t) == def {
			return t
		}
	}
	return nil
}

// Set unconditionally maps the given name to t, canonicalizing the name
// first. This is the seeding/override path; internal registration goes
// through insertIfAbsent so that the first registration wins.
func (r *TypeRegistry) Set(name string, t Type) {
	name = NamedTypeNameOf(name)
	if len(name) == 0 {
		return
	}
	r.mu.Lock()
	r.types[name] = t
	r.mu.Unlock()
}

// insertIfAbsent maps the given name to t unless the name is already taken.
// It reports whether t was stored.
func (r *TypeRegistry) insertIfAbsent(name string, t Type) bool {
	name = NamedTypeNameOf(name)
	if len(name) == 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		return false
	}
	r.types[name] = t
	return true
}

// Types returns a snapshot of all registered types. The snapshot is a stable
// copy: iterating it is unaffected by registrations that happen afterwards.
func (r *TypeRegistry) Types() []Type {
	r.mu.Lock()
	snapshot := make([]Type, 0, len(r.types))
	for _, t := range r.types {
		snapshot = append(snapshot, t)
	}
	r.mu.Unlock()
	return snapshot
}

// TypeNames returns the names of all registered types in lexical order.
func (r *TypeRegistry) TypeNames() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	r.mu.Unlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered types.
func (r *TypeRegistry) Len() int {
	r.mu.Lock()
	n := len(r.types)
	r.mu.Unlock()
	return n
}

// Clear removes every entry from the registry.
func (r *TypeRegistry) Clear() {
	r.mu.Lock()
	r.types = map[string]Type{}
	r.mu.Unlock()
}
