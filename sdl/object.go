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

// Object is a named type with an ordered field list. It may declare the
// interfaces it implements; InterfaceTypes entries may be TypeReference
// placeholders, which are closed during the second build phase.
type Object struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// InterfaceTypes lists the interfaces implemented by the defining Object,
	// as declared. Entries may be references.
	InterfaceTypes []Type

	// Fields in the object, in declaration order
	Fields []*Field

	// IsTypeOf answers whether a value is an instance of this Object type. It
	// must be provided when the object joins an interface or union that has no
	// type resolver of its own.
	IsTypeOf IsTypeOfFunc

	// interfaces collects the resolved counterparts of InterfaceTypes. Until
	// the closing pass completes, entries may still be references.
	interfaces []Type

	definition TypeDefinition
}

var _ Type = (*Object)(nil)

// sdlType implements Type.
func (*Object) sdlType() {}

// String implements fmt.Stringer.
func (t *Object) String() string {
	return t.Name
}

// Interfaces returns the interfaces implemented by the object. The result is
// only complete once Build has finished.
func (t *Object) Interfaces() []*Interface {
	interfaces := make([]*Interface, 0, len(t.interfaces))
	for _, entry := range t.interfaces {
		if iface, ok := entry.(*Interface); ok {
			interfaces = append(interfaces, iface)
		}
	}
	return interfaces
}

// recordInterface tracks an interface (or a reference to one) as implemented
// by the object. Recording the same interface name twice is a no-op.
func (t *Object) recordInterface(entry Type) {
	name := displayTypeName(entry)
	for i, existing := range t.interfaces {
		if displayTypeName(existing) == name {
			// Prefer the concrete node over a leftover reference.
			if IsReferenceType(existing) && !IsReferenceType(entry) {
				t.interfaces[i] = entry
			}
			return
		}
	}
	t.interfaces = append(t.interfaces, entry)
}
