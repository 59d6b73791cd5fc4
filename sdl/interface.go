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

// Interface is a named type describing fields common to a heterogeneous set
// of Object types. Its set of possible concrete types grows incrementally as
// implementing objects are registered.
type Interface struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields that need to be provided when implementing this interface, in
	// declaration order
	Fields []*Field

	// ResolveType determines the concrete Object type for a value at execution
	// time. When absent, every implementing object must provide an IsTypeOf
	// predicate instead.
	ResolveType TypeResolver

	possibleTypes []*Object

	definition TypeDefinition
}

var _ Type = (*Interface)(nil)

// sdlType implements Type.
func (*Interface) sdlType() {}

// String implements fmt.Stringer.
func (t *Interface) String() string {
	return t.Name
}

// PossibleTypes returns the concrete Object types known to implement the
// interface. The result is only complete once Build has finished.
func (t *Interface) PossibleTypes() []*Object {
	return t.possibleTypes
}

// addPossibleType records an implementing object. Both build phases link
// objects to their interfaces, so adding the same object twice is a no-op.
func (t *Interface) addPossibleType(object *Object) {
	for _, existing := range t.possibleTypes {
		if existing.Name == object.Name {
			return
		}
	}
	t.possibleTypes = append(t.possibleTypes, object)
}
