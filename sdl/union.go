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

// Union is a named type describing a set of possible Object types. A union
// must declare at least one member; members may be TypeReference
// placeholders, which are closed during the second build phase.
type Union struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// MemberTypes lists the members of the union as declared. Entries may be
	// references.
	MemberTypes []Type

	// ResolveType determines the concrete Object type for a value at execution
	// time. When absent, every member object must provide an IsTypeOf
	// predicate instead.
	ResolveType TypeResolver

	// possibleTypes collects the resolved counterparts of MemberTypes. Until
	// the closing pass completes, entries may still be references.
	possibleTypes []Type

	definition TypeDefinition
}

var _ Type = (*Union)(nil)

// sdlType implements Type.
func (*Union) sdlType() {}

// String implements fmt.Stringer.
func (t *Union) String() string {
	return t.Name
}

// PossibleTypes returns the concrete Object types the union may represent.
// The result is only complete once Build has finished.
func (t *Union) PossibleTypes() []*Object {
	possibleTypes := make([]*Object, 0, len(t.possibleTypes))
	for _, entry := range t.possibleTypes {
		if object, ok := entry.(*Object); ok {
			possibleTypes = append(possibleTypes, object)
		}
	}
	return possibleTypes
}

// addPossibleType records a member object (or a reference to one). Recording
// the same member name twice is a no-op.
func (t *Union) addPossibleType(entry Type) {
	name := displayTypeName(entry)
	for i, existing := range t.possibleTypes {
		if displayTypeName(existing) == name {
			if IsReferenceType(existing) && !IsReferenceType(entry) {
				t.possibleTypes[i] = entry
			}
			return
		}
	}
	t.possibleTypes = append(t.possibleTypes, entry)
}
