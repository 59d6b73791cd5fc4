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

// EnumValue provides definition for a value in an enum. If Value is not
// provided, the name of the enum value serves as its internal value.
type EnumValue struct {
	// Name of the enum value
	Name string

	// Description of the enum value
	Description string

	// Value is the internal value to be used when the enum value is read from
	// input.
	Value interface{}
}

// Enum is a named leaf type whose values come from a fixed set.
type Enum struct {
	// Name of the defining Enum
	Name string

	// Description for the Enum type
	Description string

	// Values defined in this Enum type, in declaration order
	Values []EnumValue

	definition TypeDefinition
}

var _ Type = (*Enum)(nil)

// sdlType implements Type.
func (*Enum) sdlType() {}

// String implements fmt.Stringer.
func (t *Enum) String() string {
	return t.Name
}

// Value finds the enum value with the given name or returns nil if there is
// no such one.
func (t *Enum) Value(name string) *EnumValue {
	for i := range t.Values {
		if t.Values[i].Name == name {
			return &t.Values[i]
		}
	}
	return nil
}
