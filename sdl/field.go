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

// Field is a named, typed member of an Object, Interface or InputObject
// type. The declared Name is rewritten to its canonical form by the
// registry's NameNormalizer during the collection phase.
//
// Exactly one of Type and Definition should be provided. Type may be (or may
// wrap) a TypeReference, to be closed during the second build phase;
// Definition is instantiated through the collection context on first use.
type Field struct {
	// Name of the field as declared, before normalization
	Name string

	// Description of the field
	Description string

	// Type of value yielded by the field
	Type Type

	// Definition lazily describes the type of the field.
	Definition TypeDefinition

	// Args specifies the definitions of arguments taken by the field.
	Args []*Argument
}

// Argument is accepted by a field (or a directive) to further specify its
// behavior.
type Argument struct {
	// Name of the argument as declared, before normalization
	Name string

	// Description of the argument
	Description string

	// Type of the value that can be given to the argument
	Type Type

	// Definition lazily describes the type of the argument.
	Definition TypeDefinition

	// DefaultValue is assigned to the argument when no value is provided.
	DefaultValue interface{}
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.DefaultValue != nil
}
