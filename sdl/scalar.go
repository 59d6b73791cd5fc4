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

// Scalar is a leaf type: a named type with no children. The built-in scalars
// are pre-registered at construction; custom scalars are declared directly or
// through a ScalarDefinition.
type Scalar struct {
	// Name of the scalar type
	Name string

	// Description provides documentation for the type.
	Description string

	definition TypeDefinition
}

var _ Type = (*Scalar)(nil)

// sdlType implements Type.
func (*Scalar) sdlType() {}

// String implements fmt.Stringer.
func (t *Scalar) String() string {
	return t.Name
}

// ScalarDefinition describes a scalar type to be instantiated on demand
// during the collection phase.
type ScalarDefinition struct {
	// Name of the scalar type to create
	Name string

	// Description for the scalar type
	Description string
}

var _ TypeDefinition = (*ScalarDefinition)(nil)

// NewType implements TypeDefinition.
func (def *ScalarDefinition) NewType() (Type, error) {
	if len(def.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}
	return &Scalar{
		Name:        def.Name,
		Description: def.Description,
		definition:  def,
	}, nil
}
