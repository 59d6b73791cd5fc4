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

// InputObject is a named type describing a structured collection of fields
// supplied as input. Its fields never carry arguments but otherwise go
// through the same name normalization and type resolution as object fields.
type InputObject struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields in the input object, in declaration order
	Fields []*Field

	definition TypeDefinition
}

var _ Type = (*InputObject)(nil)

// sdlType implements Type.
func (*InputObject) sdlType() {}

// String implements fmt.Stringer.
func (t *InputObject) String() string {
	return t.Name
}
