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

// TypeReference is a placeholder standing for a named type that will be
// looked up later. It lets a declaration mention a type before that type has
// been declared, which is what makes forward and mutually recursive
// declarations possible. Build guarantees that no TypeReference survives a
// successful closing pass.
type TypeReference struct {
	// TypeName is the name the reference will be resolved by.
	TypeName string
}

var _ Type = (*TypeReference)(nil)

// NewTypeReference creates a placeholder for the type registered under the
// given name.
func NewTypeReference(name string) *TypeReference {
	return &TypeReference{TypeName: name}
}

// sdlType implements Type.
func (*TypeReference) sdlType() {}

// String implements fmt.Stringer.
func (t *TypeReference) String() string {
	return t.TypeName
}
