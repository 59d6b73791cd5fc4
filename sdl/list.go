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

// List is a wrapping type which points to another type. Lists appear as the
// type of fields and arguments and are never stored as top-level registry
// entries.
type List struct {
	// OfType is the type of the elements in the list.
	OfType Type
}

var _ Type = (*List)(nil)

// NewListOfType wraps the given type in a List.
func NewListOfType(ofType Type) (*List, error) {
	if ofType == nil {
		return nil, NewError("Must provide a non-nil element type for List.")
	}
	return &List{OfType: ofType}, nil
}

// MustNewListOfType is a panic-on-fail version of NewListOfType.
func MustNewListOfType(ofType Type) *List {
	t, err := NewListOfType(ofType)
	if err != nil {
		panic(err)
	}
	return t
}

// sdlType implements Type.
func (*List) sdlType() {}

// String implements fmt.Stringer.
func (t *List) String() string {
	return "[" + t.OfType.String() + "]"
}
