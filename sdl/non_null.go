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

// NonNull is a wrapping type which points to another type and enforces that
// its values are never null. The enforcement happens in the executor; here
// NonNull only contributes shape to field and argument types.
type NonNull struct {
	// OfType is the type wrapped in this non-null type.
	OfType Type
}

var _ Type = (*NonNull)(nil)

// NewNonNullOfType wraps the given type in a NonNull. Wrapping a NonNull in
// another NonNull is invalid.
func NewNonNullOfType(ofType Type) (*NonNull, error) {
	if ofType == nil {
		return nil, NewError("Must provide a non-nil inner type for NonNull.")
	}
	if _, ok := ofType.(*NonNull); ok {
		return nil, NewError("Cannot wrap a NonNull type in another NonNull.")
	}
	return &NonNull{OfType: ofType}, nil
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(ofType Type) *NonNull {
	t, err := NewNonNullOfType(ofType)
	if err != nil {
		panic(err)
	}
	return t
}

// sdlType implements Type.
func (*NonNull) sdlType() {}

// String implements fmt.Stringer.
func (t *NonNull) String() string {
	return t.OfType.String() + "!"
}
