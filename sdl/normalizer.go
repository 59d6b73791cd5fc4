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

import (
	"github.com/huandu/xstrings"
)

// NameNormalizer converts a declared field or argument identifier into its
// canonical registry name. It is injected once per construction; the owner is
// the named type declaring the field, or nil when normalizing an argument
// name.
type NameNormalizer interface {
	NormalizeName(name string, owner Type) string
}

// NameNormalizerFunc is an adapter to allow the use of ordinary functions as
// NameNormalizer.
type NameNormalizerFunc func(name string, owner Type) string

// NormalizeName calls f(name, owner).
func (f NameNormalizerFunc) NormalizeName(name string, owner Type) string {
	return f(name, owner)
}

// NameNormalizerFunc implements NameNormalizer.
var _ NameNormalizer = NameNormalizerFunc(nil)

// DefaultNameNormalizer canonicalizes identifiers to lower camel case, so
// "first_name" and "First_Name" both become "firstName". The owner is
// ignored.
func DefaultNameNormalizer() NameNormalizer {
	return NameNormalizerFunc(func(name string, owner Type) string {
		if len(name) == 0 {
			return name
		}
		return xstrings.FirstRuneToLower(xstrings.ToCamelCase(name))
	})
}
