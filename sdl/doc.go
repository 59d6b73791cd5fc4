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

// Package sdl builds the type graph of a schema description language.
//
// Type declarations in a schema may reference each other by name before the
// referents exist, including mutually and self-recursive references. Build
// closes such a graph in two phases: a collection phase that walks root
// declarations and registers every named type it can reach (using the
// registry itself as the visited set, which is what terminates recursion on
// cycles), and a closing phase that replaces every remaining TypeReference
// with the concrete node registered under that name.
//
// Parsing declaration source text and executing queries against the finished
// graph are the business of other packages; this one only turns declarations
// into a closed, internally consistent TypeRegistry.
package sdl
