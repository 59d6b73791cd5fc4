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

// TypeInstantiator turns a TypeDefinition into a fresh node. Build accepts
// one as a hook; the default simply calls def.NewType().
type TypeInstantiator func(def TypeDefinition) (Type, error)

// CollectionContext is threaded through the collection phase. It is an
// immutable pair of callbacks, never a shared mutable global: Resolve turns a
// raw type definition into a concrete node, and Register is invoked whenever
// resolving discovers a brand-new named type.
type CollectionContext struct {
	// Resolve returns the node for a definition, either by finding the
	// already-instantiated node in the registry or by instantiating a fresh
	// one (which registers it as a side effect).
	Resolve func(def TypeDefinition) (Type, error)

	// Register inserts a newly discovered named type into the registry unless
	// the name is already present, and forwards the registration to the parent
	// context, if any.
	Register func(name string, t Type)

	parent *CollectionContext
}

// Parent returns the context this one forwards registrations to, or nil.
func (ctx *CollectionContext) Parent() *CollectionContext {
	return ctx.parent
}

// newCollectionContext builds a context whose callbacks operate on the
// builder's registry. A non-nil parent receives every registration made
// through the child; Build uses this to seed the built-in type set through a
// nested context.
func (b *graphBuilder) newCollectionContext(parent *CollectionContext) *CollectionContext {
	ctx := &CollectionContext{parent: parent}

	ctx.Register = func(name string, t Type) {
		b.registry.insertIfAbsent(name, t)
		if parent != nil {
			parent.Register(name, t)
		}
	}

	ctx.Resolve = func(def TypeDefinition) (Type, error) {
		if def == nil {
			return nil, NewError("Cannot resolve a nil type definition.", ErrKindInternal)
		}
		if t := b.registry.LookupByDefinition(def); t != nil {
			return t, nil
		}

		t, err := b.instantiate(def)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, NewError("Type definition produced no type.", ErrKindInternal)
		}
		bindDefinition(t, def)

		name := TypeNameOf(t)
		if len(name) == 0 {
			return nil, NewError("Type definition must produce a named type.", ErrKindInternal)
		}
		ctx.Register(name, t)

		// The name may have been taken while t was being instantiated; the
		// first registration wins, so hand back whatever the registry holds.
		return b.registry.Lookup(name), nil
	}

	return ctx
}
