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
	"fmt"
)

// graphBuilder runs the collection phase: it walks declarations, registers
// every named type it can reach and wires interfaces and unions as it goes.
// The registry doubles as the visited set, which is what terminates the
// recursion on cyclic declarations: each named type is registered before its
// children are processed, so revisiting it short-circuits.
type graphBuilder struct {
	registry    *TypeRegistry
	normalizer  NameNormalizer
	instantiate TypeInstantiator
}

// addType registers t under its canonical name and recursively registers
// every named type reachable from it. The input must be named at the top:
// passing a wrapper is a programming error. A TypeReference (or nil) is
// silently ignored; references are the closing pass's business.
//
// This is the authoritative "declare" step: unlike the insert-if-absent path
// used everywhere else, it overwrites an existing entry with the same name.
func (b *graphBuilder) addType(t Type, ctx *CollectionContext) error {
	if t == nil {
		return nil
	}

	switch t.(type) {
	case *List, *NonNull:
		return NewError(
			fmt.Sprintf("Cannot register wrapping type %q at the top level; provide its named type instead.", t),
			ErrKindInvalidTopLevelType,
		)
	case *TypeReference:
		// Tolerated as a no-op so that optional or duplicate root entries can
		// be passed by name. Resolution happens in the closing pass.
		return nil
	}

	name := TypeNameOf(t)
	if len(name) == 0 {
		return NewError(fmt.Sprintf("Must provide name for %s.", kindOf(t)))
	}
	b.registry.Set(name, t)

	switch t := t.(type) {
	case *Object:
		if err := b.handleFields(t, t.Fields, ctx); err != nil {
			return err
		}
		return b.handleInterfaces(t, ctx)

	case *Interface:
		return b.handleFields(t, t.Fields, ctx)

	case *InputObject:
		return b.handleFields(t, t.Fields, ctx)

	case *Union:
		return b.handleUnion(t, ctx)
	}

	// Scalar and Enum are leaves.
	return nil
}

// ensureRegistered makes sure the named type underneath t (stripping any
// wrapper layers) is present in the registry, recursively adding it when
// missing. It returns the registry entry for the name when one exists; for a
// reference whose name is not registered yet it returns nil without error.
func (b *graphBuilder) ensureRegistered(t Type, ctx *CollectionContext) (Type, error) {
	named := NamedTypeOf(t)
	if named == nil {
		return nil, nil
	}

	if ref, ok := named.(*TypeReference); ok {
		return b.registry.Lookup(ref.TypeName), nil
	}

	name := TypeNameOf(named)
	if existing := b.registry.Lookup(name); existing != nil {
		return existing, nil
	}
	if err := b.addType(named, ctx); err != nil {
		return nil, err
	}
	return b.registry.Lookup(name), nil
}

// handleFields normalizes field and argument names and makes sure their types
// are materialized: definition-backed types are resolved through the
// collection context, everything else has its underlying named type
// registered.
func (b *graphBuilder) handleFields(owner Type, fields []*Field, ctx *CollectionContext) error {
	for _, field := range fields {
		field.Name = b.normalizer.NormalizeName(field.Name, owner)

		if field.Type == nil {
			if field.Definition == nil {
				return NewError(fmt.Sprintf(
					"Field %q of %q provides neither a type nor a type definition.",
					field.Name, displayTypeName(owner)))
			}
			fieldType, err := ctx.Resolve(field.Definition)
			if err != nil {
				return err
			}
			field.Type = fieldType
		} else if _, err := b.ensureRegistered(field.Type, ctx); err != nil {
			return err
		}

		for _, arg := range field.Args {
			if err := b.handleArgument(arg, ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// handleArgument is handleFields for a single argument. Argument names are
// normalized with a nil owner.
func (b *graphBuilder) handleArgument(arg *Argument, ctx *CollectionContext) error {
	arg.Name = b.normalizer.NormalizeName(arg.Name, nil)

	if arg.Type == nil {
		if arg.Definition == nil {
			return NewError(fmt.Sprintf(
				"Argument %q provides neither a type nor a type definition.", arg.Name))
		}
		argType, err := ctx.Resolve(arg.Definition)
		if err != nil {
			return err
		}
		arg.Type = argType
		return nil
	}
	_, err := b.ensureRegistered(arg.Type, ctx)
	return err
}

// handleInterfaces registers the interfaces declared by an object and links
// the two directions wherever the interface side is already concrete. The
// resolvability invariant is enforced here for concrete pairs; pairs whose
// interface is still a bare name are re-checked by the closing pass.
func (b *graphBuilder) handleInterfaces(object *Object, ctx *CollectionContext) error {
	for _, declared := range object.InterfaceTypes {
		if declared == nil {
			continue
		}
		resolved, err := b.ensureRegistered(declared, ctx)
		if err != nil {
			return err
		}
		if resolved == nil {
			// A forward reference; keep it on the object so the closing pass
			// finds and replaces it.
			object.recordInterface(NamedTypeOf(declared))
			continue
		}

		iface, ok := resolved.(*Interface)
		if !ok {
			return NewError(fmt.Sprintf(
				"Object %q may only implement Interface types; %q is not one.",
				object.Name, displayTypeName(resolved)))
		}
		if err := checkInterfaceResolvable(iface, object); err != nil {
			return err
		}
		object.recordInterface(iface)
		iface.addPossibleType(object)
	}
	return nil
}

// handleUnion registers the members declared by a union and links the
// concrete ones into its possible-type list. A union must declare at least
// one member, directly or as already-resolved possible types.
func (b *graphBuilder) handleUnion(union *Union, ctx *CollectionContext) error {
	if len(union.MemberTypes) == 0 && len(union.possibleTypes) == 0 {
		return NewError(
			fmt.Sprintf("Must provide possible types for Union %q.", union.Name),
			ErrKindEmptyUnion,
			TypeNames{union.Name},
		)
	}

	for _, member := range union.MemberTypes {
		if member == nil {
			continue
		}
		resolved, err := b.ensureRegistered(member, ctx)
		if err != nil {
			return err
		}
		if resolved == nil {
			union.addPossibleType(NamedTypeOf(member))
			continue
		}

		object, ok := resolved.(*Object)
		if !ok {
			return NewError(fmt.Sprintf(
				"Union %q may only include Object types; %q is not one.",
				union.Name, displayTypeName(resolved)))
		}
		if err := checkUnionMemberResolvable(union, object); err != nil {
			return err
		}
		union.addPossibleType(object)
	}
	return nil
}

// checkInterfaceResolvable enforces the runtime-resolvability invariant for
// an interface/object pair: without a type resolver on the interface or an
// is-type-of predicate on the object, the executor would have no way to
// decide which concrete type a value represents.
func checkInterfaceResolvable(iface *Interface, object *Object) error {
	if iface.ResolveType != nil || object.IsTypeOf != nil {
		return nil
	}
	return NewError(
		fmt.Sprintf(
			"Interface %q does not provide a type resolver and object %q does not provide an "+
				"is-type-of predicate; there is no way to determine the concrete type of a value "+
				"during execution.",
			iface.Name, object.Name),
		ErrKindUnresolvableInterface,
		TypeNames{iface.Name, object.Name},
	)
}

// checkUnionMemberResolvable is checkInterfaceResolvable for a union/member
// pair.
func checkUnionMemberResolvable(union *Union, object *Object) error {
	if union.ResolveType != nil || object.IsTypeOf != nil {
		return nil
	}
	return NewError(
		fmt.Sprintf(
			"Union %q does not provide a type resolver and member %q does not provide an "+
				"is-type-of predicate; there is no way to determine the concrete type of a value "+
				"during execution.",
			union.Name, object.Name),
		ErrKindUnresolvableUnionMember,
		TypeNames{union.Name, object.Name},
	)
}
