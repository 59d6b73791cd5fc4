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
	"strings"

	"github.com/botobag/selene/internal/util"
)

// referenceResolver runs the closing pass: it walks the now-populated
// registry and replaces every symbolic forward reference with the concrete
// registered node, re-validating the invariants that could not be checked
// during collection because the referent did not exist yet. After a
// successful pass no TypeReference remains reachable from any registered
// type.
type referenceResolver struct {
	registry *TypeRegistry
}

// resolveAll resolves references in every registered type. It operates on a
// stable snapshot; convertTypeReference only reads and rewires existing
// entries, so the snapshot cannot be invalidated mid-pass.
func (r *referenceResolver) resolveAll() error {
	for _, t := range r.registry.Types() {
		if err := r.resolveOne(t); err != nil {
			return err
		}
	}
	return nil
}

func (r *referenceResolver) resolveOne(t Type) error {
	switch t := t.(type) {
	case *Object:
		if err := r.resolveFields(t.Name, t.Fields); err != nil {
			return err
		}
		for i, entry := range t.interfaces {
			converted, err := r.convertTypeReference(t.Name, entry)
			if err != nil {
				return err
			}
			iface, ok := converted.(*Interface)
			if !ok {
				return NewError(fmt.Sprintf(
					"Object %q may only implement Interface types; %q is not one.",
					t.Name, displayTypeName(converted)))
			}
			// Re-check resolvability: at collection time the interface may
			// still have been a bare name.
			if err := checkInterfaceResolvable(iface, t); err != nil {
				return err
			}
			t.interfaces[i] = iface
			iface.addPossibleType(t)
		}
		return nil

	case *Interface:
		return r.resolveFields(t.Name, t.Fields)

	case *InputObject:
		return r.resolveFields(t.Name, t.Fields)

	case *Union:
		for i, entry := range t.possibleTypes {
			converted, err := r.convertTypeReference(t.Name, entry)
			if err != nil {
				return err
			}
			object, ok := converted.(*Object)
			if !ok {
				return NewError(fmt.Sprintf(
					"Union %q may only include Object types; %q is not one.",
					t.Name, displayTypeName(converted)))
			}
			if err := checkUnionMemberResolvable(t, object); err != nil {
				return err
			}
			t.possibleTypes[i] = object
		}
		return nil
	}

	// Scalar and Enum are leaves.
	return nil
}

func (r *referenceResolver) resolveFields(owner string, fields []*Field) error {
	for _, field := range fields {
		fieldType, err := r.convertTypeReference(owner, field.Type)
		if err != nil {
			return err
		}
		field.Type = fieldType

		for _, arg := range field.Args {
			argType, err := r.convertTypeReference(owner, arg.Type)
			if err != nil {
				return err
			}
			arg.Type = argType
		}
	}
	return nil
}

// resolveDirectiveArgs closes the argument types of directive definitions.
// Directives are not registry entries, so they get their own walk after the
// registered types are done.
func (r *referenceResolver) resolveDirectiveArgs(directives DirectiveList) error {
	for _, directive := range directives {
		for _, arg := range directive.Args {
			argType, err := r.convertTypeReference("@"+directive.Name, arg.Type)
			if err != nil {
				return err
			}
			arg.Type = argType
		}
	}
	return nil
}

// convertTypeReference replaces t with its concrete counterpart: wrapper
// chains are rebuilt around the converted inner type, references are looked
// up in the registry, and everything else is already concrete and returned
// unchanged. The owner only serves diagnostics.
func (r *referenceResolver) convertTypeReference(owner string, t Type) (Type, error) {
	switch t := t.(type) {
	case *NonNull:
		inner, err := r.convertTypeReference(owner, t.OfType)
		if err != nil {
			return nil, err
		}
		return NewNonNullOfType(inner)

	case *List:
		inner, err := r.convertTypeReference(owner, t.OfType)
		if err != nil {
			return nil, err
		}
		return NewListOfType(inner)

	case *TypeReference:
		resolved := r.registry.Lookup(t.TypeName)
		if resolved == nil {
			return nil, r.unresolvedReferenceError(t.TypeName, owner)
		}
		return resolved, nil
	}

	return t, nil
}

// unresolvedReferenceError reports a reference whose name never resolved to
// any registered type, which indicates a typo or a missing declaration in the
// source schema. Names lexically close to the missing one are offered as
// suggestions.
func (r *referenceResolver) unresolvedReferenceError(name string, owner string) error {
	message := fmt.Sprintf("Unknown type %q referenced from %q.", name, owner)

	suggestions := util.SuggestionList(name, r.registry.TypeNames())
	if len(suggestions) > 0 {
		var b strings.Builder
		util.OrList(&b, suggestions, 5, true)
		message = fmt.Sprintf("%s Did you mean %s?", message, b.String())
	}

	return NewError(
		message,
		ErrKindUnresolvedReference,
		TypeNames{name, owner},
		Suggestions(suggestions),
	)
}
