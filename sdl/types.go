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
)

// Type is implemented by every node kind in the type graph. The set of kinds
// is closed: Scalar, Object, Interface, Union, Enum and InputObject are the
// named kinds eligible for registry storage, List and NonNull wrap another
// type, and TypeReference stands for a named type to be looked up later.
// Builder and resolver switch exhaustively over these kinds; a new kind is a
// deliberate extension, not a plugin point.
type Type interface {
	// String representation when printing the type
	fmt.Stringer

	// sdlType is a special mark to make sure that only the node kinds defined
	// in this package can be assigned to Type.
	sdlType()
}

// TypeDefinition is a construct that can produce a named type node on demand.
// It is the "raw type descriptor" form of a type: a field or argument may
// carry a TypeDefinition instead of a Type, in which case the node is
// instantiated (once) during the collection phase. Two fields sharing the
// same TypeDefinition value resolve to the same node instance.
type TypeDefinition interface {
	// NewType instantiates the node described by the definition.
	NewType() (Type, error)
}

// TypeResolver decides, given a value at execution time, which concrete
// Object type the value represents. It is attached to Interface and Union
// types. This package only ever checks a resolver for presence; invoking it
// is entirely the executor's business.
type TypeResolver interface {
	ResolveConcreteType(value interface{}) (*Object, error)
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as
// TypeResolver.
type TypeResolverFunc func(value interface{}) (*Object, error)

// ResolveConcreteType calls f(value).
func (f TypeResolverFunc) ResolveConcreteType(value interface{}) (*Object, error) {
	return f(value)
}

// TypeResolverFunc implements TypeResolver.
var _ TypeResolver = TypeResolverFunc(nil)

// IsTypeOfFunc answers whether a value is an instance of the Object type the
// function is attached to. Like TypeResolver, it is never called here; only
// its presence matters to graph construction.
type IsTypeOfFunc func(value interface{}) bool

//===----------------------------------------------------------------------------------------====//
// Type predication
//===----------------------------------------------------------------------------------------====//

// NamedTypeOf returns the given type if it is a non-wrapping type. Otherwise,
// return the underlying type of the wrapping type chain. Note that the result
// may be a TypeReference, which carries a name but is not itself a named
// type.
func NamedTypeOf(t Type) Type {
	for {
		switch ttype := t.(type) {
		case *List:
			if ttype == nil {
				return nil
			}
			t = ttype.OfType

		case *NonNull:
			if ttype == nil {
				return nil
			}
			t = ttype.OfType

		default:
			return t
		}
	}
}

// NullableTypeOf returns the given type if it is not a non-null type.
// Otherwise, return the inner type of the non-null type.
func NullableTypeOf(t Type) Type {
	if t, ok := t.(*NonNull); ok && t != nil {
		return t.OfType
	}
	return t
}

// NamedTypeNameOf strips List/Non-Null decoration from a type name, so
// "[Episode!]!" becomes "Episode". Registry lookups accept decorated names
// and canonicalize them with this function.
func NamedTypeNameOf(name string) string {
	return strings.TrimRight(strings.TrimLeft(name, "["), "]!")
}

// TypeNameOf returns the declared name of a named type. Wrappers and
// references yield an empty string; use NamedTypeOf first to reach the
// underlying type of a wrapper chain.
func TypeNameOf(t Type) string {
	switch t := t.(type) {
	case *Scalar:
		return t.Name
	case *Object:
		return t.Name
	case *Interface:
		return t.Name
	case *Union:
		return t.Name
	case *Enum:
		return t.Name
	case *InputObject:
		return t.Name
	default:
		return ""
	}
}

// IsNamedType returns true if the type is a non-wrapping, non-reference type.
func IsNamedType(t Type) bool {
	return TypeNameOf(t) != ""
}

// IsWrappingType returns true if the given type is a List or NonNull type.
func IsWrappingType(t Type) bool {
	switch t.(type) {
	case *List, *NonNull:
		return true
	default:
		return false
	}
}

// IsReferenceType returns true if the given type is a TypeReference.
func IsReferenceType(t Type) bool {
	_, ok := t.(*TypeReference)
	return ok
}

// IsAbstractType returns true if the given type is an Interface or Union
// type.
func IsAbstractType(t Type) bool {
	switch t.(type) {
	case *Interface, *Union:
		return true
	default:
		return false
	}
}

// IsLeafType returns true if the given type can terminate query execution.
func IsLeafType(t Type) bool {
	switch t.(type) {
	case *Scalar, *Enum:
		return true
	default:
		return false
	}
}

// IsInputType returns true if the given type is valid for values in input
// arguments.
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType returns true if the given type is valid for values in field
// output.
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	default:
		return false
	}
}

// kindOf names a node kind for diagnostics.
func kindOf(t Type) string {
	switch t.(type) {
	case *Scalar:
		return "Scalar"
	case *Object:
		return "Object"
	case *Interface:
		return "Interface"
	case *Union:
		return "Union"
	case *Enum:
		return "Enum"
	case *InputObject:
		return "InputObject"
	case *List:
		return "List"
	case *NonNull:
		return "NonNull"
	case *TypeReference:
		return "TypeReference"
	default:
		return fmt.Sprintf("%T", t)
	}
}

// displayTypeName returns the best available name for a node in diagnostics:
// the declared name for named types, the referenced name for references, and
// the printed form otherwise.
func displayTypeName(t Type) string {
	if t == nil {
		return "<nil>"
	}
	if name := TypeNameOf(t); name != "" {
		return name
	}
	if ref, ok := t.(*TypeReference); ok {
		return ref.TypeName
	}
	return t.String()
}

// bindDefinition records the TypeDefinition a node was instantiated from so
// the registry can find the node again given only the definition.
func bindDefinition(t Type, def TypeDefinition) {
	switch t := t.(type) {
	case *Scalar:
		t.definition = def
	case *Object:
		t.definition = def
	case *Interface:
		t.definition = def
	case *Union:
		t.definition = def
	case *Enum:
		t.definition = def
	case *InputObject:
		t.definition = def
	}
}

// definitionOf is the read side of bindDefinition.
func definitionOf(t Type) TypeDefinition {
	switch t := t.(type) {
	case *Scalar:
		return t.definition
	case *Object:
		return t.definition
	case *Interface:
		return t.definition
	case *Union:
		return t.definition
	case *Enum:
		return t.definition
	case *InputObject:
		return t.definition
	default:
		return nil
	}
}
