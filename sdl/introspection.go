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

// Introspection meta-types. They are ordinary nodes that reference each other
// by name, so seeding them exercises the same two-phase machinery as user
// declarations. Fresh instances are built per registry because the closing
// pass rewires field types in place.

func introspectionTypes() []Type {
	typeKind := &Enum{
		Name:        "__TypeKind",
		Description: "An enum describing what kind of type a given `__Type` is.",
		Values: []EnumValue{
			{Name: "SCALAR", Description: "Indicates this type is a scalar."},
			{Name: "OBJECT", Description: "Indicates this type is an object. `fields` and `interfaces` are valid fields."},
			{Name: "INTERFACE", Description: "Indicates this type is an interface. `fields` and `possibleTypes` are valid fields."},
			{Name: "UNION", Description: "Indicates this type is a union. `possibleTypes` is a valid field."},
			{Name: "ENUM", Description: "Indicates this type is an enum. `enumValues` is a valid field."},
			{Name: "INPUT_OBJECT", Description: "Indicates this type is an input object. `inputFields` is a valid field."},
			{Name: "LIST", Description: "Indicates this type is a list. `ofType` is a valid field."},
			{Name: "NON_NULL", Description: "Indicates this type is a non-null. `ofType` is a valid field."},
		},
	}

	directiveLocation := &Enum{
		Name: "__DirectiveLocation",
		Description: "A Directive can be adjacent to many parts of the schema and query languages; " +
			"`__DirectiveLocation` describes one such possible adjacency.",
		Values: []EnumValue{
			{Name: "QUERY"},
			{Name: "MUTATION"},
			{Name: "SUBSCRIPTION"},
			{Name: "FIELD"},
			{Name: "FRAGMENT_DEFINITION"},
			{Name: "FRAGMENT_SPREAD"},
			{Name: "INLINE_FRAGMENT"},
			{Name: "SCHEMA"},
			{Name: "SCALAR"},
			{Name: "OBJECT"},
			{Name: "FIELD_DEFINITION"},
			{Name: "ARGUMENT_DEFINITION"},
			{Name: "INTERFACE"},
			{Name: "UNION"},
			{Name: "ENUM"},
			{Name: "ENUM_VALUE"},
			{Name: "INPUT_OBJECT"},
			{Name: "INPUT_FIELD_DEFINITION"},
		},
	}

	typeType := &Object{
		Name: "__Type",
		Description: "The fundamental unit of any type system: every named and wrapping type in a " +
			"schema is represented by a `__Type`, discriminated by the `__TypeKind` enum.",
		Fields: []*Field{
			{Name: "kind", Type: MustNewNonNullOfType(NewTypeReference("__TypeKind"))},
			{Name: "name", Type: String()},
			{Name: "description", Type: String()},
			{
				Name: "fields",
				Type: MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__Field"))),
				Args: []*Argument{
					{Name: "includeDeprecated", Type: Boolean(), DefaultValue: false},
				},
			},
			{Name: "interfaces", Type: MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__Type")))},
			{Name: "possibleTypes", Type: MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__Type")))},
			{
				Name: "enumValues",
				Type: MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__EnumValue"))),
				Args: []*Argument{
					{Name: "includeDeprecated", Type: Boolean(), DefaultValue: false},
				},
			},
			{Name: "inputFields", Type: MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__InputValue")))},
			{Name: "ofType", Type: NewTypeReference("__Type")},
		},
	}

	fieldType := &Object{
		Name: "__Field",
		Description: "Object and Interface types are described by a list of Fields, each of which " +
			"has a name, potentially a list of arguments, and a return type.",
		Fields: []*Field{
			{Name: "name", Type: MustNewNonNullOfType(String())},
			{Name: "description", Type: String()},
			{Name: "args", Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__InputValue"))))},
			{Name: "type", Type: MustNewNonNullOfType(NewTypeReference("__Type"))},
			{Name: "isDeprecated", Type: MustNewNonNullOfType(Boolean())},
			{Name: "deprecationReason", Type: String()},
		},
	}

	inputValueType := &Object{
		Name: "__InputValue",
		Description: "Arguments provided to Fields or Directives and the input fields of an " +
			"InputObject are represented as Input Values which describe their type and optionally " +
			"a default value.",
		Fields: []*Field{
			{Name: "name", Type: MustNewNonNullOfType(String())},
			{Name: "description", Type: String()},
			{Name: "type", Type: MustNewNonNullOfType(NewTypeReference("__Type"))},
			{
				Name:        "defaultValue",
				Description: "A GraphQL-formatted string representing the default value for this input value.",
				Type:        String(),
			},
		},
	}

	enumValueType := &Object{
		Name: "__EnumValue",
		Description: "One possible value for a given Enum. Enum values are unique values, not a " +
			"placeholder for a string or numeric value.",
		Fields: []*Field{
			{Name: "name", Type: MustNewNonNullOfType(String())},
			{Name: "description", Type: String()},
			{Name: "isDeprecated", Type: MustNewNonNullOfType(Boolean())},
			{Name: "deprecationReason", Type: String()},
		},
	}

	directiveType := &Object{
		Name: "__Directive",
		Description: "A Directive provides a way to describe alternate runtime execution and type " +
			"validation behavior in a GraphQL document.",
		Fields: []*Field{
			{Name: "name", Type: MustNewNonNullOfType(String())},
			{Name: "description", Type: String()},
			{Name: "locations", Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__DirectiveLocation"))))},
			{Name: "args", Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__InputValue"))))},
		},
	}

	schemaType := &Object{
		Name: "__Schema",
		Description: "A Schema is a collection of type definitions exposed by a service; it also " +
			"names the root types for each kind of operation.",
		Fields: []*Field{
			{
				Name:        "types",
				Description: "A list of all types supported by this schema.",
				Type:        MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__Type")))),
			},
			{
				Name:        "queryType",
				Description: "The type that query operations will be rooted at.",
				Type:        MustNewNonNullOfType(NewTypeReference("__Type")),
			},
			{
				Name:        "mutationType",
				Description: "If this server supports mutation, the type that mutation operations will be rooted at.",
				Type:        NewTypeReference("__Type"),
			},
			{
				Name:        "subscriptionType",
				Description: "If this server supports subscription, the type that subscription operations will be rooted at.",
				Type:        NewTypeReference("__Type"),
			},
			{
				Name:        "directives",
				Description: "A list of all directives supported by this schema.",
				Type:        MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(NewTypeReference("__Directive")))),
			},
		},
	}

	return []Type{
		schemaType,
		typeType,
		fieldType,
		inputValueType,
		enumValueType,
		directiveType,
		directiveLocation,
		typeKind,
	}
}
