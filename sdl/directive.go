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

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Enumeration of DirectiveLocation
const (
	// Executable directive locations
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"

	// Type system directive locations
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// Directive modifies validator, executor or client tool behavior. Its
// arguments use the same Argument shape as fields; Build registers the types
// referenced by every directive argument alongside the root types.
type Directive struct {
	// Name of the defining Directive
	Name string

	// Description for the Directive
	Description string

	// Locations in the schema where the defining directive can appear
	Locations []DirectiveLocation

	// Args to be provided when using the directive
	Args []*Argument
}

// DirectiveList is a list of Directive.
type DirectiveList []*Directive

// Lookup finds a directive with given name in the list.
func (directives DirectiveList) Lookup(name string) *Directive {
	for _, directive := range directives {
		if directive.Name == name {
			return directive
		}
	}
	return nil
}

// SkipDirective returns the standard @skip directive definition.
func SkipDirective() *Directive {
	return &Directive{
		Name:        "skip",
		Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
		Locations: []DirectiveLocation{
			DirectiveLocationField,
			DirectiveLocationFragmentSpread,
			DirectiveLocationInlineFragment,
		},
		Args: []*Argument{
			{
				Name:        "if",
				Description: "Skipped when true.",
				Type:        MustNewNonNullOfType(Boolean()),
			},
		},
	}
}

// IncludeDirective returns the standard @include directive definition.
func IncludeDirective() *Directive {
	return &Directive{
		Name:        "include",
		Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
		Locations: []DirectiveLocation{
			DirectiveLocationField,
			DirectiveLocationFragmentSpread,
			DirectiveLocationInlineFragment,
		},
		Args: []*Argument{
			{
				Name:        "if",
				Description: "Included when true.",
				Type:        MustNewNonNullOfType(Boolean()),
			},
		},
	}
}

// DefaultDeprecationReason is the value of the "reason" argument when
// @deprecated is used without one.
const DefaultDeprecationReason = "No longer supported"

// DeprecatedDirective returns the standard @deprecated directive definition.
func DeprecatedDirective() *Directive {
	return &Directive{
		Name:        "deprecated",
		Description: "Marks an element of a schema as no longer supported.",
		Locations: []DirectiveLocation{
			DirectiveLocationFieldDefinition,
			DirectiveLocationEnumValue,
		},
		Args: []*Argument{
			{
				Name: "reason",
				Description: "Explains why this element was deprecated, usually also including a " +
					"suggestion for how to access supported similar data.",
				Type:         String(),
				DefaultValue: DefaultDeprecationReason,
			},
		},
	}
}

// StandardDirectives returns the directive definitions that every schema
// carries unless explicitly excluded.
func StandardDirectives() DirectiveList {
	return DirectiveList{
		SkipDirective(),
		IncludeDirective(),
		DeprecatedDirective(),
	}
}
