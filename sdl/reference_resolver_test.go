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

package sdl_test

import (
	"github.com/botobag/selene/sdl"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// expectNoReference asserts that no TypeReference node remains reachable from
// t through wrapper chains, fields, arguments, interfaces or possible types.
// The type graph may be cyclic, so the walk tracks visited nodes.
func expectNoReference(t sdl.Type) {
	expectNoReferenceVisit(t, map[sdl.Type]bool{})
}

func expectNoReferenceVisit(t sdl.Type, visited map[sdl.Type]bool) {
	if visited[t] {
		return
	}
	visited[t] = true

	Expect(sdl.IsReferenceType(t)).Should(BeFalse(), "found unresolved reference %s", t)

	switch t := t.(type) {
	case *sdl.List:
		expectNoReferenceVisit(t.OfType, visited)
	case *sdl.NonNull:
		expectNoReferenceVisit(t.OfType, visited)
	case *sdl.Object:
		for _, field := range t.Fields {
			expectNoReferenceVisit(field.Type, visited)
			for _, arg := range field.Args {
				expectNoReferenceVisit(arg.Type, visited)
			}
		}
		for _, iface := range t.Interfaces() {
			Expect(sdl.IsReferenceType(iface)).Should(BeFalse())
		}
	case *sdl.Interface:
		for _, field := range t.Fields {
			expectNoReferenceVisit(field.Type, visited)
		}
	case *sdl.InputObject:
		for _, field := range t.Fields {
			expectNoReferenceVisit(field.Type, visited)
		}
	case *sdl.Union:
		for _, member := range t.PossibleTypes() {
			Expect(sdl.IsReferenceType(member)).Should(BeFalse())
		}
	}
}

var _ = Describe("Reference resolution", func() {
	It("leaves no reference reachable from any registered type", func() {
		droid := &sdl.Object{
			Name: "Droid",
			Fields: []*sdl.Field{
				{Name: "id", Type: sdl.MustNewNonNullOfType(sdl.ID())},
				{Name: "friends", Type: sdl.MustNewListOfType(sdl.NewTypeReference("Character"))},
			},
			IsTypeOf: alwaysInstance,
		}
		human := &sdl.Object{
			Name: "Human",
			Fields: []*sdl.Field{
				{Name: "id", Type: sdl.MustNewNonNullOfType(sdl.ID())},
				{Name: "friends", Type: sdl.MustNewListOfType(sdl.NewTypeReference("Character"))},
			},
			IsTypeOf: alwaysInstance,
		}
		character := &sdl.Interface{
			Name: "Character",
			Fields: []*sdl.Field{
				{Name: "id", Type: sdl.MustNewNonNullOfType(sdl.ID())},
			},
			ResolveType: sdl.TypeResolverFunc(alwaysObject),
		}
		searchResult := &sdl.Union{
			Name: "SearchResult",
			MemberTypes: []sdl.Type{
				sdl.NewTypeReference("Human"),
				sdl.NewTypeReference("Droid"),
			},
		}

		registry := sdl.MustBuild(&sdl.BuildConfig{
			Types: []sdl.Type{droid, human, character, searchResult},
		})
		for _, t := range registry.Types() {
			expectNoReference(t)
		}
		Expect(searchResult.PossibleTypes()).Should(Equal([]*sdl.Object{human, droid}))
	})

	It("reports an unknown name with its referencing type and suggestions", func() {
		query := &sdl.Object{
			Name:   "Query",
			Fields: []*sdl.Field{{Name: "greeting", Type: sdl.NewTypeReference("Strin")}},
		}

		e := buildError(&sdl.BuildConfig{Types: []sdl.Type{query}})
		Expect(e.Kind).Should(Equal(sdl.ErrKindUnresolvedReference))
		Expect(e.Types).Should(Equal(sdl.TypeNames{"Strin", "Query"}))
		Expect(e.Suggestions).Should(Equal(sdl.Suggestions{"String"}))
		Expect(e.Error()).Should(ContainSubstring(
			`Unknown type "Strin" referenced from "Query". Did you mean "String"?`))
	})

	It("reports an unknown name without suggestions when nothing is close", func() {
		query := &sdl.Object{
			Name:   "Query",
			Fields: []*sdl.Field{{Name: "widget", Type: sdl.NewTypeReference("Zyzzyvagram")}},
		}

		e := buildError(&sdl.BuildConfig{Types: []sdl.Type{query}})
		Expect(e.Kind).Should(Equal(sdl.ErrKindUnresolvedReference))
		Expect(e.Suggestions).Should(BeEmpty())
		Expect(e.Error()).Should(ContainSubstring(`Unknown type "Zyzzyvagram" referenced from "Query".`))
		Expect(e.Error()).ShouldNot(ContainSubstring("Did you mean"))
	})

	It("reports an unknown name buried in a wrapper chain", func() {
		query := &sdl.Object{
			Name: "Query",
			Fields: []*sdl.Field{
				{
					Name: "widgets",
					Type: sdl.MustNewNonNullOfType(
						sdl.MustNewListOfType(sdl.NewTypeReference("Widget"))),
				},
			},
		}

		e := buildError(&sdl.BuildConfig{Types: []sdl.Type{query}})
		Expect(e.Kind).Should(Equal(sdl.ErrKindUnresolvedReference))
		Expect(e.Types).Should(Equal(sdl.TypeNames{"Widget", "Query"}))
	})

	It("reports an unknown name in an argument type", func() {
		query := &sdl.Object{
			Name: "Query",
			Fields: []*sdl.Field{
				{
					Name: "search",
					Type: sdl.String(),
					Args: []*sdl.Argument{
						{Name: "filter", Type: sdl.NewTypeReference("SearchFilter")},
					},
				},
			},
		}

		e := buildError(&sdl.BuildConfig{Types: []sdl.Type{query}})
		Expect(e.Kind).Should(Equal(sdl.ErrKindUnresolvedReference))
		Expect(e.Types).Should(Equal(sdl.TypeNames{"SearchFilter", "Query"}))
	})

	Describe("deferred invariant checks", func() {
		It("re-checks interface resolvability once the referent is concrete", func() {
			dog := &sdl.Object{
				Name:           "Dog",
				InterfaceTypes: []sdl.Type{sdl.NewTypeReference("Pet")},
				Fields:         []*sdl.Field{{Name: "name", Type: sdl.String()}},
			}
			pet := &sdl.Interface{
				Name:   "Pet",
				Fields: []*sdl.Field{{Name: "name", Type: sdl.String()}},
			}

			e := buildError(&sdl.BuildConfig{Types: []sdl.Type{dog, pet}})
			Expect(e.Kind).Should(Equal(sdl.ErrKindUnresolvableInterface))
			Expect(e.Types).Should(Equal(sdl.TypeNames{"Pet", "Dog"}))
		})

		It("links an interface declared as a forward reference", func() {
			dog := &sdl.Object{
				Name:           "Dog",
				InterfaceTypes: []sdl.Type{sdl.NewTypeReference("Pet")},
				Fields:         []*sdl.Field{{Name: "name", Type: sdl.String()}},
				IsTypeOf:       alwaysInstance,
			}
			pet := &sdl.Interface{
				Name:   "Pet",
				Fields: []*sdl.Field{{Name: "name", Type: sdl.String()}},
			}

			sdl.MustBuild(&sdl.BuildConfig{Types: []sdl.Type{dog, pet}})
			Expect(dog.Interfaces()).Should(ConsistOf(pet))
			Expect(pet.PossibleTypes()).Should(ConsistOf(dog))
		})

		It("re-checks union member resolvability once the referent is concrete", func() {
			favorite := &sdl.Union{
				Name:        "Favorite",
				MemberTypes: []sdl.Type{sdl.NewTypeReference("Cat")},
			}
			cat := &sdl.Object{
				Name:   "Cat",
				Fields: []*sdl.Field{{Name: "name", Type: sdl.String()}},
			}

			e := buildError(&sdl.BuildConfig{Types: []sdl.Type{favorite, cat}})
			Expect(e.Kind).Should(Equal(sdl.ErrKindUnresolvableUnionMember))
			Expect(e.Types).Should(Equal(sdl.TypeNames{"Favorite", "Cat"}))
		})

		It("rejects a union member that resolves to a non-object", func() {
			favorite := &sdl.Union{
				Name:        "Favorite",
				MemberTypes: []sdl.Type{sdl.NewTypeReference("Mood")},
				ResolveType: sdl.TypeResolverFunc(alwaysObject),
			}
			mood := &sdl.Enum{
				Name:   "Mood",
				Values: []sdl.EnumValue{{Name: "HAPPY"}, {Name: "GRUMPY"}},
			}

			_, err := sdl.Build(&sdl.BuildConfig{Types: []sdl.Type{favorite, mood}})
			Expect(err).Should(MatchError(ContainSubstring(
				`Union "Favorite" may only include Object types; "Mood" is not one.`)))
		})

		It("rejects an interface reference that resolves to a non-interface", func() {
			dog := &sdl.Object{
				Name:           "Dog",
				InterfaceTypes: []sdl.Type{sdl.NewTypeReference("Tag")},
				Fields:         []*sdl.Field{{Name: "name", Type: sdl.String()}},
			}
			tag := &sdl.Object{
				Name:   "Tag",
				Fields: []*sdl.Field{{Name: "label", Type: sdl.String()}},
			}

			_, err := sdl.Build(&sdl.BuildConfig{Types: []sdl.Type{dog, tag}})
			Expect(err).Should(MatchError(ContainSubstring(
				`Object "Dog" may only implement Interface types; "Tag" is not one.`)))
		})
	})
})
