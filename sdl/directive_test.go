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

var _ = Describe("Directives", func() {
	Describe("StandardDirectives", func() {
		It("contains @skip, @include and @deprecated", func() {
			directives := sdl.StandardDirectives()
			Expect(directives).Should(HaveLen(3))
			Expect(directives.Lookup("skip")).ShouldNot(BeNil())
			Expect(directives.Lookup("include")).ShouldNot(BeNil())
			Expect(directives.Lookup("deprecated")).ShouldNot(BeNil())
		})

		It("returns fresh instances on every call", func() {
			Expect(sdl.StandardDirectives().Lookup("skip")).
				ShouldNot(BeIdenticalTo(sdl.StandardDirectives().Lookup("skip")))
		})
	})

	Describe("SkipDirective", func() {
		It("takes a non-null Boolean if argument", func() {
			skip := sdl.SkipDirective()
			Expect(skip.Locations).Should(ConsistOf(
				sdl.DirectiveLocationField,
				sdl.DirectiveLocationFragmentSpread,
				sdl.DirectiveLocationInlineFragment,
			))
			Expect(skip.Args).Should(HaveLen(1))
			Expect(skip.Args[0].Name).Should(Equal("if"))
			Expect(skip.Args[0].Type.String()).Should(Equal("Boolean!"))
		})
	})

	Describe("IncludeDirective", func() {
		It("takes a non-null Boolean if argument", func() {
			include := sdl.IncludeDirective()
			Expect(include.Args).Should(HaveLen(1))
			Expect(include.Args[0].Name).Should(Equal("if"))
			Expect(include.Args[0].Type.String()).Should(Equal("Boolean!"))
		})
	})

	Describe("DeprecatedDirective", func() {
		It("defaults the reason argument", func() {
			deprecated := sdl.DeprecatedDirective()
			Expect(deprecated.Locations).Should(ConsistOf(
				sdl.DirectiveLocationFieldDefinition,
				sdl.DirectiveLocationEnumValue,
			))
			Expect(deprecated.Args).Should(HaveLen(1))

			reason := deprecated.Args[0]
			Expect(reason.Name).Should(Equal("reason"))
			Expect(reason.Type).Should(BeIdenticalTo(sdl.String()))
			Expect(reason.HasDefaultValue()).Should(BeTrue())
			Expect(reason.DefaultValue).Should(Equal(sdl.DefaultDeprecationReason))
		})
	})

	Describe("DirectiveList", func() {
		It("returns nil for a name not in the list", func() {
			Expect(sdl.StandardDirectives().Lookup("defer")).Should(BeNil())
		})
	})
})
