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

// BuildConfig contains the declarations a type graph is constructed from.
type BuildConfig struct {
	// Types lists the root type declarations. Anything reachable from them is
	// registered as well.
	Types []Type

	// Directives lists the directive definitions whose argument types join the
	// graph.
	Directives DirectiveList

	// If true, the standard directives such as @skip are not included; the
	// directives provided above are the exact list processed.
	ExcludeStandardDirectives bool

	// Instantiate turns a TypeDefinition into a node when a field or argument
	// carries a definition instead of a type. Defaults to calling the
	// definition's own NewType.
	Instantiate TypeInstantiator

	// Normalizer canonicalizes field and argument names. Defaults to
	// DefaultNameNormalizer.
	Normalizer NameNormalizer
}

// Build constructs a closed type graph: it seeds the built-in scalar and
// introspection types, registers every root type and directive argument type
// (the collection phase), then resolves every remaining type reference to its
// concrete node (the closing phase). Any failure is fatal to the attempt; a
// broken schema is never handed back.
func Build(config *BuildConfig) (*TypeRegistry, error) {
	const op = Op("sdl.Build")

	if config == nil {
		config = &BuildConfig{}
	}

	builder := &graphBuilder{
		registry:    newTypeRegistry(),
		normalizer:  config.Normalizer,
		instantiate: config.Instantiate,
	}
	if builder.normalizer == nil {
		builder.normalizer = DefaultNameNormalizer()
	}
	if builder.instantiate == nil {
		builder.instantiate = func(def TypeDefinition) (Type, error) {
			return def.NewType()
		}
	}

	ctx := builder.newCollectionContext(nil)

	// Built-in type sets go through a nested context so their registrations
	// are forwarded to the root context as well.
	builtinCtx := builder.newCollectionContext(ctx)
	for _, t := range builtInScalars() {
		if err := builder.addType(t, builtinCtx); err != nil {
			return nil, NewError("failed to register built-in scalar types", err, op)
		}
	}
	for _, t := range introspectionTypes() {
		if err := builder.addType(t, builtinCtx); err != nil {
			return nil, NewError("failed to register introspection types", err, op)
		}
	}

	for _, t := range config.Types {
		if err := builder.addType(t, ctx); err != nil {
			return nil, NewError("failed to register schema types", err, op)
		}
	}

	directives := config.Directives
	if !config.ExcludeStandardDirectives {
		directives = append(StandardDirectives(), directives...)
	}
	for _, directive := range directives {
		for _, arg := range directive.Args {
			if err := builder.handleArgument(arg, ctx); err != nil {
				return nil, NewError("failed to register directive argument types", err, op)
			}
		}
	}

	resolver := &referenceResolver{registry: builder.registry}
	if err := resolver.resolveAll(); err != nil {
		return nil, NewError("failed to resolve type references", err, op)
	}
	if err := resolver.resolveDirectiveArgs(directives); err != nil {
		return nil, NewError("failed to resolve directive argument types", err, op)
	}

	return builder.registry, nil
}

// MustBuild is a convenience function equivalent to Build but panics on
// failure instead of returning an error.
func MustBuild(config *BuildConfig) *TypeRegistry {
	registry, err := Build(config)
	if err != nil {
		panic(err)
	}
	return registry
}
