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
	"log"
	"runtime"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as
// "sdl.Build".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther                   ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindInvalidTopLevelType                    // A wrapper or reference node was passed where a named type was required.
	ErrKindUnresolvableInterface                  // Neither the interface nor an implementing object can determine runtime type membership.
	ErrKindUnresolvableUnionMember                // Same as above, for a union and one of its members.
	ErrKindEmptyUnion                             // A union declared zero possible types.
	ErrKindUnresolvedReference                    // A type reference whose name never resolved to a registered type.
	ErrKindInternal                               // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindInvalidTopLevelType:
		return "invalid top-level type"
	case ErrKindUnresolvableInterface:
		return "unresolvable interface implementation"
	case ErrKindUnresolvableUnionMember:
		return "unresolvable union member"
	case ErrKindEmptyUnion:
		return "empty union"
	case ErrKindUnresolvedReference:
		return "unresolved type reference"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// TypeNames records the names of the schema types an error is about, in the
// order they appear in the message (e.g. interface then object).
type TypeNames []string

// Suggestions lists candidate names for a misspelled type reference.
type Suggestions []string

// An Error describes a failure found while constructing a type graph. All
// diagnostics ride in the error value itself; there is no logging subsystem
// in this package.
//
// Inspired by the design of upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html
type Error struct {
	// Message describes the error.
	Message string

	// Types names the offending schema types.
	Types TypeNames

	// Suggestions offers likely intended names for an unresolved reference.
	Suggestions Suggestions

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed.
	Op Op

	// Kind is the class of error.
	Kind ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an error value from arguments.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case TypeNames:
			e.Types = arg

		case Suggestions:
			e.Suggestions = arg

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Pull kind, type names and suggestions from the underlying error when
	// the argument list did not provide them.
	if prev, ok := e.Err.(*Error); ok {
		if e.Kind == ErrKindOther {
			e.Kind = prev.Kind
		}
		if len(e.Types) == 0 {
			e.Types = prev.Types
		}
		if len(e.Suggestions) == 0 {
			e.Suggestions = prev.Suggestions
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an
// underlying error with a message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
		b.WriteString(": ")
	}
	if e.Kind != ErrKindOther {
		b.WriteString(e.Kind.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON serializes the error for inclusion in an API response.
func (e *Error) MarshalJSON() ([]byte, error) {
	var payload struct {
		Message     string   `json:"message"`
		Kind        string   `json:"kind,omitempty"`
		Types       []string `json:"types,omitempty"`
		Suggestions []string `json:"suggestions,omitempty"`
	}
	payload.Message = e.Message
	if e.Kind != ErrKindOther {
		payload.Kind = e.Kind.String()
	}
	payload.Types = e.Types
	payload.Suggestions = e.Suggestions
	return json.Marshal(&payload)
}
