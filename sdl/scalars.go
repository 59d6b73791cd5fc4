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

// Built-in scalar types. These are leaves with no children, so sharing the
// instances across registries is safe; every Build pre-registers all of them.

var (
	intType = &Scalar{
		Name:        "Int",
		Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
	}

	floatType = &Scalar{
		Name:        "Float",
		Description: "The `Float` scalar type represents signed double-precision fractional values.",
	}

	stringType = &Scalar{
		Name:        "String",
		Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	}

	booleanType = &Scalar{
		Name:        "Boolean",
		Description: "The `Boolean` scalar type represents `true` or `false`.",
	}

	idType = &Scalar{
		Name: "ID",
		Description: "The `ID` scalar type represents a unique identifier. It is serialized in the " +
			"same way as a String but is not intended to be human-readable.",
	}

	dateType = &Scalar{
		Name:        "Date",
		Description: "The `Date` scalar type represents a calendar date with no time-of-day component.",
	}

	timeType = &Scalar{
		Name:        "Time",
		Description: "The `Time` scalar type represents a time of day with no date component.",
	}

	dateTimeType = &Scalar{
		Name:        "DateTime",
		Description: "The `DateTime` scalar type represents a point in time, including its date.",
	}

	decimalType = &Scalar{
		Name:        "Decimal",
		Description: "The `Decimal` scalar type represents an exact fixed-point decimal value.",
	}
)

// Int returns the built-in "Int" scalar type.
func Int() *Scalar { return intType }

// Float returns the built-in "Float" scalar type.
func Float() *Scalar { return floatType }

// String returns the built-in "String" scalar type.
func String() *Scalar { return stringType }

// Boolean returns the built-in "Boolean" scalar type.
func Boolean() *Scalar { return booleanType }

// ID returns the built-in "ID" scalar type.
func ID() *Scalar { return idType }

// Date returns the built-in "Date" scalar type.
func Date() *Scalar { return dateType }

// Time returns the built-in "Time" scalar type.
func Time() *Scalar { return timeType }

// DateTime returns the built-in "DateTime" scalar type.
func DateTime() *Scalar { return dateTimeType }

// Decimal returns the built-in "Decimal" scalar type.
func Decimal() *Scalar { return decimalType }

// builtInScalars lists the scalar types pre-registered by every Build.
func builtInScalars() []Type {
	return []Type{
		Int(),
		Float(),
		String(),
		Boolean(),
		ID(),
		Date(),
		Time(),
		DateTime(),
		Decimal(),
	}
}
