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

package util

import (
	"math"
	"sort"
	"strings"
)

// SuggestionList, given an invalid input string and a list of valid options,
// returns a filtered list of valid options sorted based on their similarity
// with the input.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	var (
		suggestions []string
		distances   = map[string]int{}
	)
	inputThreshold := float64(len(input)) / 2.0
	for _, option := range options {
		distance := lexicalDistance(input, option)
		threshold := math.Max(math.Max(inputThreshold, float64(len(option))/2.0), 1)
		if float64(distance) <= threshold {
			suggestions = append(suggestions, option)
			distances[option] = distance
		}
	}

	// Sort options by their distance; ties keep lexical order for stable
	// output.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return distances[suggestions[i]] < distances[suggestions[j]]
	})
	return suggestions
}

// lexicalDistance computes the distance between strings a and b: the minimum
// number of edits (insertion, deletion, substitution of a single character,
// or swap of two adjacent characters) needed to transform one into the other.
//
// Includes a custom alteration from Damerau-Levenshtein to treat case changes
// as a single edit, which helps identify mis-cased values with an edit
// distance of 1.
func lexicalDistance(aStr string, bStr string) int {
	if aStr == bStr {
		return 0
	}

	a := strings.ToLower(aStr)
	b := strings.ToLower(bStr)

	// Any case change counts as a single edit.
	if a == b {
		return 1
	}

	aLength := len(a)
	bLength := len(b)

	d := make([][]int, aLength+1)
	for i := 0; i <= aLength; i++ {
		d[i] = make([]int, bLength+1)
		d[i][0] = i
	}
	for j := 1; j <= bLength; j++ {
		d[0][j] = j
	}

	for i := 1; i <= aLength; i++ {
		for j := 1; j <= bLength; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			best := d[i-1][j] + 1 // deletion
			if insertion := d[i][j-1] + 1; insertion < best {
				best = insertion
			}
			if substitution := d[i-1][j-1] + cost; substitution < best {
				best = substitution
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if swap := d[i-2][j-2] + cost; swap < best {
					best = swap
				}
			}
			d[i][j] = best
		}
	}

	return d[aLength][bLength]
}
