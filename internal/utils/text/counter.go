// Package text provides utilities for measuring text.
// Lengths are counted in Unicode characters (runes) so that names and titles
// written in any script are measured the same way a reader would count them.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
//
// Examples:
//
//	CountRunes("hello")      // returns 5
//	CountRunes("こんにちは")   // returns 5
//	CountRunes("Art Café")   // returns 8
//	CountRunes("")           // returns 0
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// LengthBetween reports whether text has between minLen and maxLen runes, inclusive.
func LengthBetween(text string, minLen, maxLen int) bool {
	n := CountRunes(text)
	return n >= minLen && n <= maxLen
}
