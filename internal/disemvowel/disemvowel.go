// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package disemvowel removes ASCII vowels from text.
//
// Only the ten characters a, e, i, o, u, A, E, I, O, U are vowels. Accented
// vowels, other scripts and symbols pass through untouched.
package disemvowel

import "strings"

// IsVowel reports whether r is one of the ten ASCII vowels.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// Filter returns s with every ASCII vowel removed. The remaining characters
// keep their original order.
//
// UTF-8 never encodes a multi-byte rune using bytes below 0x80, so scanning
// bytes is exact and leaves every non-vowel byte in place, invalid
// sequences included.
func Filter(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if IsVowel(rune(s[i])) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Count returns the number of vowels Filter would remove from s.
func Count(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if IsVowel(rune(s[i])) {
			n++
		}
	}
	return n
}
