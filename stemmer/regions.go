package stemmer

import (
	"strings"
	"unicode/utf8"
)

// The R1, R2 and RV regions are the standard Snowball word regions:
// suffix rules consult them to decide whether a matched suffix sits deep
// enough in the word to be stripped. R2 is always a suffix of R1, which
// is always a suffix of the word; RV has its own definition. Regions are
// computed once per word and afterwards maintained by the env edit
// helpers, never re-derived from stale offsets.

// computeR1R2 returns the standard R1 and R2 regions of word.
//
// R1 is the suffix after the first non-vowel that follows a vowel, or
// the empty string if there is no such position. R2 is R1's own R1.
func computeR1R2(word string, isVowel func(rune) bool) (r1, r2 string) {
	r1 = regionAfterNonVowel(word, isVowel)
	r2 = regionAfterNonVowel(r1, isVowel)
	return r1, r2
}

// computeR1R2Prefix is computeR1R2 with per-language prefix overrides:
// when word starts with one of the prefixes, R1 begins right after that
// prefix and R2 is derived from it in the standard way.
func computeR1R2Prefix(word string, prefixes []string, isVowel func(rune) bool) (r1, r2 string) {
	for _, p := range prefixes {
		if strings.HasPrefix(word, p) {
			r1 = word[len(p):]
			return r1, regionAfterNonVowel(r1, isVowel)
		}
	}
	return computeR1R2(word, isVowel)
}

// computeRV returns the standard RV region of word.
//
// If the second letter is a consonant, RV is the suffix after the next
// following vowel. If the first two letters are both vowels, RV is the
// suffix after the next following non-vowel. Otherwise RV is the suffix
// after the third letter.
func computeRV(word string, isVowel func(rune) bool) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return ""
	}
	switch {
	case !isVowel(runes[1]):
		for i := 2; i < len(runes); i++ {
			if isVowel(runes[i]) {
				return string(runes[i+1:])
			}
		}
	case isVowel(runes[0]) && isVowel(runes[1]):
		for i := 2; i < len(runes); i++ {
			if !isVowel(runes[i]) {
				return string(runes[i+1:])
			}
		}
	default:
		if len(runes) > 3 {
			return string(runes[3:])
		}
	}
	return ""
}

// regionAfterNonVowel returns the suffix of s starting right after the
// first position where a non-vowel follows a vowel.
func regionAfterNonVowel(s string, isVowel func(rune) bool) string {
	prevVowel := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if i > 0 && !isVowel(r) && prevVowel {
			return s[i+size:]
		}
		prevVowel = isVowel(r)
		i += size
	}
	return ""
}

// floorR1 enforces the Scandinavian region constraint that R1 begin no
// earlier than after the first minPrefix letters of the word.
func floorR1(word, r1 string, minPrefix int) string {
	idx := 0
	for n := 0; n < minPrefix && idx < len(word); n++ {
		_, size := utf8.DecodeRuneInString(word[idx:])
		idx += size
	}
	if len(word)-len(r1) < idx {
		return word[idx:]
	}
	return r1
}
