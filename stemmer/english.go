package stemmer

import (
	"strings"
	"unicode/utf8"
)

// English Snowball stemmer. Six suffix phases (steps 0 through 5 of the
// published algorithm) run over the R1/R2 regions, after a preprocessing
// pass that unifies apostrophes and marks consonantal y. A table of
// special whole words bypasses the phases entirely.

var englishVowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'y': true,
}

func isEnglishVowel(r rune) bool {
	return englishVowels[r]
}

// englishDoubles are the consonants that undouble after certain strips.
var englishDoubles = []string{"bb", "dd", "ff", "gg", "mm", "nn", "pp", "rr", "tt"}

// englishLiEnding holds the letters that may directly precede a
// strippable final "li".
const englishLiEnding = "cdeghkmnrt"

// englishR1Prefixes override the standard R1 computation: for words with
// these prefixes R1 starts right after the prefix.
var englishR1Prefixes = []string{"gener", "commun", "arsen"}

// englishSpecial maps whole words to fixed stems, bypassing all phases.
// It both corrects words the rules would mangle (dying -> die) and pins
// invariant words the rules would shorten (news, atlas).
var englishSpecial = map[string]string{
	"skis":   "ski",
	"skies":  "sky",
	"dying":  "die",
	"lying":  "lie",
	"tying":  "tie",
	"idly":   "idl",
	"gently": "gentl",
	"ugly":   "ugli",
	"early":  "earli",
	"only":   "onli",
	"singly": "singl",

	"sky":      "sky",
	"news":     "news",
	"howe":     "howe",
	"atlas":    "atlas",
	"cosmos":   "cosmos",
	"bias":     "bias",
	"andes":    "andes",
	"inning":   "inning",
	"innings":  "inning",
	"outing":   "outing",
	"outings":  "outing",
	"canning":  "canning",
	"cannings": "canning",
	"herring":  "herring",
	"herrings": "herring",
	"earring":  "earring",
	"earrings": "earring",

	"proceed":    "proceed",
	"proceeds":   "proceed",
	"proceeded":  "proceed",
	"proceeding": "proceed",
	"exceed":     "exceed",
	"exceeds":    "exceed",
	"exceeded":   "exceed",
	"exceeding":  "exceed",
	"succeed":    "succeed",
	"succeeds":   "succeed",
	"succeeded":  "succeed",
	"succeeding": "succeed",
}

var apostrophes = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"‛", "'", // single high-reversed-9 quotation mark
)

// Step 0: contraction suffixes.
var englishStep0 = mustPhase(phase{
	mode: firstTail,
	rules: []suffixRule{
		{suffix: "'s'", apply: stripN(3)},
		{suffix: "'s", apply: stripN(2)},
		{suffix: "'", apply: stripN(1)},
	},
})

// Step 1a: plural suffixes. The match-only "us" and "ss" entries shield
// words like "abyss" from the bare "s" rule.
var englishStep1a = mustPhase(phase{
	mode: firstTail,
	rules: []suffixRule{
		{suffix: "sses", apply: stripN(2)},
		{suffix: "ied", apply: stripIedIes},
		{suffix: "ies", apply: stripIedIes},
		{suffix: "us"},
		{suffix: "ss"},
		{suffix: "s", when: vowelBeforePenult, apply: stripN(1)},
	},
})

// ied/ies reduce to "i" after a long enough prefix, else to "ie"
// (ties -> tie, but also cries -> cri).
func stripIedIes(e *env) {
	if utf8.RuneCountInString(e.word)-3 > 1 {
		e.strip(2)
	} else {
		e.strip(1)
	}
}

// vowelBeforePenult reports a vowel anywhere before the last two letters.
func vowelBeforePenult(e *env) bool {
	return hasVowelBefore(e.word, 2, isEnglishVowel)
}

// Step 1b: verbal suffixes, with post-strip repair.
var englishStep1b = mustPhase(phase{
	mode: firstTail,
	rules: []suffixRule{
		{suffix: "eedly", region: inR1, apply: rewriteEE(5)},
		{suffix: "ingly", when: vowelBeforeTail(5), apply: stripRepair(5)},
		{suffix: "edly", when: vowelBeforeTail(4), apply: stripRepair(4)},
		{suffix: "eed", region: inR1, apply: rewriteEE(3)},
		{suffix: "ing", when: vowelBeforeTail(3), apply: stripRepair(3)},
		{suffix: "ed", when: vowelBeforeTail(2), apply: stripRepair(2)},
	},
})

func rewriteEE(n int) func(*env) {
	return func(e *env) { e.rewrite(n, "ee") }
}

func vowelBeforeTail(n int) func(*env) bool {
	return func(e *env) bool { return hasVowelBefore(e.word, n, isEnglishVowel) }
}

// stripRepair strips the suffix, then repairs the exposed stem: restore
// the e of a truncated -ate/-ble/-ize, undouble a trailing consonant, or
// append an epenthetic e after a bare short syllable.
func stripRepair(n int) func(*env) {
	return func(e *env) {
		e.strip(n)
		switch {
		case hasAnySuffix(e.word, "at", "bl", "iz"):
			e.word += "e"
			e.r1 += "e"
			if utf8.RuneCountInString(e.word) > 5 || utf8.RuneCountInString(e.r1) >= 3 {
				e.r2 += "e"
			}
		case hasAnySuffix(e.word, englishDoubles...):
			e.strip(1)
		case endsShortSyllable(e):
			e.word += "e"
		}
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// endsShortSyllable reports the narrow consonant-vowel-consonant shape
// (or the two-letter vowel-consonant shape) that takes an epenthetic e,
// with w, x and consonantal Y excluded from the final position. Only a
// word whose R1 is still empty qualifies.
func endsShortSyllable(e *env) bool {
	if e.r1 != "" {
		return false
	}
	last := runeFromEnd(e.word, 1)
	n := utf8.RuneCountInString(e.word)
	if n >= 3 {
		if !isEnglishVowel(last) && !strings.ContainsRune("wxY", last) &&
			isEnglishVowel(runeFromEnd(e.word, 2)) &&
			!isEnglishVowel(runeFromEnd(e.word, 3)) {
			return true
		}
	}
	if n == 2 {
		first, _ := utf8.DecodeRuneInString(e.word)
		return isEnglishVowel(first) && !isEnglishVowel(last)
	}
	return false
}

// englishStep1c turns a final consonantal y into i (cry -> cri), leaving
// two-letter words alone.
func englishStep1c(e *env) {
	if utf8.RuneCountInString(e.word) <= 2 {
		return
	}
	last := runeFromEnd(e.word, 1)
	if (last == 'y' || last == 'Y') && !isEnglishVowel(runeFromEnd(e.word, 2)) {
		e.rewrite(1, "i")
	}
}

// Step 2: derivational suffix normalization keyed to R1.
var englishStep2 = mustPhase(phase{
	mode: firstTail,
	rules: []suffixRule{
		{suffix: "ization", region: inR1, apply: rewriteTo(7, "ize")},
		{suffix: "ational", region: inR1, apply: rewriteAte(7)},
		{suffix: "fulness", region: inR1, apply: stripN(4)},
		{suffix: "ousness", region: inR1, apply: rewriteTo(7, "ous")},
		{suffix: "iveness", region: inR1, apply: rewriteIve(7)},
		{suffix: "tional", region: inR1, apply: stripN(2)},
		{suffix: "biliti", region: inR1, apply: rewriteTo(6, "ble")},
		{suffix: "lessli", region: inR1, apply: stripN(2)},
		{suffix: "entli", region: inR1, apply: stripN(2)},
		{suffix: "ation", region: inR1, apply: rewriteAte(5)},
		{suffix: "alism", region: inR1, apply: rewriteTo(5, "al")},
		{suffix: "aliti", region: inR1, apply: rewriteTo(5, "al")},
		{suffix: "ousli", region: inR1, apply: rewriteTo(5, "ous")},
		{suffix: "iviti", region: inR1, apply: rewriteIve(5)},
		{suffix: "fulli", region: inR1, apply: stripN(2)},
		{suffix: "enci", region: inR1, apply: rewriteTo(1, "e")},
		{suffix: "anci", region: inR1, apply: rewriteTo(1, "e")},
		{suffix: "abli", region: inR1, apply: rewriteTo(1, "e")},
		{suffix: "izer", region: inR1, apply: rewriteTo(4, "ize")},
		{suffix: "ator", region: inR1, apply: rewriteAte(4)},
		{suffix: "alli", region: inR1, apply: rewriteTo(4, "al")},
		{suffix: "bli", region: inR1, apply: rewriteTo(3, "ble")},
		{suffix: "ogi", region: inR1, when: precededBy(4, "l"), apply: stripN(1)},
		{suffix: "li", region: inR1, when: precededBy(3, englishLiEnding), apply: stripN(2)},
	},
})

func rewriteTo(n int, repl string) func(*env) {
	return func(e *env) { e.rewrite(n, repl) }
}

// rewriteAte and rewriteIve carry the historical R2 collapse fallback of
// their rule groups.
func rewriteAte(n int) func(*env) {
	return func(e *env) { e.rewriteR2Fallback(n, "ate", "e") }
}

func rewriteIve(n int) func(*env) {
	return func(e *env) { e.rewriteR2Fallback(n, "ive", "e") }
}

// precededBy requires the rune at position n from the end of the word to
// be one of set.
func precededBy(n int, set string) func(*env) bool {
	return func(e *env) bool {
		r := runeFromEnd(e.word, n)
		return r != 0 && strings.ContainsRune(set, r)
	}
}

// Step 3: further derivational normalization keyed to R1, with the
// -ative rule additionally keyed to R2.
var englishStep3 = mustPhase(phase{
	mode: firstTail,
	rules: []suffixRule{
		{suffix: "ational", region: inR1, apply: rewriteTo(7, "ate")},
		{suffix: "tional", region: inR1, apply: stripN(2)},
		{suffix: "alize", region: inR1, apply: stripN(3)},
		{suffix: "icate", region: inR1, apply: rewriteTo(5, "ic")},
		{suffix: "iciti", region: inR1, apply: rewriteTo(5, "ic")},
		{suffix: "ative", region: inR1, when: r2Ends("ative"), apply: stripN(5)},
		{suffix: "ical", region: inR1, apply: rewriteTo(4, "ic")},
		{suffix: "ness", region: inR1, apply: stripN(4)},
		{suffix: "ful", region: inR1, apply: stripN(3)},
	},
})

func r2Ends(suffix string) func(*env) bool {
	return func(e *env) bool { return strings.HasSuffix(e.r2, suffix) }
}

// Step 4: residual suffix deletion keyed to R2.
var englishStep4 = mustPhase(phase{
	mode: firstTail,
	rules: []suffixRule{
		{suffix: "ement", region: inR2, apply: stripN(5)},
		{suffix: "ance", region: inR2, apply: stripN(4)},
		{suffix: "ence", region: inR2, apply: stripN(4)},
		{suffix: "able", region: inR2, apply: stripN(4)},
		{suffix: "ible", region: inR2, apply: stripN(4)},
		{suffix: "ment", region: inR2, apply: stripN(4)},
		{suffix: "ant", region: inR2, apply: stripN(3)},
		{suffix: "ent", region: inR2, apply: stripN(3)},
		{suffix: "ism", region: inR2, apply: stripN(3)},
		{suffix: "ate", region: inR2, apply: stripN(3)},
		{suffix: "iti", region: inR2, apply: stripN(3)},
		{suffix: "ous", region: inR2, apply: stripN(3)},
		{suffix: "ive", region: inR2, apply: stripN(3)},
		{suffix: "ize", region: inR2, apply: stripN(3)},
		{suffix: "ion", region: inR2, when: precededBy(4, "st"), apply: stripN(3)},
		{suffix: "al", region: inR2, apply: stripN(2)},
		{suffix: "er", region: inR2, apply: stripN(2)},
		{suffix: "ic", region: inR2, apply: stripN(2)},
	},
})

// Step 5: final letter trim. firstValid: a final e in R1 but not R2 gets
// its own weaker test after the R2 rule passes on it.
var englishStep5 = mustPhase(phase{
	mode: firstValid,
	rules: []suffixRule{
		{suffix: "l", when: doubleLInR2, apply: stripN(1)},
		{suffix: "e", region: inR2, apply: stripN(1)},
		{suffix: "e", region: inR1, when: eDeletable, apply: stripN(1)},
	},
})

func doubleLInR2(e *env) bool {
	return strings.HasSuffix(e.r2, "l") && runeFromEnd(e.word, 2) == 'l'
}

// eDeletable: the final e goes unless it directly follows a short
// syllable (consonant, vowel, then the e).
func eDeletable(e *env) bool {
	if utf8.RuneCountInString(e.word) < 4 {
		return false
	}
	r2, r3, r4 := runeFromEnd(e.word, 2), runeFromEnd(e.word, 3), runeFromEnd(e.word, 4)
	return isEnglishVowel(r2) || strings.ContainsRune("wxY", r2) ||
		!isEnglishVowel(r3) || isEnglishVowel(r4)
}

// markConsonantalY upcases y where it functions as a consonant (word
// initial or right after a vowel) so the phases can tell the two roles
// apart without re-deriving the distinction.
func markConsonantalY(word string) string {
	runes := []rune(word)
	changed := false
	if len(runes) > 0 && runes[0] == 'y' {
		runes[0] = 'Y'
		changed = true
	}
	for i := 1; i < len(runes); i++ {
		if runes[i] == 'y' && isEnglishVowel(runes[i-1]) {
			runes[i] = 'Y'
			changed = true
		}
	}
	if !changed {
		return word
	}
	return string(runes)
}

func unmarkY(word string) string {
	if !strings.ContainsRune(word, 'Y') {
		return word
	}
	return strings.Map(func(r rune) rune {
		if r == 'Y' {
			return 'y'
		}
		return r
	}, word)
}

// stemEnglish implements the Snowball English algorithm. The word must
// already be lowercased and longer than minStemLength runes.
func stemEnglish(word string) string {
	if stem, ok := englishSpecial[word]; ok {
		return stem
	}

	word = apostrophes.Replace(word)
	word = strings.TrimPrefix(word, "'")
	word = markConsonantalY(word)

	e := &env{word: word}
	e.r1, e.r2 = computeR1R2Prefix(word, englishR1Prefixes, isEnglishVowel)

	e.runPhase(englishStep0)
	e.runPhase(englishStep1a)
	e.runPhase(englishStep1b)
	englishStep1c(e)
	e.runPhase(englishStep2)
	e.runPhase(englishStep3)
	e.runPhase(englishStep4)
	e.runPhase(englishStep5)

	return unmarkY(e.word)
}
