package stemmer

// Classic Porter stemmer (the original 1980 algorithm), registered as
// "porter" and kept distinct from "english": the revised Snowball
// algorithm disagrees with it on many words and callers may need either.
// Unlike the Snowball languages this algorithm restricts rules by the
// measure m, the number of vowel-consonant runs in a stem, instead of by
// the R1/R2 regions.

// porterIsVowel reports whether w[i] acts as a vowel: a e i o u always,
// y only right after a consonant.
func porterIsVowel(w []rune, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		return i > 0 && !porterIsVowel(w, i-1)
	}
	return false
}

// porterMeasure counts the vowel-consonant runs in w.
func porterMeasure(w []rune) int {
	m := 0
	i := 0
	for i < len(w) && !porterIsVowel(w, i) {
		i++
	}
	for i < len(w) {
		for i < len(w) && porterIsVowel(w, i) {
			i++
		}
		if i >= len(w) {
			break
		}
		for i < len(w) && !porterIsVowel(w, i) {
			i++
		}
		m++
	}
	return m
}

func porterHasVowel(w []rune) bool {
	for i := range w {
		if porterIsVowel(w, i) {
			return true
		}
	}
	return false
}

// porterEndsDouble reports a doubled final consonant.
func porterEndsDouble(w []rune) bool {
	n := len(w)
	return n >= 2 && w[n-1] == w[n-2] && !porterIsVowel(w, n-1)
}

// porterEndsCVC reports the consonant-vowel-consonant tail shape with
// the final consonant not w, x or y.
func porterEndsCVC(w []rune) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	if porterIsVowel(w, n-3) || !porterIsVowel(w, n-2) || porterIsVowel(w, n-1) {
		return false
	}
	switch w[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// porterEndsWith reports whether w ends with the ASCII suffix s.
func porterEndsWith(w []rune, s string) bool {
	n := len(w) - len(s)
	if n < 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if w[n+i] != rune(s[i]) {
			return false
		}
	}
	return true
}

// porterReplace rewrites the suffix old to repl when cond holds on the
// remaining stem. The second result reports whether old matched at all,
// so callers can stop scanning a rule list after the first tail match.
func porterReplace(w []rune, old, repl string, cond func([]rune) bool) ([]rune, bool) {
	if !porterEndsWith(w, old) {
		return w, false
	}
	stem := w[:len(w)-len(old)]
	if cond != nil && !cond(stem) {
		return w, true
	}
	return append(stem, []rune(repl)...), true
}

func measureAbove(min int) func([]rune) bool {
	return func(stem []rune) bool { return porterMeasure(stem) > min }
}

// Step 1a: plurals.
func porterStep1a(w []rune) []rune {
	switch {
	case porterEndsWith(w, "sses"):
		return w[:len(w)-2]
	case porterEndsWith(w, "ies"):
		return w[:len(w)-2]
	case porterEndsWith(w, "ss"):
		return w
	case porterEndsWith(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

// Step 1b: -eed, -ed, -ing, with tail repair after a bare strip.
func porterStep1b(w []rune) []rune {
	if porterEndsWith(w, "eed") {
		if porterMeasure(w[:len(w)-3]) > 0 {
			return w[:len(w)-1]
		}
		return w
	}

	stripped := false
	if porterEndsWith(w, "ed") && porterHasVowel(w[:len(w)-2]) {
		w = w[:len(w)-2]
		stripped = true
	} else if porterEndsWith(w, "ing") && porterHasVowel(w[:len(w)-3]) {
		w = w[:len(w)-3]
		stripped = true
	}
	if !stripped {
		return w
	}

	switch {
	case porterEndsWith(w, "at"), porterEndsWith(w, "bl"), porterEndsWith(w, "iz"):
		return append(w, 'e')
	case porterEndsDouble(w) && w[len(w)-1] != 'l' && w[len(w)-1] != 's' && w[len(w)-1] != 'z':
		return w[:len(w)-1]
	case porterMeasure(w) == 1 && porterEndsCVC(w):
		return append(w, 'e')
	}
	return w
}

// Step 1c: y -> i after a stem containing a vowel.
func porterStep1c(w []rune) []rune {
	if porterEndsWith(w, "y") && porterHasVowel(w[:len(w)-1]) {
		w[len(w)-1] = 'i'
	}
	return w
}

// porterPair is one suffix mapping of the step 2 and 3 tables. Within a
// table, no suffix may be a tail of an earlier one, so the first tail
// match is the longest.
type porterPair struct {
	suffix string
	repl   string
}

var porterStep2Rules = []porterPair{
	{"ational", "ate"},
	{"tional", "tion"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"izer", "ize"},
	{"abli", "able"},
	{"alli", "al"},
	{"entli", "ent"},
	{"eli", "e"},
	{"ousli", "ous"},
	{"ization", "ize"},
	{"ation", "ate"},
	{"ator", "ate"},
	{"alism", "al"},
	{"iveness", "ive"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"aliti", "al"},
	{"iviti", "ive"},
	{"biliti", "ble"},
}

var porterStep3Rules = []porterPair{
	{"icate", "ic"},
	{"ative", ""},
	{"alize", "al"},
	{"iciti", "ic"},
	{"ical", "ic"},
	{"ful", ""},
	{"ness", ""},
}

func porterApplyPairs(w []rune, rules []porterPair, cond func([]rune) bool) []rune {
	for _, rule := range rules {
		if w2, matched := porterReplace(w, rule.suffix, rule.repl, cond); matched {
			return w2
		}
	}
	return w
}

// Step 4: residual suffix deletion at m > 1.
var porterStep4Suffixes = []string{
	"al", "ance", "ence", "er", "ic", "able", "ible", "ant",
	"ement", "ment", "ent", "ion", "ou", "ism", "ate", "iti",
	"ous", "ive", "ize",
}

func porterStep4(w []rune) []rune {
	for _, suffix := range porterStep4Suffixes {
		if !porterEndsWith(w, suffix) {
			continue
		}
		stem := w[:len(w)-len(suffix)]
		if suffix == "ion" {
			if len(stem) == 0 || (stem[len(stem)-1] != 's' && stem[len(stem)-1] != 't') {
				return w
			}
		}
		if porterMeasure(stem) > 1 {
			return stem
		}
		return w
	}
	return w
}

// Step 5a: drop a final e at m > 1, or at m = 1 when not after a short
// consonant-vowel-consonant tail.
func porterStep5a(w []rune) []rune {
	if !porterEndsWith(w, "e") {
		return w
	}
	stem := w[:len(w)-1]
	m := porterMeasure(stem)
	if m > 1 || (m == 1 && !porterEndsCVC(stem)) {
		return stem
	}
	return w
}

// Step 5b: undouble a final ll at m > 1.
func porterStep5b(w []rune) []rune {
	if porterMeasure(w) > 1 && porterEndsDouble(w) && w[len(w)-1] == 'l' {
		return w[:len(w)-1]
	}
	return w
}

// stemPorter implements the original Porter algorithm. The word must
// already be lowercased and longer than minStemLength runes.
func stemPorter(word string) string {
	w := []rune(word)
	w = porterStep1a(w)
	w = porterStep1b(w)
	w = porterStep1c(w)
	w = porterApplyPairs(w, porterStep2Rules, measureAbove(0))
	w = porterApplyPairs(w, porterStep3Rules, measureAbove(0))
	w = porterStep4(w)
	w = porterStep5a(w)
	w = porterStep5b(w)
	return string(w)
}
