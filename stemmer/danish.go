package stemmer

import (
	"strings"
	"unicode/utf8"
)

// Danish Snowball stemmer. Danish only uses R1, with the Scandinavian
// floor that R1 starts no earlier than after the first three letters.

var danishVowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'y': true, 'æ': true, 'ø': true, 'å': true,
}

func isDanishVowel(r rune) bool {
	return danishVowels[r]
}

// Letters that license dropping a final plural s.
const danishSEndings = "abcdfghjklmnoprtvyzå"

var danishStep1 = mustPhase(phase{mode: firstValid, rules: append(
	deleteRules(inR1,
		"erendes",
		"erende", "hedens",
		"ethed", "erede", "heden", "heder", "endes", "ernes", "erens", "erets",
		"ered", "ende", "erne", "eren", "erer", "heds", "enes", "eres", "eret",
		"hed", "ene", "ere", "ens", "ers", "ets",
		"en", "er", "es", "et",
		"e",
	),
	suffixRule{
		suffix: "s",
		region: inR1,
		when: func(e *env) bool {
			return strings.ContainsRune(danishSEndings, runeFromEnd(e.word, 2))
		},
		apply: stripN(1),
	},
)})

// danishConsonantPairs are the clusters whose final letter drops when
// the whole pair sits in R1.
var danishConsonantPairs = mustPhase(phase{mode: firstValid, rules: []suffixRule{
	{suffix: "gd", region: inR1, apply: stripN(1)},
	{suffix: "dt", region: inR1, apply: stripN(1)},
	{suffix: "gt", region: inR1, apply: stripN(1)},
	{suffix: "kt", region: inR1, apply: stripN(1)},
}})

// danishDelete returns a deletion that re-runs the consonant-pair rule
// on the shortened word, as the -ig family of suffixes requires.
func danishDelete(n int) func(*env) {
	return func(e *env) {
		e.strip(n)
		e.runPhase(danishConsonantPairs)
	}
}

var danishStep3 = mustPhase(phase{mode: firstValid, rules: []suffixRule{
	{suffix: "elig", region: inR1, apply: danishDelete(4)},
	{suffix: "løst", region: inR1, apply: stripN(1)},
	{suffix: "lig", region: inR1, apply: danishDelete(3)},
	{suffix: "els", region: inR1, apply: danishDelete(3)},
	{suffix: "ig", region: inR1, apply: danishDelete(2)},
}})

// danishUndouble drops the final letter of a doubled consonant whose
// second copy lies in R1.
func danishUndouble(e *env) {
	last, size := utf8.DecodeLastRuneInString(e.word)
	if size == 0 || danishVowels[last] || e.r1 == "" {
		return
	}
	if runeFromEnd(e.word, 2) == last {
		e.strip(size)
	}
}

func stemDanish(word string) string {
	r1, _ := computeR1R2(word, isDanishVowel)
	e := &env{word: word, r1: floorR1(word, r1, 3)}
	e.runPhase(danishStep1)
	e.runPhase(danishConsonantPairs)
	if strings.HasSuffix(e.word, "igst") {
		e.strip(2)
	}
	e.runPhase(danishStep3)
	danishUndouble(e)
	return e.word
}
